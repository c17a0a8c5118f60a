package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const configFileName = ".yaraqc.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .yaraqc.yaml configuration file",
		Long:  "Create a .yaraqc.yaml documenting the available knobs: disabled checks, severity overrides and vocabulary replacements.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(starterConfig), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .yaraqc.yaml")

	return cmd
}

const starterConfig = `# yaraqc configuration

# Checks to turn off entirely.
# disable:
#   - meta-reference
#   - name-prefix

# Per-check severity overrides (error, warning, info).
# severities:
#   desc-short: info
#   mod-xor-unbounded: warning

# Replace the built-in category taxonomy for rule name prefixes.
# category_prefixes:
#   - APT
#   - MAL
#   - SUSP

# Replace the built-in false-positive-prone string list.
# false_positives:
#   - kernel32.dll
#   - Program Files

# Replace the deprecated condition feature map.
# deprecated_features:
#   entrypoint: pe.entry_point

# Directories skipped when walking for rule files.
# exclude_paths:
#   - third_party
`
