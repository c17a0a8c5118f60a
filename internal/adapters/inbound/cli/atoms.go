package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaraqc/yaraqc/internal/application"
	"github.com/yaraqc/yaraqc/internal/domain/atoms"
	"github.com/yaraqc/yaraqc/internal/domain/rulesrc"
)

func newAtomsCmd() *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		path       string
		hexPattern string
	)

	cmd := &cobra.Command{
		Use:   "atoms [paths...]",
		Short: "Score string definitions for scan-engine atom quality",
		Long:  "Rate every string definition's best 4-byte anchor the way the scan engine selects them, flagging patterns that will slow scans down.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if hexPattern != "" {
				return scoreHex(cmd, hexPattern)
			}

			paths := args
			if len(paths) == 0 {
				paths = []string{"."}
			}
			return runAnalysis(cmd, path, paths, application.ModeAtoms, jsonOutput, ciMode)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if any error-severity issue is found")
	cmd.Flags().StringVar(&path, "path", ".", "Project root for config and git stamping")
	cmd.Flags().StringVar(&hexPattern, "hex", "", "Score a single hex pattern (e.g. \"4D 5A ?? 00\") instead of analyzing files")

	return cmd
}

// scoreHex decodes and rates one hex pattern directly, for interactive
// tuning of a pattern before it goes into a rule.
func scoreHex(cmd *cobra.Command, raw string) error {
	decoded := rulesrc.DecodeHex(raw)
	scorer := atoms.NewScorer(atoms.DefaultConfig())

	atom, ok := scorer.Best(decoded.Bytes, decoded.Wildcards)
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "no scorable atom: %d concrete bytes, need at least %d wildcard-free\n",
			decoded.ConcreteBytes(), atoms.AtomLength)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "best atom % X  score %d/100\n", atom.Bytes[:], atom.Score)
	return nil
}
