package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaraqc/yaraqc/internal/adapters/outbound/compiler"
	"github.com/yaraqc/yaraqc/internal/adapters/outbound/config"
	"github.com/yaraqc/yaraqc/internal/adapters/outbound/gitinfo"
	"github.com/yaraqc/yaraqc/internal/adapters/outbound/scanner"
	"github.com/yaraqc/yaraqc/internal/adapters/outbound/tui"
	"github.com/yaraqc/yaraqc/internal/application"
	"github.com/yaraqc/yaraqc/internal/domain"
)

func newLintCmd() *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		path       string
	)

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Run the style and compatibility check catalog",
		Long:  "Analyze rule files (or directories of .yar/.yara files) against the full catalog of naming, metadata, string and condition checks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{"."}
			}
			return runAnalysis(cmd, path, paths, application.ModeLint, jsonOutput, ciMode)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if any error-severity issue is found")
	cmd.Flags().StringVar(&path, "path", ".", "Project root for config and git stamping")

	return cmd
}

func newAnalyzeService() *application.AnalyzeService {
	return application.NewAnalyzeService(
		scanner.New(),
		compiler.New(),
		config.New(),
		gitinfo.New(),
	)
}

func runAnalysis(
	cmd *cobra.Command,
	root string,
	paths []string,
	mode application.Mode,
	jsonOutput, ciMode bool,
) error {
	svc := newAnalyzeService()

	report, err := svc.AnalyzePaths(root, paths, mode)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
	}

	if ciMode && report.HasErrors() {
		return fmt.Errorf("%d errors found", countErrors(report))
	}

	return nil
}

func countErrors(report *domain.RunReport) int {
	n := report.Errors
	for _, res := range report.Results {
		if res.ParseError != "" {
			n++
		}
	}
	return n
}
