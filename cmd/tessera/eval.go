package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tessera/internal/eval"
	"tessera/internal/reportfmt"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] value",
	Short: "Evaluate a state against the acceptance rules",
	Long:  `Eval encodes the state, tokenizes it into 7-digit windows and reports the shape, range and adjacency verdicts`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

func init() {
	addRequestFlags(evalCmd)
	evalCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	evalCmd.Flags().String("export", "", "write a msgpack report snapshot to this path")
	evalCmd.Flags().Bool("grid", true, "render the colored tile grid")
	evalCmd.Flags().Bool("tokens", false, "list every token with window, value and color")
}

func runEval(cmd *cobra.Command, args []string) error {
	req, err := requestFromFlags(cmd, args[0])
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	rep, err := eval.New().Run(req)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
		if err := reportfmt.Export(exportPath, rep); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
	}

	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	switch format {
	case "pretty":
		showGrid, _ := cmd.Flags().GetBool("grid")
		showTokens, _ := cmd.Flags().GetBool("tokens")
		opts := reportfmt.PrettyOpts{
			Color:       useColor(cmd, os.Stdout),
			ShowGrid:    showGrid && !quiet,
			ShowTokens:  showTokens && !quiet,
			ShowTimings: timings,
		}
		return reportfmt.Pretty(cmd.OutOrStdout(), rep, opts)
	case "json":
		opts := reportfmt.JSONOpts{
			IncludeChecks:  true,
			IncludeWindows: true,
			IncludeTimings: timings,
		}
		return reportfmt.JSON(cmd.OutOrStdout(), rep, opts)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
