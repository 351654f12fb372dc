package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loglens/internal/aggregator"
	"loglens/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <logfile>",
	Short: "Analyze a log file and print a summary report",
	Long: `Analyze scans a log file once, top to bottom. Lines must match the
format "YYYY-MM-DD HH:MM:SS [LEVEL] message"; lines that don't are skipped.

The report lists the first 10 error lines, counts per level, and the
error rate, with a warning when the rate exceeds 5%.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	fmt.Fprintf(os.Stderr, "analyzing %s...\n", path)

	agg := aggregator.New(
		aggregator.WithDebug(debugMode),
		aggregator.WithNotifier(func(line int, excerpt string) {
			fmt.Printf("Line %d: possible memory issue - %s\n", line, excerpt)
		}),
	)

	res, err := agg.AnalyzeFile(path)
	if err != nil {
		// Analysis failures are reportable, not fatal: print a diagnostic
		// and exit cleanly.
		fmt.Fprintf(os.Stderr, "failed to analyze logs: %v\n", err)
		return nil
	}

	return newRenderer().Render(report.Build(res))
}
