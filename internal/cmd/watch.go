package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"loglens/internal/aggregator"
	"loglens/internal/report"
	"loglens/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Re-analyze log files whenever they change",
	Long: `Watch one or more log files (or glob patterns) and re-run the full
analysis every time a file changes, printing a fresh report. Each run
is a complete pass over the file; no state is carried between runs.

Examples:
  loglens watch /var/log/app.log
  loglens watch "/var/log/**/*.log"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nloglens shutting down...")
		cancel()
	}()

	w, err := watcher.New(args)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	paths := w.Paths()
	if len(paths) == 0 {
		return fmt.Errorf("no files matched the given patterns: %v", args)
	}

	fmt.Fprintf(os.Stderr, "loglens watching %d file(s):\n", len(paths))
	for _, p := range paths {
		fmt.Fprintf(os.Stderr, "   • %s\n", p)
	}
	fmt.Fprintln(os.Stderr)

	agg := aggregator.New(
		aggregator.WithDebug(debugMode),
		aggregator.WithNotifier(func(line int, excerpt string) {
			fmt.Printf("Line %d: possible memory issue - %s\n", line, excerpt)
		}),
	)
	renderer := newRenderer()

	analyze := func(path string) {
		res, err := agg.AnalyzeFile(path)
		if err != nil {
			log.Printf("analysis of %s failed: %v", path, err)
			return
		}
		fmt.Fprintf(os.Stderr, "--- %s ---\n", path)
		if err := renderer.Render(report.Build(res)); err != nil {
			log.Printf("render error: %v", err)
		}
	}

	// Initial pass over every watched file.
	for _, p := range paths {
		analyze(p)
	}

	go w.Start(ctx)

	for changed := range w.Changes {
		analyze(changed)
	}

	return nil
}
