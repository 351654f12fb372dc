package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"loglens/internal/aggregator"
	"loglens/internal/hub"
	"loglens/internal/report"
	"loglens/internal/server"
	"loglens/internal/watcher"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve [paths...]",
	Short: "Serve analysis reports over HTTP",
	Long: `Serve watches log files, re-analyzes them on change, and exposes the
latest report at /api/report. Connected WebSocket clients at /ws receive
a push after every re-analysis.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "HTTP listen port")
	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nloglens shutting down...")
		cancel()
		os.Exit(0)
	}()

	w, err := watcher.New(args)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if len(w.Paths()) == 0 {
		return fmt.Errorf("no files matched the given patterns: %v", args)
	}

	agg := aggregator.New(aggregator.WithDebug(debugMode))
	h := hub.New()

	analyze := func(path string) {
		res, err := agg.AnalyzeFile(path)
		if err != nil {
			log.Printf("analysis of %s failed: %v", path, err)
			return
		}
		h.Publish(report.Build(res))
	}

	// Initial pass so /api/report has something to serve.
	for _, p := range w.Paths() {
		analyze(p)
	}

	go w.Start(ctx)
	go func() {
		for changed := range w.Changes {
			analyze(changed)
		}
		h.Close()
	}()

	srv := server.New(h, viper.GetString("port"))
	fmt.Fprintf(os.Stderr, "loglens serving reports on :%s\n", viper.GetString("port"))
	return srv.Start()
}
