package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"assetnorm/internal/config"
	"assetnorm/internal/service"
	"assetnorm/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [input.csv]",
	Short: "Normalize an inventory export and re-run whenever it changes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	addOutputFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	job, err := buildJob(args)
	if err != nil {
		printError("config", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := service.NewEventBus()
	defer bus.Close()
	go reportEvents(cmd.OutOrStdout(), job.Paths, bus.Subscribe(16))

	svc := service.NewNormalizeService(logger, bus)
	normalize := func(ctx context.Context) {
		// failures are reported through the event bus; keep watching
		_, _ = svc.Normalize(ctx, job)
	}

	if _, err := os.Stat(job.Paths.Input); err == nil {
		normalize(ctx)
	}

	w := watcher.New(job.Paths.Input, normalize).
		WithDebounce(cfg.Watch.Debounce.Duration()).
		WithLogger(logger)

	if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		printError("watch", err)
		return err
	}
	return nil
}

// reportEvents prints each run outcome until events is closed
func reportEvents(w io.Writer, paths config.Paths, events <-chan service.Event) {
	for ev := range events {
		switch ev.Type {
		case service.EventRunFinished:
			printReport(w, paths, ev.Summary)
		case service.EventRunFailed:
			fmt.Fprintf(w, "Run failed for %s: %v\n", ev.Input, ev.Err)
		}
	}
}
