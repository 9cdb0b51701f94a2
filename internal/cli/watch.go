package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	flag "github.com/spf13/pflag"
)

const defaultDebounce = 100 * time.Millisecond

// WatchCmd returns the watch command.
func WatchCmd(a *app) *Command {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.Duration("debounce", defaultDebounce, "Wait this long after the last change before analyzing")

	return &Command{
		Name:  "watch",
		Flags: fs,
		Short: "Re-analyze whenever the results log changes",
		Long: "Run analyze once, then again every time the results file is written or\n" +
			"created, until interrupted.",
		Exec: func(ctx context.Context, io *IO) error {
			debounce, _ := fs.GetDuration("debounce")

			return execWatch(ctx, io, a, debounce)
		},
	}
}

func execWatch(ctx context.Context, io *IO, a *app, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(a.cfg.InputAbs)

	err = watcher.Add(dir)
	if err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	a.logger.Info("watching", "input", a.cfg.InputAbs)

	// Each run reports its own warnings as soon as it is done.
	runAnalysis := func() {
		run := io.Fork()

		if runErr := a.analyzeOnce(run); runErr != nil {
			a.logger.Error("analysis failed", "error", runErr)
		}

		run.Finish()
	}

	runAnalysis()

	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			io.Println("Stopped watching", a.cfg.InputAbs)

			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != a.cfg.InputAbs {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fire = time.After(debounce)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			a.logger.Warn("watch error", "error", watchErr)
		case <-fire:
			fire = nil

			a.logger.Info("results changed", "input", a.cfg.InputAbs)
			runAnalysis()
		}
	}
}
