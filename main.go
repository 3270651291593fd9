package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	config, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		exitOnError(err)
	}

	out := os.Stdout
	g, renderer, stats, err := initializeGame(config, out)
	if err != nil {
		exitOnError(err)
	}
	if config.Stats {
		displayGameInfo(out, config, g)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, egCtx := errgroup.WithContext(ctx)
	runCtx, finish := context.WithCancel(egCtx)
	defer finish()

	eg.Go(func() error {
		defer finish()
		return runLoop(runCtx, out, g, config, renderer, stats)
	})
	if config.Stats && !config.Animate {
		eg.Go(func() error {
			watchProgress(runCtx, out, g, time.Second)
			return nil
		})
	}

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		exitOnError(err)
	}
	if ctx.Err() != nil {
		fmt.Fprintln(out, "\nShutting down gracefully...")
	}

	if config.Render && !config.Animate {
		renderer.Display(g.Current())
	}
	if config.Stats {
		displayFinalStats(out, g, stats)
	}
}
