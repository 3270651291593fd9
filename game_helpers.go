package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// bindConfig attaches every overridable config field to the flag set
func bindConfig(fs *flag.FlagSet, c *utils.Config) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width")
	fs.IntVar(&c.Height, "height", c.Height, "grid height")
	fs.IntVar(&c.StepTarget, "steps", c.StepTarget, "generations to run")
	fs.TextVar(&c.StartingState, "start", c.StartingState, "starting state: custom, random, glider or patterns")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards (0 uses the clock)")
	fs.BoolVar(&c.Logging, "log", c.Logging, "print the board after every generation")
	fs.BoolVar(&c.Threaded, "threaded", c.Threaded, "spread rule evaluation across CPUs")
	fs.BoolVar(&c.Animate, "animate", c.Animate, "redraw the terminal every generation")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between animated generations")
	fs.BoolVar(&c.Render, "render", c.Render, "print the final board")
	fs.BoolVar(&c.Stats, "stats", c.Stats, "print performance stats")
	fs.IntVar(&c.StagnationThreshold, "stagnation", c.StagnationThreshold, "stop after this many repeating generations (0 disables)")
}

// applyFlag copies one explicitly set flag from the flag config over the file config
func applyFlag(dst *utils.Config, src utils.Config, name string) {
	switch name {
	case "width":
		dst.Width = src.Width
	case "height":
		dst.Height = src.Height
	case "steps":
		dst.StepTarget = src.StepTarget
	case "start":
		dst.StartingState = src.StartingState
	case "seed":
		dst.Seed = src.Seed
	case "log":
		dst.Logging = src.Logging
	case "threaded":
		dst.Threaded = src.Threaded
	case "animate":
		dst.Animate = src.Animate
	case "frame-rate":
		dst.FrameRate = src.FrameRate
	case "render":
		dst.Render = src.Render
	case "stats":
		dst.Stats = src.Stats
	case "stagnation":
		dst.StagnationThreshold = src.StagnationThreshold
	}
}

// parseConfig loads the optional config file, then applies any flags given on the command line
func parseConfig(args []string, stderr io.Writer) (utils.Config, error) {
	fs := flag.NewFlagSet("go-life", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a JSON or YAML config file")

	flagConfig := utils.DefaultConfig()
	bindConfig(fs, &flagConfig)
	if err := fs.Parse(args); err != nil {
		return flagConfig, err
	}

	config := utils.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = utils.LoadConfig(*configPath); err != nil {
			return config, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		applyFlag(&config, flagConfig, f.Name)
	})
	return config, nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (
	*game.Game,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	g := game.New()
	if err := g.Initialize(config.GameConfig(out)); err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to initialize game")
	}
	return g, &model.TerminalRenderer{Out: out}, utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, g *game.Game) {
	fmt.Fprintf(out, "Features: Threaded: %v, Logging: %v, Start: %s\n",
		config.Threaded, config.Logging, config.StartingState)
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d | Target: %d generations\n",
		g.Width(), g.Height(), g.Current().CountLivingCells(), config.StepTarget)
	fmt.Fprintln(out)
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, g *game.Game, stats *utils.Stats, status string) {
	density := float64(stats.ActiveCells) / float64(g.Width()*g.Height()) * 100
	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Dirty region: %d cells\n",
		g.StepCount(), stats.ActiveCells, density, status, stats.DirtyArea)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
}

// runLoop steps the game to its target, recording stats and optionally animating each frame.
// It returns early once the board has repeated for StagnationThreshold generations.
func runLoop(
	ctx context.Context,
	out io.Writer,
	g *game.Game,
	config utils.Config,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) error {
	stagnantCount := 0
	for g.StepCount() < config.StepTarget {
		if err := ctx.Err(); err != nil {
			return err
		}

		frameStart := time.Now()
		if err := g.Step(); err != nil {
			return err
		}

		cur := g.Current()
		population := cur.CountLivingCells()
		stats.Update(g.StepCount(), population, cur.DirtyRect().Area(), time.Since(frameStart))

		status := "Active"
		if stats.Observe(cur.Hash()) {
			stagnantCount++
			status = fmt.Sprintf("Stagnant (%d)", stagnantCount)
		} else {
			stagnantCount = 0
		}
		if population == 0 {
			status = "Extinct"
		}

		if config.Animate {
			renderer.Clear()
			displayGameStatus(out, g, stats, status)
			renderer.Display(cur)
			time.Sleep(config.FrameRate)
		}

		if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
			fmt.Fprintf(out, "Stopping at generation %d: stagnation detected\n", g.StepCount())
			return nil
		}
	}
	return nil
}

// watchProgress prints a status line every interval, inspecting the board while it is being stepped
func watchProgress(ctx context.Context, out io.Writer, g *game.Game, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Fprintf(out, "Gen: %d | Living: %d\n", g.StepCount(), g.Current().CountLivingCells())
		}
	}
}

// displayFinalStats shows the run summary
func displayFinalStats(out io.Writer, g *game.Game, stats *utils.Stats) {
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		g.StepCount(), stats.Runtime().Seconds())
	fmt.Fprintf(out, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

func exitOnError(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
