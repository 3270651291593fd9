// Package game runs Conway's Game of Life on a pair of double-buffered grids.
//
// Each Step evaluates the rules only inside the current grid's dirty rect, writes
// the results into the next grid, then swaps the two. A cell outside the dirty
// rect is guaranteed to hold the same value in both buffers, so skipping it is
// safe as long as every state change dirties its whole Moore neighborhood.
package game

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

// ErrNotInitialized is returned by stepping operations called before Initialize
var ErrNotInitialized = errors.New("game is not initialized")

// Game owns a current and a next grid of identical dimensions
type Game struct {
	width  int
	height int
	config Config

	pool *model.GridPool

	// current is published atomically so inspecting goroutines always see a whole grid
	current atomic.Pointer[model.Grid]
	next    *model.Grid

	stepCount   atomic.Int64
	rng         *rand.Rand
	renderer    model.TextRenderer
	initialized bool
}

// New returns an uninitialized game with a 5x5 board
func New() *Game {
	return NewWithSize(5, 5)
}

// NewWithSize returns an uninitialized game with the given board dimensions.
// Initialize uses them when its config leaves Width and Height at zero.
func NewWithSize(width, height int) *Game {
	return &Game{
		width:    width,
		height:   height,
		pool:     model.NewGridPool(),
		renderer: model.DefaultTextRenderer(),
	}
}

// Initialize allocates both grids, seeds them from the starting state and zeroes the step count.
// Calling it again replaces both grids.
func (g *Game) Initialize(config Config) error {
	if config.Width == 0 && config.Height == 0 {
		config.Width, config.Height = g.width, g.height
	}
	if err := config.Validate(); err != nil {
		return errors.Wrap(err, "[Initialize] invalid config")
	}
	if config.Output == nil {
		config.Output = os.Stdout
	}

	if g.initialized {
		model.GridToPool(g.current.Load(), g.pool)
		model.GridToPool(g.next, g.pool)
	}

	g.config = config
	g.width, g.height = config.Width, config.Height
	g.current.Store(g.pool.Get(g.width, g.height))
	g.next = g.pool.Get(g.width, g.height)
	g.stepCount.Store(0)

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewPCG(uint64(seed), 0))
	g.initialized = true

	seeders[config.StartingState](g)
	return nil
}

// Initialized reports whether Initialize has completed
func (g *Game) Initialized() bool {
	return g.initialized
}

// Width returns the board width
func (g *Game) Width() int {
	return g.width
}

// Height returns the board height
func (g *Game) Height() int {
	return g.height
}

// StepCount returns the number of generations stepped since Initialize or Reset
func (g *Game) StepCount() int {
	return int(g.stepCount.Load())
}

// Config returns the config the game was initialized with
func (g *Game) Config() Config {
	return g.config
}

// Current returns the grid holding the latest generation, or nil before Initialize.
// It is meant for read-only inspection; the grid stops being current after the next Step.
func (g *Game) Current() *model.Grid {
	return g.current.Load()
}

// SetCell brings (x, y) to life in both grids. Off-board coordinates are ignored.
func (g *Game) SetCell(x, y int) {
	if !g.initialized {
		return
	}
	g.current.Load().SetCell(x, y, true, true)
	g.next.SetCell(x, y, true, true)
}

// Place sets every cell of a pattern alive, offset by origin
func (g *Game) Place(pattern Pattern, origin model.Position) {
	for i := range pattern {
		at := pattern.At(i, origin)
		g.SetCell(at.X, at.Y)
	}
}

// IsCellAlive reads (x, y) from the current grid
func (g *Game) IsCellAlive(x, y int) bool {
	if !g.initialized {
		return false
	}
	return g.current.Load().IsCellAlive(x, y)
}

// Randomize makes each cell alive with probability one half, identically in both grids,
// and marks the whole board dirty
func (g *Game) Randomize() {
	if !g.initialized {
		return
	}
	cur := g.current.Load()
	for y := range g.height {
		for x := range g.width {
			cur.SetCell(x, y, g.rng.IntN(2) == 1, false)
		}
	}
	g.next.CopyFrom(cur)
	cur.MarkAllDirty()
	g.next.MarkAllDirty()
}

// Reset kills every cell in both grids and zeroes the step count. Dimensions are kept.
func (g *Game) Reset() {
	if !g.initialized {
		return
	}
	for _, grid := range []*model.Grid{g.current.Load(), g.next} {
		grid.Clear()
		grid.ClearDirtyBounds()
	}
	g.stepCount.Store(0)
}

// LoadGrid is reserved for reading a stored board. Loading is not supported, so it
// always reports false and leaves the game untouched.
func (g *Game) LoadGrid(path string) bool {
	return false
}

// Step advances the board by one generation
func (g *Game) Step() error {
	if !g.initialized {
		return errors.Wrap(ErrNotInitialized, "[Step]")
	}

	cur, next := g.current.Load(), g.next
	if dirty := cur.DirtyRect(); g.config.Threaded && dirty.Area() >= ThreadedThreshold {
		if err := applyRulesetThreaded(cur, next, dirty); err != nil {
			return errors.Wrap(err, "[Step] threaded ruleset failed")
		}
	} else {
		applyRuleset(cur, next)
	}

	g.current.Store(next)
	g.next = cur
	cur.ClearDirtyBounds()

	step := g.stepCount.Add(1)
	if g.config.Logging {
		g.logGrid(g.config.Output, step)
	}
	return nil
}

// Run steps until the step count reaches the configured target
func (g *Game) Run() error {
	return g.RunContext(context.Background())
}

// RunContext is Run that also stops between generations once ctx is done
func (g *Game) RunContext(ctx context.Context) error {
	if !g.initialized {
		return errors.Wrap(ErrNotInitialized, "[Run]")
	}
	for g.StepCount() < g.config.StepTarget {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Render returns a text snapshot of the current grid, optionally marking dirty cells
func (g *Game) Render(markDirty bool) string {
	if !g.initialized {
		return ""
	}
	r := g.renderer
	r.MarkDirty = markDirty
	return r.Render(g.current.Load())
}

func (g *Game) String() string {
	return g.Render(false)
}

func (g *Game) logGrid(w io.Writer, step int64) {
	fmt.Fprintf(w, "step %d\n%s\n", step, g.Render(false))
}

// evaluateCell writes the successor of p into next, dirtying it there if it changed
func evaluateCell(cur, next *model.Grid, p model.Position) {
	alive := cur.IsCellAliveAt(p)
	nextAlive := rules.ApplyConwayRules(cur.GetNeighborCountOfCell(p), alive)
	next.SetCellAt(p, nextAlive, nextAlive != alive)
}

func applyRuleset(cur, next *model.Grid) {
	cur.IterateDirtyRect(func(p model.Position) {
		evaluateCell(cur, next, p)
	})
}

// applyRulesetThreaded splits the dirty rows across one worker per CPU
func applyRulesetThreaded(cur, next *model.Grid, dirty model.BoundedRect) error {
	var (
		eg            errgroup.Group
		rows          = dirty.Height()
		numWorkers    = min(runtime.NumCPU(), rows)
		rowsPerWorker = (rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = dirty.YMin + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, dirty.YMax+1)
		)
		if startRow > dirty.YMax {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := dirty.XMin; x <= dirty.XMax; x++ {
					evaluateCell(cur, next, model.Pos(x, y))
				}
			}
			return nil
		})
	}

	return eg.Wait()
}
