package model

import (
	"crypto/md5"
	"fmt"
	"sync"
)

// dirtyBuffer inflates every dirtied cell by one step, the reach of a Moore neighborhood
const dirtyBuffer = 1

// Grid is a bounded board of cells with dirty-region tracking.
//
// Writes hold the exclusive lock and reads hold the shared lock, so one goroutine
// may write while others inspect. Concurrent writers serialize.
type Grid struct {
	mu sync.RWMutex

	width  int
	height int
	cells  []Cell // row-major, index = y*width + x
	dirty  BoundedRect
}

// NewGrid creates a new all-dead grid with the specified dimensions.
// The whole grid starts dirty.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.resize(width, height)
	return g
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// resize reallocates the grid to new dimensions, clearing every cell
func (g *Grid) resize(width, height int) {
	width, height = max(1, width), max(1, height)

	g.mu.Lock()
	defer g.mu.Unlock()

	g.width = width
	g.height = height
	if cap(g.cells) >= width*height {
		g.cells = g.cells[:width*height]
		clear(g.cells)
	} else {
		g.cells = make([]Cell, width*height)
	}
	g.dirty = NewBoundedRect(dirtyBuffer)
	g.dirty.SetBounds(0, 0, width-1, height-1)
	g.dirty.Fill()
}

// Clear kills all cells. The dirty rect is left alone.
func (g *Grid) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	clear(g.cells)
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index returns the linear index of (x, y), or false when out of bounds
func (g *Grid) index(x, y int) (int, bool) {
	if !g.inBounds(x, y) {
		return 0, false
	}
	return y*g.width + x, true
}

// SetCell sets a cell to alive (true) or dead (false); out-of-bounds writes are ignored
func (g *Grid) SetCell(x, y int, alive, markDirty bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.index(x, y)
	if !ok {
		return
	}
	g.cells[i].Set(alive)
	if markDirty {
		g.dirty.Encompass(x, y)
	}
}

// SetCellAt is SetCell for a Position
func (g *Grid) SetCellAt(p Position, alive, markDirty bool) {
	g.SetCell(p.X, p.Y, alive, markDirty)
}

// GetAt returns the cell at (x, y) and whether the coordinate is on the grid
func (g *Grid) GetAt(x, y int) (Cell, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index(x, y)
	if !ok {
		return CellDead, false
	}
	return g.cells[i], true
}

// IsCellAlive returns the state of a cell; off-grid cells are dead
func (g *Grid) IsCellAlive(x, y int) bool {
	c, _ := g.GetAt(x, y)
	return c.IsAlive()
}

// IsCellAliveAt is IsCellAlive for a Position
func (g *Grid) IsCellAliveAt(p Position) bool {
	return g.IsCellAlive(p.X, p.Y)
}

// GetNeighborCountOfCell counts living Moore neighbors, treating off-grid cells as dead.
// The shared lock is held across the whole count.
func (g *Grid) GetNeighborCountOfCell(p Position) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	count := 0
	for _, d := range MooreOffsets {
		n := p.Add(d)
		if i, ok := g.index(n.X, n.Y); ok && g.cells[i].IsAlive() {
			count++
		}
	}
	return count
}

// DirtyRect returns a copy of the current dirty region
func (g *Grid) DirtyRect() BoundedRect {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.dirty
}

// IterateDirtyRect calls fn for every position in the dirty region in row-major order.
// The region is captured up front and no lock is held while fn runs.
func (g *Grid) IterateDirtyRect(fn func(p Position)) {
	r := g.DirtyRect()
	if r.IsEmpty() {
		return
	}
	for y := r.YMin; y <= r.YMax; y++ {
		for x := r.XMin; x <= r.XMax; x++ {
			fn(Position{X: x, Y: y})
		}
	}
}

// MarkAllDirty flags the entire grid for re-evaluation
func (g *Grid) MarkAllDirty() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.dirty.Fill()
}

// ClearDirtyBounds empties the dirty region
func (g *Grid) ClearDirtyBounds() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.dirty.Reset()
}

// CopyFrom copies the cells of a same-sized grid into g
func (g *Grid) CopyFrom(other *Grid) bool {
	if g == other {
		return true
	}
	other.mu.RLock()
	defer other.mu.RUnlock()
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.width != other.width || g.height != other.height {
		return false
	}
	copy(g.cells, other.cells)
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, c := range g.cells {
		if c.IsAlive() {
			count++
		}
	}
	return
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// snapshot copies the dimensions, cells and dirty rect under a single shared lock
func (g *Grid) snapshot() (width, height int, cells []Cell, dirty BoundedRect) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.width, g.height, append([]Cell(nil), g.cells...), g.dirty
}
