package model

// Cell holds the state of a single grid slot in one byte
type Cell uint8

const (
	CellDead  Cell = 0
	CellAlive Cell = 1
)

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c != CellDead
}

// Set updates the cell in place
func (c *Cell) Set(alive bool) {
	if alive {
		*c = CellAlive
		return
	}
	*c = CellDead
}

// Position is an (x, y) grid coordinate
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add applies a delta to the position
func (p Position) Add(delta Position) Position {
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// MooreOffsets lists the deltas of the 8 cells surrounding a position
var MooreOffsets = [8]Position{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
