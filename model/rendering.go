package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	textAlive      = "#"
	textDead       = "."
	textDirtyAlive = "@"
	textDirtyDead  = "+"

	macosClearCmd = "clear"
)

// TextRenderer turns a grid into a human-readable snapshot
type TextRenderer struct {
	Alive string
	Dead  string

	// Used instead of Alive/Dead for cells inside the dirty region when MarkDirty is set
	DirtyAlive string
	DirtyDead  string
	MarkDirty  bool
}

// DefaultTextRenderer renders alive cells as '#' and dead cells as '.'
func DefaultTextRenderer() TextRenderer {
	return TextRenderer{
		Alive:      textAlive,
		Dead:       textDead,
		DirtyAlive: textDirtyAlive,
		DirtyDead:  textDirtyDead,
	}
}

// Render returns one line per row, taken from a consistent snapshot of the grid
func (r TextRenderer) Render(g *Grid) string {
	width, height, cells, dirty := g.snapshot()

	var sb strings.Builder
	sb.Grow(height * (width*max(len(r.Alive), len(r.Dead)) + 1))
	for y := range height {
		for x := range width {
			alive := cells[y*width+x].IsAlive()
			marked := r.MarkDirty && dirty.Contains(x, y)
			switch {
			case alive && marked:
				sb.WriteString(r.DirtyAlive)
			case alive:
				sb.WriteString(r.Alive)
			case marked:
				sb.WriteString(r.DirtyDead)
			default:
				sb.WriteString(r.Dead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// GridToString renders a grid with the default glyphs
func GridToString(g *Grid) string {
	return DefaultTextRenderer().Render(g)
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	fmt.Fprint(r.out(), TextRenderer{Alive: gridPosBlock, Dead: gridPosEmpty}.Render(g))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
