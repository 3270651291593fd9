package game

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Preset selects how Initialize seeds a fresh board
type Preset int

const (
	// PresetCustom leaves the board empty for the caller to populate with SetCell
	PresetCustom Preset = iota
	// PresetRandom makes every cell alive with probability one half
	PresetRandom
	// PresetGlider places a single glider in the top-left corner
	PresetGlider
	// PresetPatterns places a handful of still lifes, oscillators and a glider
	PresetPatterns
)

var presetNames = map[Preset]string{
	PresetCustom:   "custom",
	PresetRandom:   "random",
	PresetGlider:   "glider",
	PresetPatterns: "patterns",
}

func (p Preset) String() string {
	if name, ok := presetNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePreset maps a case-insensitive preset name to its Preset
func ParsePreset(name string) (Preset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range presetNames {
		if n == name {
			return p, nil
		}
	}
	return PresetCustom, errors.Errorf("[ParsePreset] unknown starting state: %q", name)
}

// MarshalText lets presets appear by name in JSON and YAML config files
func (p Preset) MarshalText() ([]byte, error) {
	if _, ok := presetNames[p]; !ok {
		return nil, errors.Errorf("[MarshalText] unknown preset value: %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Preset) UnmarshalText(text []byte) error {
	parsed, err := ParsePreset(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Pattern is a set of live-cell (x, y) offsets relative to a placement origin
type Pattern [][2]int

// At returns the board position of the i-th cell when placed at origin
func (p Pattern) At(i int, origin model.Position) model.Position {
	return origin.Add(model.Pos(p[i][0], p[i][1]))
}

var (
	// Glider travels one cell down and right every four generations
	Glider = Pattern{{2, 0}, {0, 1}, {2, 1}, {1, 2}, {2, 2}}
	// Blinker is a period-2 oscillator
	Blinker = Pattern{{0, 0}, {1, 0}, {2, 0}}
	// Block is a still life
	Block = Pattern{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	// Beacon is a period-2 oscillator made of two diagonal blocks
	Beacon = Pattern{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}}
	// Toad is a period-2 oscillator
	Toad = Pattern{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}}
)

// seeders dispatches a preset to the cells it places
var seeders = map[Preset]func(g *Game){
	PresetCustom: func(*Game) {},
	PresetRandom: (*Game).Randomize,
	PresetGlider: func(g *Game) {
		g.Place(Glider, model.Pos(0, 0))
	},
	PresetPatterns: func(g *Game) {
		w, h := g.Width(), g.Height()
		g.Place(Glider, model.Pos(1, 1))
		g.Place(Blinker, model.Pos(w/2-1, 2))
		g.Place(Block, model.Pos(w-4, h-4))
		g.Place(Beacon, model.Pos(1, h-6))
		g.Place(Toad, model.Pos(w/2-2, h/2))
	},
}
