package utils

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/game"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeFile(t, "life.json", `{
		"width": 32,
		"height": 16,
		"step_target": 100,
		"starting_state": "random",
		"seed": 42,
		"threaded": true,
		"frame_rate": 1000000
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 16 || cfg.StepTarget != 100 {
		t.Fatalf("unexpected dimensions/steps: %+v", cfg)
	}
	if cfg.StartingState != game.PresetRandom || cfg.Seed != 42 || !cfg.Threaded {
		t.Fatalf("unexpected game settings: %+v", cfg)
	}
	if cfg.FrameRate != time.Millisecond {
		t.Fatalf("FrameRate = %v, want 1ms", cfg.FrameRate)
	}
	// untouched keys keep their defaults
	if !cfg.Render {
		t.Fatal("Render default lost")
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "life.yaml", `
width: 20
height: 10
logging: true
step_target: 8
starting_state: patterns
frame_rate: 50ms
stagnation_threshold: 4
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 20 || cfg.Height != 10 || !cfg.Logging || cfg.StepTarget != 8 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.StartingState != game.PresetPatterns {
		t.Fatalf("StartingState = %v, want patterns", cfg.StartingState)
	}
	if cfg.FrameRate != 50*time.Millisecond || cfg.StagnationThreshold != 4 {
		t.Fatalf("unexpected run settings: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file should fail")
	}
	if _, err := LoadConfig(writeFile(t, "bad.json", `{"width": "wide"}`)); err == nil {
		t.Fatal("malformed JSON should fail")
	}
	if _, err := LoadConfig(writeFile(t, "bad.yml", "starting_state: spaceship\n")); err == nil {
		t.Fatal("unknown preset should fail")
	}
}

func TestGameConfigInitializes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StepTarget = 4

	g := game.New()
	if err := g.Initialize(cfg.GameConfig(nil)); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := g.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.StepCount() != 4 {
		t.Fatalf("StepCount = %d, want 4", g.StepCount())
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 30, 10*time.Millisecond)
	if s.AveragePopulation != 100 || math.Abs(s.GenerationsPerSecond-100) > 1e-9 {
		t.Fatalf("first update: %+v", s)
	}

	s.Update(2, 200, 12, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if s.TotalGenerations != 2 || s.ActiveCells != 200 || s.DirtyArea != 12 {
		t.Fatalf("second update: %+v", s)
	}
}

func TestStatsObserve(t *testing.T) {
	s := NewStats()
	for _, h := range []string{"a", "b", "c"} {
		if s.Observe(h) {
			t.Fatalf("distinct hash %q reported stagnant", h)
		}
	}
	if !s.Observe("b") {
		t.Fatal("period-2 repeat not detected")
	}
	if !s.Observe("b") {
		t.Fatal("still life not detected")
	}
	for _, h := range []string{"d", "e", "f", "g"} {
		s.Observe(h)
	}
	if s.Observe("a") {
		t.Fatal("hash outside the window reported stagnant")
	}
}
