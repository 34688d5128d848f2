package rolls

import (
	"slices"
	"strings"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := Config{Width: 20, Height: 10, Density: 0.5, Seed: 42}
	a := Generate(cfg)
	b := Generate(cfg)
	if !slices.Equal(a, b) {
		t.Fatal("Generate not deterministic for identical config")
	}
	if len(a) != 10 {
		t.Fatalf("rows = %d, want 10", len(a))
	}
	for i, line := range a {
		if len(line) != 20 {
			t.Fatalf("row %d width = %d, want 20", i, len(line))
		}
	}
}

func TestGenerateDensityExtremes(t *testing.T) {
	empty := strings.Join(Generate(Config{Width: 8, Height: 8, Density: 0, Seed: 1}), "")
	if strings.Contains(empty, "@") {
		t.Fatal("density 0 produced active cells")
	}
	full := strings.Join(Generate(Config{Width: 8, Height: 8, Density: 1, Seed: 1}), "")
	if strings.Count(full, "@") != 64 {
		t.Fatal("density 1 left inactive cells")
	}
	if Generate(Config{Width: 0, Height: 4}) != nil {
		t.Fatal("zero width should produce no board")
	}
}

func TestResetGeneratedBoard(t *testing.T) {
	sim := NewWithConfig(Config{Width: 16, Height: 16, Density: 0.7, Seed: 5})
	before := sim.Lines()
	sim.Run()

	sim.Reset(0)
	if !slices.Equal(before, sim.Lines()) {
		t.Fatal("Reset(0) should rebuild the configured board")
	}

	sim.Reset(6)
	if slices.Equal(before, sim.Lines()) {
		t.Fatal("Reset with a new seed should generate a different board")
	}
	if sim.State() != Running || sim.Passes() != 0 {
		t.Fatal("Reset should restart the run")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "12", "h": "-3", "density": "0.25", "seed": "9"})
	if c.Width != 12 || c.Height != DefaultConfig().Height {
		t.Fatalf("dims = %dx%d", c.Width, c.Height)
	}
	if c.Density != 0.25 || c.Seed != 9 {
		t.Fatalf("density=%v seed=%d", c.Density, c.Seed)
	}

	c = FromMap(map[string]string{"density": "1.5"})
	if c.Density != DefaultConfig().Density {
		t.Fatal("out-of-range density should be ignored")
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}
