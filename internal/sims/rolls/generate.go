package rolls

import "rolls/internal/core"

// Generate builds a Width x Height board where each cell is Active with
// probability Density. The same config always yields the same board.
func Generate(cfg Config) []string {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil
	}
	rng := core.NewRNG(cfg.Seed)
	lines := make([]string, cfg.Height)
	buf := make([]byte, cfg.Width)
	for y := range lines {
		for x := range buf {
			if rng.Chance(cfg.Density) {
				buf[x] = ActiveMarker
				continue
			}
			buf[x] = InactiveMarker
		}
		lines[y] = string(buf)
	}
	return lines
}
