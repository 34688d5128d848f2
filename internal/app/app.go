//go:build ebiten

package app

import (
	"image/color"
	"time"

	"rolls/internal/core"
	"rolls/internal/render"
	"rolls/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface, advancing one
// simulation step per tick of a FixedStep limiter.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	stepper *core.FixedStep
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim),
		stepper: core.NewFixedStep(cfg.PassRate),
		palette: []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}},
		scale:   cfg.Scale,
		seed:    cfg.Seed,
		paused:  true,
	}
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

func (g *Game) converged() bool {
	c, ok := g.sim.(core.Converger)
	return ok && c.Converged()
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.converged() {
		g.tickOnce = false
		return nil
	}
	if g.tickOnce || (!g.paused && g.stepper.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	g.painter.Blit(screen, size.W, size.H, g.sim.Cells(), g.palette, g.scale)
	g.hud.Draw(screen, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return max(s.W, 1) * g.scale, max(s.H, 1) * g.scale
}
