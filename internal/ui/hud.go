//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"rolls/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudLineHeight = 16
	hudPadding    = 6
)

// HUD draws the status panel in the top-left corner of the viewer.
type HUD struct {
	sim     core.Sim
	visible bool
}

// NewHUD constructs a visible HUD for sim.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, visible: true}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Draw renders the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if h == nil || !h.visible {
		return
	}
	lines := StatusLines(h.sim, paused)
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	panelW := float32(width*6 + 2*hudPadding)
	panelH := float32(len(lines)*hudLineHeight + 2*hudPadding)
	vector.DrawFilledRect(screen, 0, 0, panelW, panelH, color.RGBA{A: 180}, false)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), hudPadding, hudPadding)
}
