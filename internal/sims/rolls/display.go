package rolls

import "image/color"

// displayVoid marks buffer positions past the end of a short row.
const displayVoid Cell = 3

var rollsPalette = []color.RGBA{
	Inactive:    {R: 24, G: 24, B: 28, A: 255},
	Active:      {R: 232, G: 226, B: 208, A: 255},
	Eliminated:  {R: 176, G: 58, B: 46, A: 255},
	displayVoid: {R: 0, G: 0, B: 0, A: 255},
}

// Palette exposes the colors used to render Cells values.
func (s *Simulator) Palette() []color.RGBA {
	return rollsPalette
}

// Cells returns the grid as a row-major buffer with a stride of the widest
// row. Values are Cell states; positions beyond a short row hold a separate
// padding value so the viewer can tell them apart from empty space.
func (s *Simulator) Cells() []uint8 {
	s.flat = s.grid.Flatten(s.flat, displayVoid)
	if cap(s.display) < len(s.flat) {
		s.display = make([]uint8, len(s.flat))
	}
	s.display = s.display[:len(s.flat)]
	for i, c := range s.flat {
		s.display[i] = uint8(c)
	}
	return s.display
}
