package render

import "image/color"

// fillPaletteRGBA writes one RGBA pixel per cell into buf, looking colors up
// by cell value. Values past the end of the palette use its last entry and an
// empty palette clears the pixels to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	n := min(len(cells), len(buf)/4)
	if len(palette) == 0 {
		clear(buf[:n*4])
		return
	}
	last := len(palette) - 1
	for i := 0; i < n; i++ {
		col := palette[min(int(cells[i]), last)]
		px := buf[i*4 : i*4+4]
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
}
