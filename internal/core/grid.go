package core

// RowGrid stores a ragged 2D grid: every row keeps its own length for the
// lifetime of the grid.
type RowGrid[T any] struct {
	rows [][]T
	maxW int
}

// NewRowGrid allocates a grid with one row per entry in widths.
func NewRowGrid[T any](widths []int) *RowGrid[T] {
	g := &RowGrid[T]{rows: make([][]T, len(widths))}
	for i, w := range widths {
		if w < 0 {
			w = 0
		}
		g.rows[i] = make([]T, w)
		if w > g.maxW {
			g.maxW = w
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *RowGrid[T]) Rows() int { return len(g.rows) }

// Width returns the length of the given row, or 0 when the row does not exist.
func (g *RowGrid[T]) Width(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// MaxWidth returns the length of the widest row.
func (g *RowGrid[T]) MaxWidth() int { return g.maxW }

// InBounds reports whether (row, col) addresses a cell. Columns are checked
// against the length of that specific row.
func (g *RowGrid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < len(g.rows) && col >= 0 && col < len(g.rows[row])
}

// At returns the value at (row, col) and whether the position exists.
func (g *RowGrid[T]) At(row, col int) (T, bool) {
	if !g.InBounds(row, col) {
		var zero T
		return zero, false
	}
	return g.rows[row][col], true
}

// Set writes v at (row, col). Out-of-bounds writes are ignored.
func (g *RowGrid[T]) Set(row, col int, v T) {
	if g.InBounds(row, col) {
		g.rows[row][col] = v
	}
}

// Row exposes the backing slice of a row so callers can mutate it in place.
func (g *RowGrid[T]) Row(row int) []T {
	if row < 0 || row >= len(g.rows) {
		return nil
	}
	return g.rows[row]
}

// Clone returns a deep copy with identical row lengths.
func (g *RowGrid[T]) Clone() *RowGrid[T] {
	c := &RowGrid[T]{rows: make([][]T, len(g.rows)), maxW: g.maxW}
	for i, r := range g.rows {
		c.rows[i] = append([]T(nil), r...)
	}
	return c
}

// Flatten writes the grid into dst in row-major order using MaxWidth as the
// stride; positions past the end of a short row receive pad. dst is grown when
// it is too small and the filled slice is returned.
func (g *RowGrid[T]) Flatten(dst []T, pad T) []T {
	total := g.maxW * len(g.rows)
	if cap(dst) < total {
		dst = make([]T, total)
	}
	dst = dst[:total]
	for y, r := range g.rows {
		base := y * g.maxW
		n := copy(dst[base:base+g.maxW], r)
		for x := n; x < g.maxW; x++ {
			dst[base+x] = pad
		}
	}
	return dst
}
