package core

// Size describes the dimensions of a simulation grid. For ragged grids W is
// the width of the widest row.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a steppable grid simulation implements.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Converger is implemented by simulations that reach a terminal state.
type Converger interface {
	Converged() bool
}
