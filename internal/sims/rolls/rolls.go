// Package rolls implements the paper-roll decay simulation: active cells with
// too few active neighbours are removed pass after pass until nothing moves.
package rolls

import (
	"go.uber.org/zap"

	"rolls/internal/core"
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Inactive marks empty space.
	Inactive Cell = iota
	// Active marks a roll that is still present.
	Active
	// Eliminated marks a roll removed during the run. It is inactive for all
	// neighbour counts and never becomes Active again.
	Eliminated
)

const (
	// ActiveMarker is the input character for an Active cell.
	ActiveMarker = '@'
	// EliminatedMarker renders an Eliminated cell.
	EliminatedMarker = 'x'
	// InactiveMarker renders an Inactive cell.
	InactiveMarker = '.'

	// Threshold is the neighbour count an Active cell needs to survive a pass.
	Threshold = 4
)

// State is the global state of the simulation.
type State uint8

const (
	// Running means the last pass eliminated at least one cell, or no pass ran yet.
	Running State = iota
	// Converged means a full pass eliminated nothing. It is terminal.
	Converged
)

func (s State) String() string {
	if s == Converged {
		return "converged"
	}
	return "running"
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger routes per-pass diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

// Simulator owns a mutable ragged grid and runs elimination passes over it.
type Simulator struct {
	cfg       Config
	generated bool

	initial *core.RowGrid[Cell]
	grid    *core.RowGrid[Cell]

	state         State
	passes        int
	eliminated    int
	initialActive int
	history       []int

	flat    []Cell
	display []uint8

	log *zap.Logger
}

// New builds a simulator from input lines. Each rune equal to ActiveMarker
// becomes Active; everything else is Inactive.
func New(lines []string, opts ...Option) *Simulator {
	s := &Simulator{cfg: DefaultConfig(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.load(lines)
	return s
}

// NewWithConfig builds a simulator over a board generated from cfg.
func NewWithConfig(cfg Config, opts ...Option) *Simulator {
	s := New(Generate(cfg), opts...)
	s.cfg = cfg
	s.generated = true
	return s
}

// Run is the one-shot contract: build a grid from lines, run it to
// convergence, and return the total number of eliminations.
func Run(lines []string) int {
	return New(lines).Run()
}

// Accessible counts the Active cells in lines that would be removed by a
// single evaluation, without removing anything.
func Accessible(lines []string) int {
	return New(lines).Accessible()
}

func (s *Simulator) load(lines []string) {
	rows := make([][]rune, len(lines))
	widths := make([]int, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
		widths[i] = len(rows[i])
	}
	g := core.NewRowGrid[Cell](widths)
	active := 0
	for y, r := range rows {
		for x, ch := range r {
			if ch == ActiveMarker {
				g.Set(y, x, Active)
				active++
			}
		}
	}
	s.initial = g
	s.initialActive = active
	s.restart()
}

func (s *Simulator) restart() {
	s.grid = s.initial.Clone()
	s.state = Running
	s.passes = 0
	s.eliminated = 0
	s.history = s.history[:0]
}

// Name returns the simulation identifier.
func (s *Simulator) Name() string { return "rolls" }

// Size returns the widest row and the number of rows.
func (s *Simulator) Size() core.Size {
	return core.Size{W: s.grid.MaxWidth(), H: s.grid.Rows()}
}

// Reset restores the grid captured at construction. Generated boards are
// rebuilt from seed instead; a zero seed reuses the configured one.
func (s *Simulator) Reset(seed int64) {
	if s.generated {
		if seed != 0 {
			s.cfg.Seed = seed
		}
		s.load(Generate(s.cfg))
		return
	}
	s.restart()
}

// Step runs a single pass.
func (s *Simulator) Step() { s.Pass() }

// State reports whether the simulation is still running.
func (s *Simulator) State() State { return s.state }

// Converged reports whether the terminal state has been reached.
func (s *Simulator) Converged() bool { return s.state == Converged }

// Passes returns the number of completed passes, including the final empty one.
func (s *Simulator) Passes() int { return s.passes }

// Eliminated returns the running elimination total.
func (s *Simulator) Eliminated() int { return s.eliminated }

// InitialActive returns the number of Active cells at construction.
func (s *Simulator) InitialActive() int { return s.initialActive }

// ActiveCount returns the number of cells that are still Active.
func (s *Simulator) ActiveCount() int { return s.initialActive - s.eliminated }

// History returns the eliminations of every completed pass in order.
func (s *Simulator) History() []int {
	return append([]int(nil), s.history...)
}

// Neighbors counts Active cells among the eight neighbours of (row, col) in
// the live grid. Positions outside the grid, including columns past the end
// of a shorter neighbouring row, are not counted.
func (s *Simulator) Neighbors(row, col int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if c, ok := s.grid.At(row+dy, col+dx); ok && c == Active {
				n++
			}
		}
	}
	return n
}

// Accessible counts Active cells with fewer than Threshold active neighbours
// in the current grid. The grid is not modified.
func (s *Simulator) Accessible() int {
	count := 0
	for y := 0; y < s.grid.Rows(); y++ {
		for x, c := range s.grid.Row(y) {
			if c == Active && s.Neighbors(y, x) < Threshold {
				count++
			}
		}
	}
	return count
}

// Pass scans the grid top-to-bottom, left-to-right and eliminates every Active
// cell with fewer than Threshold active neighbours. Eliminations are written
// immediately, so cells visited later in the same pass already see them.
// A pass that eliminates nothing converges the simulation; once converged,
// Pass does nothing and returns 0.
func (s *Simulator) Pass() int {
	if s.state == Converged {
		return 0
	}
	removed := 0
	for y := 0; y < s.grid.Rows(); y++ {
		row := s.grid.Row(y)
		for x := range row {
			if row[x] != Active {
				continue
			}
			if s.Neighbors(y, x) < Threshold {
				row[x] = Eliminated
				removed++
			}
		}
	}
	s.passes++
	s.eliminated += removed
	s.history = append(s.history, removed)
	s.log.Debug("pass complete",
		zap.Int("pass", s.passes),
		zap.Int("eliminated", removed),
		zap.Int("total", s.eliminated))
	if removed == 0 {
		s.state = Converged
	}
	return removed
}

// Run executes passes until convergence and returns the total eliminations.
func (s *Simulator) Run() int {
	for s.state == Running {
		s.Pass()
	}
	s.log.Info("converged",
		zap.Int("passes", s.passes),
		zap.Int("eliminated", s.eliminated),
		zap.Int("remaining", s.ActiveCount()))
	return s.eliminated
}

// Lines renders the current grid, one string per row.
func (s *Simulator) Lines() []string {
	out := make([]string, s.grid.Rows())
	for y := range out {
		row := s.grid.Row(y)
		buf := make([]rune, len(row))
		for x, c := range row {
			switch c {
			case Active:
				buf[x] = ActiveMarker
			case Eliminated:
				buf[x] = EliminatedMarker
			default:
				buf[x] = InactiveMarker
			}
		}
		out[y] = string(buf)
	}
	return out
}
