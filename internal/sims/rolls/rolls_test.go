package rolls

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var sampleBoard = []string{
	"..@@.@@@@.",
	"@@@.@.@.@@",
	"@@@@@.@.@@",
	"@.@@@@..@.",
	"@@.@@@@.@@",
	".@@@@@@@.@",
	".@.@.@.@@@",
	"@.@@@.@@@@",
	".@@@@@@@@.",
	"@.@.@@@.@.",
}

func TestRunScenarios(t *testing.T) {
	cases := []struct {
		name    string
		lines   []string
		total   int
		history []int
	}{
		{name: "square", lines: []string{"@@", "@@"}, total: 4, history: []int{4, 0}},
		{name: "plus", lines: []string{".@.", "@@@", ".@."}, total: 5, history: []int{5, 0}},
		{name: "single", lines: []string{"@"}, total: 1, history: []int{1, 0}},
		{name: "empty input", lines: nil, total: 0, history: []int{0}},
		{name: "empty line", lines: []string{""}, total: 0, history: []int{0}},
		{name: "all inactive", lines: []string{"...", "..."}, total: 0, history: []int{0}},
		{name: "full 3x3", lines: []string{"@@@", "@@@", "@@@"}, total: 9, history: []int{4, 5, 0}},
		{name: "ragged", lines: []string{"@@@", "@", "@@@@@"}, total: 9, history: []int{9, 0}},
		{name: "multibyte column", lines: []string{"é@@", "@@"}, total: 4, history: []int{4, 0}},
		{name: "sample", lines: sampleBoard, total: 43, history: []int{30, 9, 4, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sim := New(tc.lines)
			assert.Equal(t, tc.total, sim.Run())
			assert.Equal(t, tc.history, sim.History())
			assert.Equal(t, Converged, sim.State())
			assert.Equal(t, tc.total, Run(tc.lines))
		})
	}
}

func TestRunDoesNotMutateInput(t *testing.T) {
	lines := []string{"@@", "@@"}
	Run(lines)
	assert.Equal(t, []string{"@@", "@@"}, lines)
}

func TestInPlaceVisibilityWithinPass(t *testing.T) {
	// A snapshot update would remove only the 13 accessible cells first.
	sim := New(sampleBoard)
	require.Equal(t, 13, sim.Accessible())
	assert.Equal(t, 30, sim.Pass())
}

func TestFinalGridRender(t *testing.T) {
	sim := New(sampleBoard)
	sim.Run()

	want := []string{
		"..xx.xxxx.",
		"xxx.x.x.xx",
		"xxxxx.x.xx",
		"x.xx@@..x.",
		"xx.@@@@.xx",
		".xx@@@@@.x",
		".x.@.@.@@x",
		"x.x@@.@@@x",
		".xx@@@@@x.",
		"x.x.@@@.x.",
	}
	if diff := cmp.Diff(want, sim.Lines()); diff != "" {
		t.Fatalf("final grid mismatch (-want +got):\n%s", diff)
	}
}

func TestStableConfigurationConvergesInOnePass(t *testing.T) {
	sim := New([]string{"@@@@@", "@@@@@", "@@@@@", "@@@@@", "@@@@@"})
	require.Equal(t, 4, sim.Run())

	stable := New(sim.Lines())
	want := stable.Lines()
	assert.Equal(t, 0, stable.Run())
	assert.Equal(t, 1, stable.Passes())
	if diff := cmp.Diff(want, stable.Lines()); diff != "" {
		t.Fatalf("stable grid changed (-want +got):\n%s", diff)
	}
}

func TestConvergedGridIsIdempotent(t *testing.T) {
	sim := New(sampleBoard)
	sim.Run()

	assert.Equal(t, 0, Run(sim.Lines()))
	passes := sim.Passes()
	assert.Equal(t, 0, sim.Pass())
	assert.Equal(t, 43, sim.Run())
	assert.Equal(t, passes, sim.Passes())
	assert.Equal(t, 43, sim.Eliminated())
}

func TestNeighborsRespectRowLength(t *testing.T) {
	sim := New([]string{"@@@", "@", "@@@@@"})

	assert.Equal(t, 4, sim.Neighbors(1, 0))
	assert.Equal(t, 1, sim.Neighbors(0, 2))
	assert.Equal(t, 2, sim.Neighbors(2, 2))
	assert.Equal(t, 1, sim.Neighbors(2, 4))
	assert.Equal(t, 2, sim.Neighbors(0, 0))
}

func TestGeneratedBoardsHonourInvariants(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		cfg := Config{Width: 24, Height: 18, Density: 0.55 + float64(seed%4)*0.1, Seed: seed}
		sim := NewWithConfig(cfg)
		k := sim.InitialActive()

		prevActive := k
		for sim.State() == Running {
			removed := sim.Pass()
			require.GreaterOrEqual(t, removed, 0)
			require.Equal(t, prevActive-removed, sim.ActiveCount())
			prevActive = sim.ActiveCount()
		}

		history := sim.History()
		eliminating := 0
		sum := 0
		for _, n := range history {
			if n > 0 {
				eliminating++
			}
			sum += n
		}
		assert.LessOrEqual(t, eliminating, k, "seed %d", seed)
		assert.LessOrEqual(t, sim.Passes(), k+1, "seed %d", seed)
		assert.Equal(t, 0, history[len(history)-1], "seed %d", seed)
		assert.Equal(t, sum, sim.Eliminated(), "seed %d", seed)

		rendered := strings.Join(sim.Lines(), "")
		assert.Equal(t, sim.Eliminated(), strings.Count(rendered, string(EliminatedMarker)), "seed %d", seed)
		assert.Equal(t, sim.ActiveCount(), strings.Count(rendered, string(ActiveMarker)), "seed %d", seed)
	}
}

func TestResetRestoresInput(t *testing.T) {
	sim := New(sampleBoard)
	sim.Run()
	sim.Reset(99)

	assert.Equal(t, Running, sim.State())
	assert.Equal(t, 0, sim.Passes())
	assert.Empty(t, sim.History())
	assert.Equal(t, 43, sim.Run())
}

func TestSizeAndCellsPadRaggedRows(t *testing.T) {
	sim := New([]string{"@", "..@"})

	assert.Equal(t, 3, sim.Size().W)
	assert.Equal(t, 2, sim.Size().H)
	assert.Equal(t, []uint8{1, 3, 3, 0, 0, 1}, sim.Cells())

	sim.Step()
	assert.Equal(t, []uint8{2, 3, 3, 0, 0, 2}, sim.Cells())
	assert.Len(t, sim.Palette(), 4)
}

func TestRunLogsEveryPass(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sim := New([]string{"@@@", "@@@", "@@@"}, WithLogger(zap.New(core)))
	sim.Run()

	passes := logs.FilterMessage("pass complete").All()
	require.Len(t, passes, 3)
	assert.Equal(t, int64(4), passes[0].ContextMap()["eliminated"])
	assert.Equal(t, int64(9), passes[1].ContextMap()["total"])
	assert.Equal(t, 1, logs.FilterMessage("converged").Len())
}

func TestParametersExposeThreshold(t *testing.T) {
	p, ok := New(sampleBoard).Parameters().Lookup("threshold")
	require.True(t, ok)
	assert.Equal(t, "4", p.Value)

	_, ok = New(sampleBoard).Parameters().Lookup("density")
	assert.False(t, ok, "loaded boards have no generator group")

	p, ok = NewWithConfig(DefaultConfig()).Parameters().Lookup("seed")
	require.True(t, ok)
	assert.Equal(t, "1337", p.Value)
}
