// Package sweep runs many independent decay simulations over generated
// boards and summarises how board density drives the outcome.
package sweep

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rolls/internal/sims/rolls"
)

// Scenario is a single generated board.
type Scenario struct {
	Width   int
	Height  int
	Density float64
	Seed    int64
}

func (s Scenario) String() string {
	return fmt.Sprintf("%dx%d density=%.2f seed=%d", s.Width, s.Height, s.Density, s.Seed)
}

// Result records the outcome of running one Scenario to convergence.
type Result struct {
	Scenario   Scenario
	Active     int
	Eliminated int
	Passes     int
}

// Fraction returns the share of initially active cells that were eliminated.
func (r Result) Fraction() float64 {
	if r.Active == 0 {
		return 0
	}
	return float64(r.Eliminated) / float64(r.Active)
}

// Summary aggregates every Result that shares a density.
type Summary struct {
	Density      float64
	Runs         int
	MeanFraction float64
	MeanPasses   float64
	MaxPasses    int
}

// Scenarios expands densities and seeds 1..seeds into boards of the given size.
func Scenarios(width, height, seeds int, densities []float64) []Scenario {
	var out []Scenario
	for _, d := range densities {
		for seed := 1; seed <= seeds; seed++ {
			out = append(out, Scenario{Width: width, Height: height, Density: d, Seed: int64(seed)})
		}
	}
	return out
}

// Runner executes scenarios on a bounded pool of goroutines. Every simulation
// is single-threaded; only independent boards run concurrently.
type Runner struct {
	Workers int
	Logger  *zap.Logger
}

// Run returns one Result per scenario, in scenario order. It stops early and
// returns the context error when ctx is cancelled.
func (r Runner) Run(parent context.Context, scenarios []Scenario) ([]Result, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	workers := r.Workers
	if workers <= 0 {
		workers = 1
	}

	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(parent)
	g.SetLimit(workers)

	for i, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = runScenario(sc)
			log.Debug("scenario done",
				zap.Stringer("scenario", sc),
				zap.Int("eliminated", results[i].Eliminated),
				zap.Int("passes", results[i].Passes))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(sc Scenario) Result {
	sim := rolls.NewWithConfig(rolls.Config{
		Width:   sc.Width,
		Height:  sc.Height,
		Density: sc.Density,
		Seed:    sc.Seed,
	})
	active := sim.InitialActive()
	eliminated := sim.Run()
	return Result{
		Scenario:   sc,
		Active:     active,
		Eliminated: eliminated,
		Passes:     sim.Passes(),
	}
}

// Summarize groups results by density, ordered by ascending density.
func Summarize(results []Result) []Summary {
	byDensity := map[float64]*Summary{}
	for _, res := range results {
		s, ok := byDensity[res.Scenario.Density]
		if !ok {
			s = &Summary{Density: res.Scenario.Density}
			byDensity[res.Scenario.Density] = s
		}
		s.Runs++
		s.MeanFraction += res.Fraction()
		s.MeanPasses += float64(res.Passes)
		if res.Passes > s.MaxPasses {
			s.MaxPasses = res.Passes
		}
	}

	out := make([]Summary, 0, len(byDensity))
	for _, s := range byDensity {
		s.MeanFraction /= float64(s.Runs)
		s.MeanPasses /= float64(s.Runs)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Density < out[j].Density })
	return out
}
