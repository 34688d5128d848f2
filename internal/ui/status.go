// Package ui builds the heads-up display shown over the viewer.
package ui

import (
	"fmt"

	"rolls/internal/core"
)

type progressReporter interface {
	Passes() int
	Eliminated() int
	ActiveCount() int
}

// StatusLines describes sim as short text lines: identity, progress, and any
// parameters the sim exposes.
func StatusLines(sim core.Sim, paused bool) []string {
	size := sim.Size()
	lines := []string{fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H)}

	state := "running"
	if c, ok := sim.(core.Converger); ok && c.Converged() {
		state = "converged"
	} else if paused {
		state = "paused"
	}
	lines = append(lines, "state: "+state)

	if p, ok := sim.(progressReporter); ok {
		lines = append(lines,
			fmt.Sprintf("pass: %d", p.Passes()),
			fmt.Sprintf("eliminated: %d", p.Eliminated()),
			fmt.Sprintf("active: %d", p.ActiveCount()),
		)
	}

	if provider, ok := sim.(core.ParameterProvider); ok {
		for _, g := range provider.Parameters().Groups {
			lines = append(lines, "", "["+g.Name+"]")
			for _, p := range g.Params {
				lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
			}
		}
	}
	return lines
}
