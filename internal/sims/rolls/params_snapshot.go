package rolls

import (
	"strconv"

	"rolls/internal/core"
)

// Parameters describes the rule, the loaded board and, for generated boards,
// the generator settings.
func (s *Simulator) Parameters() core.ParameterSnapshot {
	size := s.Size()
	groups := []core.ParameterGroup{
		{
			Name: "Rule",
			Params: []core.Parameter{
				intParam("threshold", "Survival threshold", Threshold),
				stringParam("active_marker", "Active marker", string(rune(ActiveMarker))),
				stringParam("eliminated_marker", "Eliminated marker", string(rune(EliminatedMarker))),
			},
		},
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("rows", "Rows", size.H),
				intParam("max_width", "Widest row", size.W),
				intParam("initial_active", "Active at start", s.initialActive),
			},
		},
	}
	if s.generated {
		groups = append(groups, core.ParameterGroup{
			Name: "Generator",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				floatParam("density", "Density", s.cfg.Density),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		})
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
