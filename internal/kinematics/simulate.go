package kinematics

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"vecmath/internal/config"
	"vecmath/pkg/vec"
)

type SimResult struct {
	RunID    string       `json:"run_id"`
	Scenario string       `json:"scenario"`
	Done     bool         `json:"done"`
	Duration float64      `json:"duration"`
	Steps    int          `json:"steps"`
	Bodies   []BodyResult `json:"bodies"`
	Events   []Event      `json:"events,omitempty"`
}

type BodyResult struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Start        vec.Vec2[float64] `json:"start"`
	Final        vec.Vec2[float64] `json:"final"`
	Cell         vec.Vec2[int]     `json:"cell"`
	Traveled     float64           `json:"traveled"`
	Displacement float64           `json:"displacement"`
	Arrivals     int               `json:"arrivals"`
	Laps         int               `json:"laps,omitempty"`
	MaxDeviation float64           `json:"max_deviation"`
	Caught       bool              `json:"caught,omitempty"`
	CaughtAt     float64           `json:"caught_at,omitempty"`
	Finished     bool              `json:"finished"`
}

// RunSingle steps every body of sc in declaration order until all of them
// have finished or sc.Steps is exhausted.
func RunSingle(env *Env, sc *config.ScenarioConfig, record bool) SimResult {
	var events []Event
	emit := func(ev Event) {
		if record {
			events = append(events, ev)
		}
	}
	bodies := NewBodies(sc)

	logLine := func(ts float64, id, format string, args ...any) {
		if !record {
			return
		}
		emit(Event{T: ts, Type: "LogLine", Payload: map[string]any{
			"id": id, "text": fmt.Sprintf(format, args...),
		}})
	}
	for _, b := range bodies {
		switch {
		case b.Chase != nil:
			logLine(0, b.ID, "%s chases %s from %v", b.Name, b.Chase.Name, b.Pos)
		case len(b.Waypoints) > 0:
			logLine(0, b.ID, "%s sets out from %v through %d waypoints", b.Name, b.Pos, len(b.Waypoints))
		}
	}

	env.Delta = sc.Dt
	env.Time = 0
	steps := 0
	done := allFinished(bodies)
	for ; steps < sc.Steps && !done; steps++ {
		for _, b := range bodies {
			if b.Chase != nil {
				stepChase(env, b, emit)
			} else {
				stepWaypoints(env, b, sc.ArriveRadius, emit)
			}
		}
		env.Time += env.Delta
		done = allFinished(bodies)
	}

	res := SimResult{
		RunID:    uuid.NewString(),
		Scenario: sc.ID,
		Done:     done,
		Duration: env.Time,
		Steps:    steps,
		Events:   events,
	}
	for _, b := range bodies {
		res.Bodies = append(res.Bodies, BodyResult{
			ID:           b.ID,
			Name:         b.Name,
			Start:        b.Start,
			Final:        b.Pos,
			Cell:         Snap(b.Pos, sc.Cell),
			Traveled:     b.Traveled,
			Displacement: b.Pos.Sub(b.Start).Length(),
			Arrivals:     b.Arrivals,
			Laps:         b.Laps,
			MaxDeviation: b.MaxDeviation,
			Caught:       b.Caught,
			CaughtAt:     b.CaughtAt,
			Finished:     b.Finished,
		})
	}
	return res
}

func allFinished(bodies []*Body) bool {
	for _, b := range bodies {
		if !b.Finished {
			return false
		}
	}
	return true
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
