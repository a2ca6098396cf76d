package kinematics

import (
	"math/rand"

	"vecmath/internal/config"
	"vecmath/pkg/vec"
)

type Event struct {
	T       float64        `json:"t"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Env struct {
	Time  float64
	Delta float64
	Rng   *rand.Rand
}

type Body struct {
	ID     string
	Name   string
	Pos    vec.Vec2[float64]
	Start  vec.Vec2[float64]
	Speed  float64
	Range  float64
	Jitter float64

	Waypoints []vec.Vec2[float64]
	Loop      bool
	Chase     *Body

	next     int
	segStart vec.Vec2[float64]

	Traveled     float64
	Arrivals     int
	Laps         int
	MaxDeviation float64
	Caught       bool
	CaughtAt     float64
	Finished     bool
}

func NewBody(def config.BodyDef) *Body {
	name := def.Name
	if name == "" {
		name = def.ID
	}
	b := &Body{
		ID: def.ID, Name: name,
		Pos: def.Spawn, Start: def.Spawn, segStart: def.Spawn,
		Speed: def.Speed, Range: def.Range, Jitter: def.Jitter,
		Waypoints: append([]vec.Vec2[float64](nil), def.Waypoints...),
		Loop:      def.Loop,
	}
	// stationary bodies have nothing to finish
	b.Finished = len(b.Waypoints) == 0 && def.Chase == ""
	return b
}

// NewBodies builds the bodies of sc in order and links chasers to their quarry.
func NewBodies(sc *config.ScenarioConfig) []*Body {
	bodies := make([]*Body, 0, len(sc.Bodies))
	byID := map[string]*Body{}
	for _, def := range sc.Bodies {
		b := NewBody(def)
		bodies = append(bodies, b)
		byID[b.ID] = b
	}
	for i, def := range sc.Bodies {
		if def.Chase != "" {
			bodies[i].Chase = byID[def.Chase]
		}
	}
	return bodies
}

// Target returns the waypoint the body is heading for.
func (b *Body) Target() (vec.Vec2[float64], bool) {
	if b.next >= len(b.Waypoints) {
		return vec.Vec2[float64]{}, false
	}
	return b.Waypoints[b.next], true
}

// Offset returns the signed distance of the body from the line through its
// current segment, positive to the left of travel, together with the closest
// point on that line. A degenerate segment reports zero offset at its start.
func (b *Body) Offset() (float64, vec.Vec2[float64]) {
	target, ok := b.Target()
	if !ok {
		return 0, b.Pos
	}
	seg := target.Sub(b.segStart)
	if seg.LengthSquare() == 0 {
		return 0, b.segStart
	}
	rel := b.Pos.Sub(b.segStart)
	foot := b.segStart.Add(rel.ProjectionVector(seg))
	d := b.Pos.Sub(foot).Length()
	if vec.Cross(seg, rel) < 0 {
		d = -d
	}
	return d, foot
}

// Progress is how far along the current segment the body is, as a fraction
// of the segment length. It is NaN for a degenerate segment.
func (b *Body) Progress() float64 {
	target, ok := b.Target()
	if !ok {
		return 1
	}
	seg := target.Sub(b.segStart)
	return b.Pos.Sub(b.segStart).Projection(seg) / seg.Length()
}
