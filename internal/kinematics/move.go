package kinematics

import (
	"math"

	"vecmath/internal/util"
	"vecmath/pkg/vec"
)

// moveToward advances b toward target, stopping short by stopAt, and returns
// the distance actually covered including any jitter.
func moveToward(env *Env, b *Body, target vec.Vec2[float64], stopAt float64, emit func(Event)) float64 {
	diff := target.Sub(b.Pos)
	dist := diff.Length()
	if dist <= stopAt {
		return 0
	}
	step := b.Speed * env.Delta
	if step > dist-stopAt {
		step = dist - stopAt
	}
	if step <= 0 {
		return 0
	}
	old := b.Pos
	b.Pos.AddAssign(diff.Normalized().Scale(step))
	if b.Jitter > 0 {
		b.Pos.AddAssign(util.Jitter(env.Rng, b.Jitter*env.Delta))
	}
	moved := b.Pos.Sub(old).Length()
	b.Traveled += moved
	emit(Event{T: env.Time, Type: "Move", Payload: map[string]any{
		"id": b.ID, "from": old, "to": b.Pos,
	}})
	return moved
}

func stepWaypoints(env *Env, b *Body, arriveRadius float64, emit func(Event)) {
	target, ok := b.Target()
	if !ok {
		return
	}
	moveToward(env, b, target, 0, emit)

	if off, _ := b.Offset(); math.Abs(off) > b.MaxDeviation {
		b.MaxDeviation = math.Abs(off)
	}
	if b.Pos.Sub(target).Length() > arriveRadius {
		return
	}

	b.Arrivals++
	b.segStart = target
	b.next++
	emit(Event{T: env.Time, Type: "Arrive", Payload: map[string]any{
		"id": b.ID, "at": target, "index": b.next - 1,
	}})
	if b.next < len(b.Waypoints) {
		return
	}
	if b.Loop {
		b.Laps++
		b.next = 0
	}
	b.Finished = true
}

func stepChase(env *Env, b *Body, emit func(Event)) {
	if b.Chase == nil {
		return
	}
	moveToward(env, b, b.Chase.Pos, b.Range, emit)
	if b.Caught || b.Pos.Sub(b.Chase.Pos).Length() > b.Range {
		return
	}
	b.Caught = true
	b.CaughtAt = env.Time
	b.Finished = true
	emit(Event{T: env.Time, Type: "Catch", Payload: map[string]any{
		"id": b.ID, "target": b.Chase.ID, "at": b.Pos,
	}})
}

// Snap maps p to the integer grid cell of side cell that contains it.
func Snap(p vec.Vec2[float64], cell float64) vec.Vec2[int] {
	c := p.Div(cell)
	return vec.New(int(math.Floor(c.X)), int(math.Floor(c.Y)))
}
