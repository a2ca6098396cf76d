package util

import (
	"math"
	"math/rand"

	"vecmath/pkg/vec"
)

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Jitter returns a point drawn uniformly from the disc of radius r.
func Jitter(rng *rand.Rand, r float64) vec.Vec2[float64] {
	if r <= 0 || rng == nil {
		return vec.Vec2[float64]{}
	}
	theta := rng.Float64() * 2 * math.Pi
	d := r * math.Sqrt(rng.Float64())
	return vec.New(math.Cos(theta), math.Sin(theta)).Scale(d)
}
