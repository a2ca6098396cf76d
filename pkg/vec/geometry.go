package vec

import (
	"math"

	"github.com/chewxy/math32"
)

func (a Vec2[T]) Dot(b Vec2[T]) T { return a.X*b.X + a.Y*b.Y }

// Cross returns the z component of the 3D cross product of a and b.
func Cross[T Scalar](a, b Vec2[T]) T { return a.X*b.Y - a.Y*b.X }

func (a Vec2[T]) LengthSquare() T { return a.X*a.X + a.Y*a.Y }

// Length is computed in single precision for float32 and in float64 for every
// other component type. Integer lengths are truncated toward zero.
func (a Vec2[T]) Length() T { return sqrt(a.LengthSquare()) }

// Normalized divides a by its length. The zero vector has no direction: float
// vectors come back as NaN and integer vectors panic.
func (a Vec2[T]) Normalized() Vec2[T] { return a.Div(a.Length()) }

// Projection is the signed length of a along onto.
func (a Vec2[T]) Projection(onto Vec2[T]) T { return a.Dot(onto) / onto.Length() }

// ProjectionVector is the component of a parallel to onto.
func (a Vec2[T]) ProjectionVector(onto Vec2[T]) Vec2[T] {
	return onto.Normalized().Scale(a.Projection(onto))
}

func sqrt[T Scalar](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}
