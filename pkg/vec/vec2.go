// Package vec provides a generic two-component vector and its algebra.
//
// Vec2 is a plain value: every operation returns a new vector except the
// *Assign methods and At, which write through the receiver. Division is never
// guarded, so float vectors carry IEEE Inf/NaN forward and integer vectors
// panic on a zero divisor exactly like the built-in operator.
package vec

import "golang.org/x/exp/constraints"

// Scalar is the set of component types a Vec2 can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

type Vec2[T Scalar] struct{ X, Y T }

func New[T Scalar](x, y T) Vec2[T] { return Vec2[T]{X: x, Y: y} }

// Zero returns the origin. It is the same value as Vec2[T]{}.
func Zero[T Scalar]() Vec2[T] { return Vec2[T]{} }

// FromSlice builds a vector from values[0] and values[1]. It panics if
// values has fewer than two elements; extra elements are ignored.
func FromSlice[T Scalar](values []T) Vec2[T] {
	_ = values[1]
	return Vec2[T]{X: values[0], Y: values[1]}
}

// At returns a pointer to component i (0 is X, 1 is Y). Any other index panics.
func (a *Vec2[T]) At(i int) *T {
	switch i {
	case 0:
		return &a.X
	case 1:
		return &a.Y
	}
	panic("vec: component index out of range")
}

func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X + b.X, a.Y + b.Y} }
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X - b.X, a.Y - b.Y} }
func (a Vec2[T]) Scale(s T) Vec2[T]     { return Vec2[T]{a.X * s, a.Y * s} }
func (a Vec2[T]) Div(s T) Vec2[T]       { return Vec2[T]{a.X / s, a.Y / s} }
func (a Vec2[T]) Neg() Vec2[T]          { return Vec2[T]{-a.X, -a.Y} }

// Scale is v.Scale(s) with the scalar written first.
func Scale[T Scalar](s T, v Vec2[T]) Vec2[T] { return v.Scale(s) }

func (a *Vec2[T]) AddAssign(b Vec2[T]) { *a = a.Add(b) }
func (a *Vec2[T]) SubAssign(b Vec2[T]) { *a = a.Sub(b) }
func (a *Vec2[T]) ScaleAssign(s T)     { *a = a.Scale(s) }
func (a *Vec2[T]) DivAssign(s T)       { *a = a.Div(s) }
