package vec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func samples(n int) []Vec2[float64] {
	r := rand.New(rand.NewSource(7))
	out := []Vec2[float64]{{}, New(3.0, 4.0), New(-1.5, 0.25)}
	for len(out) < n {
		out = append(out, New(r.Float64()*200-100, r.Float64()*200-100))
	}
	return out
}

func TestConstruct(t *testing.T) {
	require.Equal(t, Vec2[float64]{}, Zero[float64]())
	require.Equal(t, Vec2[int]{X: 3, Y: 4}, New(3, 4))
	require.Equal(t, New(1.0, 2.0), FromSlice([]float64{1, 2, 99}))
	require.Panics(t, func() { FromSlice([]int{1}) })
}

func TestAt(t *testing.T) {
	v := New(3, 4)
	require.Equal(t, 3, *v.At(0))
	require.Equal(t, 4, *v.At(1))

	*v.At(0) = 9
	require.Equal(t, New(9, 4), v)

	require.Panics(t, func() { v.At(2) })
	require.Panics(t, func() { v.At(-1) })
}

func TestArithmetic(t *testing.T) {
	a, b := New(1.0, 2.0), New(3.0, 4.0)
	require.Equal(t, New(4.0, 6.0), a.Add(b))
	require.Equal(t, New(-2.0, -2.0), a.Sub(b))
	require.Equal(t, New(2.5, 5.0), a.Scale(2.5))
	require.Equal(t, New(1.5, 2.0), b.Div(2))
	require.Equal(t, New(-1.0, -2.0), a.Neg())
	require.Equal(t, 11.0, a.Dot(b))

	// operands are values, never touched
	require.Equal(t, New(1.0, 2.0), a)
	require.Equal(t, New(3.0, 4.0), b)
}

func TestAlgebraicIdentities(t *testing.T) {
	vs := samples(64)
	for i, v := range vs {
		w := vs[(i+1)%len(vs)]
		require.Equal(t, v, v.Add(Zero[float64]()))
		require.Equal(t, Zero[float64](), v.Add(v.Neg()))
		require.Equal(t, v.Add(w), w.Add(v))
		require.Equal(t, v.Dot(w), w.Dot(v))
		require.Equal(t, v.Scale(-3.25), Scale(-3.25, v))
		require.Equal(t, Cross(v, w), -Cross(w, v))
		require.Equal(t, v, v.Scale(1))
		require.Equal(t, v, v.Div(1))
	}
}

func TestAssign(t *testing.T) {
	vs := samples(16)
	for i, old := range vs {
		b := vs[(i+5)%len(vs)]

		a := old
		a.AddAssign(b)
		require.Equal(t, old.Add(b), a)

		a = old
		a.SubAssign(b)
		require.Equal(t, old.Sub(b), a)

		a = old
		a.ScaleAssign(b.X)
		require.Equal(t, old.Scale(b.X), a)

		a = old
		a.DivAssign(b.Y)
		require.Equal(t, old.Div(b.Y), a)
	}
}

func TestIntegerVectors(t *testing.T) {
	a, b := New(1, 2), New(3, 4)
	require.Equal(t, New(4, 6), a.Add(b))
	require.Equal(t, New(1, 2), New(3, 5).Div(2))
	require.Equal(t, 11, a.Dot(b))
	require.Equal(t, -2, Cross(a, b))
	require.Panics(t, func() { a.Div(0) })
}

func TestUnsignedVectors(t *testing.T) {
	v := New[uint8](200, 100)
	v.AddAssign(New[uint8](100, 0))
	require.Equal(t, New[uint8](44, 100), v)
}
