package vec

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformed = errors.New("vec: malformed vector text")

// Join renders the components with fmt's default formatting for T.
func (a Vec2[T]) Join(sep string) string {
	return fmt.Sprint(a.X) + sep + fmt.Sprint(a.Y)
}

func (a Vec2[T]) String() string { return a.Join(" ") }

// Parse reads text produced by Join. Whitespace around either component is
// ignored, so "3, 4" parses with sep ",".
func Parse[T Scalar](s, sep string) (Vec2[T], error) {
	var v Vec2[T]
	if sep == "" {
		return v, fmt.Errorf("%w: empty separator", ErrMalformed)
	}
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), sep)
	if !ok {
		return v, fmt.Errorf("%w: %q has no separator %q", ErrMalformed, s, sep)
	}
	if err := scanScalar(xs, &v.X); err != nil {
		return Vec2[T]{}, fmt.Errorf("%w: x of %q: %v", ErrMalformed, s, err)
	}
	if err := scanScalar(ys, &v.Y); err != nil {
		return Vec2[T]{}, fmt.Errorf("%w: y of %q: %v", ErrMalformed, s, err)
	}
	return v, nil
}

func scanScalar[T Scalar](s string, out *T) error {
	var rest string
	n, err := fmt.Sscanf(strings.TrimSpace(s), "%v%s", out, &rest)
	switch n {
	case 0:
		return err
	case 1:
		return nil
	}
	return fmt.Errorf("unexpected %q", rest)
}

func (a Vec2[T]) MarshalText() ([]byte, error) { return []byte(a.Join(" ")), nil }

func (a *Vec2[T]) UnmarshalText(text []byte) error {
	v, err := Parse[T](string(text), " ")
	if err != nil {
		return err
	}
	*a = v
	return nil
}
