package vec

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	v := New(3.0, 4.0)
	require.Equal(t, "3 4", v.String())
	require.Equal(t, "3,4", v.Join(","))
	require.Equal(t, "3 4", fmt.Sprint(v))
	require.Equal(t, "at 3 4", fmt.Sprintf("at %v", v))

	require.Equal(t, "0.1 2.5", New[float32](0.1, 2.5).String())
	require.Equal(t, "-3;4", New(-3, 4).Join(";"))
	require.Equal(t, "0.30000000000000004 1", New(0.1+0.2, 1.0).String())
	require.Equal(t, "NaN +Inf", New(math.NaN(), math.Inf(1)).String())
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in, sep string
		want    Vec2[float64]
	}{
		{"3 4", " ", New(3.0, 4.0)},
		{"3,4", ",", New(3.0, 4.0)},
		{"  1.5 ,  -2 ", ",", New(1.5, -2.0)},
		{"1e3|0.25", "|", New(1000.0, 0.25)},
	} {
		got, err := Parse[float64](tc.in, tc.sep)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseRejects(t *testing.T) {
	for _, tc := range []struct{ in, sep string }{
		{"3", " "},
		{"3 4", ""},
		{"a 4", " "},
		{"3 b", " "},
		{"3 4 5", " "},
		{"3,", ","},
	} {
		_, err := Parse[float64](tc.in, tc.sep)
		require.ErrorIs(t, err, ErrMalformed, "%q sep %q", tc.in, tc.sep)
	}

	_, err := Parse[int]("1.5 2", " ")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestRoundTrip(t *testing.T) {
	for _, v := range samples(32) {
		got, err := Parse[float64](v.Join(","), ",")
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	iv, err := Parse[int](New(-7, 12).String(), " ")
	require.NoError(t, err)
	require.Equal(t, New(-7, 12), iv)
}

func TestTextMarshaling(t *testing.T) {
	type waypoint struct {
		Name string
		At   Vec2[float64]
	}
	b, err := json.Marshal(waypoint{Name: "gate", At: New(1.5, -2.0)})
	require.NoError(t, err)
	require.JSONEq(t, `{"Name":"gate","At":"1.5 -2"}`, string(b))

	var w waypoint
	require.NoError(t, json.Unmarshal([]byte(`{"Name":"dock","At":"10 20"}`), &w))
	require.Equal(t, New(10.0, 20.0), w.At)

	require.Error(t, json.Unmarshal([]byte(`{"At":"10"}`), &w))
}
