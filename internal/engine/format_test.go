package engine

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"whole value collapses", 2.0, "2"},
		{"fraction", 0.5, "0.5"},
		{"representation noise", 0.1 + 0.2, "0.3"},
		{"repeating third", 1.0 / 3.0, "0.333333333333"},
		{"repeating two thirds", 2.0 / 3.0, "0.666666666667"},
		{"pi at twelve digits", math.Pi, "3.14159265359"},
		{"negative", -4, "-4"},
		{"zero", 0, "0"},
		{"negative zero folds", math.Copysign(0, -1), "0"},
		{"large integer stays fixed", 2469134, "2469134"},
		{"small fixed bound", 1e-6, "0.000001"},
		{"below fixed bound", 1e-7, "1e-07"},
		{"huge goes scientific", 7.257415615307994e306, "7.25741561531e+306"},
		{"positive infinity", math.Inf(1), "+Inf"},
		{"negative infinity", math.Inf(-1), "-Inf"},
		{"not a number", math.NaN(), "NaN"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.in))
		})
	}
}

// TestFormat_Golden pins the rendered form of a spread of values so
// formatting drift shows up as a reviewable diff.
func TestFormat_Golden(t *testing.T) {
	cases := []struct {
		label string
		value float64
	}{
		{"zero", 0},
		{"two", 2},
		{"half", 0.5},
		{"noise", 0.1 + 0.2},
		{"third", 1.0 / 3.0},
		{"pi", math.Pi},
		{"e", math.E},
		{"large_integer", 2469134},
		{"tiny", 1e-7},
		{"huge", 7.257415615307994e306},
	}

	var buf bytes.Buffer
	for _, c := range cases {
		fmt.Fprintf(&buf, "%s => %s\n", c.label, Format(c.value))
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "format", buf.Bytes())
}
