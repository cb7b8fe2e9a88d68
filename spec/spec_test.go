package spec_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metrosat/grid"
	"github.com/katalvlaran/metrosat/spec"
)

func TestParse_ScenarioOneValid(t *testing.T) {
	input := `1
4 4 2 3
0 0 3 3
1 0 2 3
`
	s, err := spec.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Scenario)
	assert.Equal(t, 4, s.N)
	assert.Equal(t, 4, s.M)
	assert.Equal(t, 2, s.K)
	assert.Equal(t, 3, s.J)
	assert.Equal(t, 0, s.P)
	assert.Equal(t, []grid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}, s.Starts)
	assert.Equal(t, []grid.Cell{{X: 3, Y: 3}, {X: 2, Y: 3}}, s.Ends)
	assert.Nil(t, s.Popular)
}

func TestParse_ScenarioTwoValid(t *testing.T) {
	input := `2
4 4 1 2 2
0 0 3 3
1 1 2 2
`
	s, err := spec.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Scenario)
	assert.Equal(t, 2, s.P)
	assert.Equal(t, []grid.Cell{{X: 1, Y: 1}, {X: 2, Y: 2}}, s.Popular)
}

func TestParse_SkipsBlankLines(t *testing.T) {
	input := "1\n\n4 4 1 2\n\n0 0 3 3\n\n"
	s, err := spec.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, s.K)
}

func TestParse_Failures(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"bad scenario", "3\n4 4 1 1\n0 0 1 1\n", spec.ErrBadScenario},
		{"bad dimensions zero", "1\n0 4 1 1\n0 0 1 1\n", spec.ErrBadDimensions},
		{"negative count", "1\n4 4 -1 1\n0 0 1 1\n", spec.ErrBadCount},
		{"out of bounds start", "1\n4 4 1 1\n9 0 1 1\n", spec.ErrOutOfBounds},
		{"start equals end", "1\n4 4 1 1\n1 1 1 1\n", spec.ErrStartEqualsEnd},
		{"truncated", "1\n4 4 2 1\n0 0 1 1\n", spec.ErrTruncated},
		{"malformed line", "1\n4 4 1 1\n0 0 a 1\n", spec.ErrMalformedLine},
		{"wrong field count", "1\n4 4 1\n0 0 1 1\n", spec.ErrMalformedLine},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := spec.Parse(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v, want wrapping %v", err, tc.want)
			var pe *spec.ParseError
			require.True(t, errors.As(err, &pe))
		})
	}
}

func TestParse_DuplicateStart(t *testing.T) {
	input := "1\n4 4 2 1\n0 0 3 3\n0 0 2 2\n"
	_, err := spec.Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, errors.Is(err, spec.ErrDuplicateStart))
}

func TestParse_DuplicateEnd(t *testing.T) {
	input := "1\n4 4 2 1\n0 0 3 3\n1 1 3 3\n"
	_, err := spec.Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, errors.Is(err, spec.ErrDuplicateEnd))
}

func TestParse_StartAndEndCrossLineCollision(t *testing.T) {
	input := "1\n4 4 2 1\n0 0 1 1\n1 1 2 2\n"
	_, err := spec.Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, errors.Is(err, spec.ErrDuplicateStart))
}

func TestParse_ZeroLinesAndZeroPopular(t *testing.T) {
	input := "2\n4 4 0 0 0\n"
	s, err := spec.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, s.Starts)
	assert.Nil(t, s.Popular)
}

func TestSpec_InBounds(t *testing.T) {
	s := &spec.Spec{N: 4, M: 4}
	assert.True(t, s.InBounds(grid.Cell{X: 0, Y: 0}))
	assert.True(t, s.InBounds(grid.Cell{X: 3, Y: 3}))
	assert.False(t, s.InBounds(grid.Cell{X: 4, Y: 0}))
	assert.False(t, s.InBounds(grid.Cell{X: 0, Y: -1}))
}

func TestParseError_ErrorMessage(t *testing.T) {
	e := &spec.ParseError{Line: 5, Text: "bogus", Err: spec.ErrMalformedLine}
	assert.Contains(t, e.Error(), "line 5")
	assert.Contains(t, e.Error(), "bogus")

	e2 := &spec.ParseError{Err: spec.ErrTruncated}
	assert.NotContains(t, e2.Error(), "line 0")
}
