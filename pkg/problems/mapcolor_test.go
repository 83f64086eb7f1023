package problems

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gocsp/pkg/csp"
)

var (
	australiaRegions = []string{"wa", "nt", "sa", "q", "nsw", "v", "t"}
	australiaBorders = [][2]string{
		{"wa", "nt"}, {"wa", "sa"}, {"nt", "sa"}, {"nt", "q"},
		{"sa", "q"}, {"sa", "nsw"}, {"sa", "v"}, {"q", "nsw"}, {"nsw", "v"},
	}
)

func TestNewMapColoringValidation(t *testing.T) {
	_, err := NewMapColoring(nil, nil, []string{"red"})
	assert.ErrorContains(t, err, "at least one region")

	_, err = NewMapColoring([]string{"a"}, nil, nil)
	assert.ErrorContains(t, err, "palette")

	_, err = NewMapColoring([]string{"a", "a"}, nil, []string{"red"})
	assert.ErrorContains(t, err, "duplicate region")

	_, err = NewMapColoring([]string{"a"}, [][2]string{{"a", "b"}}, []string{"red"})
	assert.ErrorContains(t, err, "unknown region")

	_, err = NewMapColoring([]string{"a"}, [][2]string{{"a", "a"}}, []string{"red"})
	assert.ErrorContains(t, err, "borders itself")
}

func TestMapColoringAustralia(t *testing.T) {
	m, err := NewMapColoring(australiaRegions, australiaBorders, []string{"red", "green", "blue"})
	require.NoError(t, err)

	result, err := csp.NewSolver(m.Problem()).Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, csp.Success, result.Status)

	coloring := m.Coloring(result.Assignment)
	require.Len(t, coloring, 7)
	for _, border := range australiaBorders {
		assert.NotEqual(t, coloring[border[0]], coloring[border[1]],
			"%s and %s share a border", border[0], border[1])
	}
}

func TestMapColoringTooFewColors(t *testing.T) {
	// SA borders NT and WA, which border each other: a 3-clique needs
	// 3 colors.
	m, err := NewMapColoring(australiaRegions, australiaBorders, []string{"red", "green"})
	require.NoError(t, err)

	result, err := csp.NewSolver(m.Problem()).Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, csp.Exhausted, result.Status)
	assert.Nil(t, result.Assignment)
}

func TestMapColoringTriangle(t *testing.T) {
	triangle := [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}}

	for _, tc := range []struct {
		palette []string
		want    csp.Status
	}{
		{[]string{"red", "green"}, csp.Exhausted},
		{[]string{"red", "green", "blue"}, csp.Success},
	} {
		m, err := NewMapColoring([]string{"a", "b", "c"}, triangle, tc.palette)
		require.NoError(t, err)
		result, err := csp.NewSolver(m.Problem()).Solve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, tc.want, result.Status, "%d colors", len(tc.palette))
	}
}

func TestMapColoringAccessors(t *testing.T) {
	m, err := NewMapColoring([]string{"a", "b"}, [][2]string{{"a", "b"}}, []string{"red", "green"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, m.Regions())
	assert.Equal(t, []string{"red", "green"}, m.Palette())
	assert.NotNil(t, m.Region("a"))
	assert.Nil(t, m.Region("z"))
}
