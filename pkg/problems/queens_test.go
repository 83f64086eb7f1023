package problems

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gocsp/pkg/csp"
)

func TestNewQueensStructure(t *testing.T) {
	q, err := NewQueens(4)
	require.NoError(t, err)

	assert.Equal(t, 4, q.Size())
	assert.Equal(t, 4, q.Problem().VariableCount())
	// One all-different plus C(4,2) diagonal constraints.
	assert.Equal(t, 1+6, q.Problem().ConstraintCount())

	require.NotNil(t, q.Column(1))
	require.NotNil(t, q.Column(4))
	assert.Nil(t, q.Column(0))
	assert.Nil(t, q.Column(5))

	_, err = NewQueens(0)
	assert.Error(t, err)
}

func TestQueensSolveFour(t *testing.T) {
	q, err := NewQueens(4)
	require.NoError(t, err)

	result, err := csp.NewSolver(q.Problem()).Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, csp.Success, result.Status)

	rows := q.Rows(result.Assignment)
	assert.Contains(t, [][]int{{2, 4, 1, 3}, {3, 1, 4, 2}}, rows)
}

func TestQueensCountSolutions(t *testing.T) {
	counts := map[int]int{1: 1, 2: 0, 3: 0, 4: 2, 5: 10, 6: 4}
	for n, want := range counts {
		q, err := NewQueens(n)
		require.NoError(t, err)
		solutions, err := csp.NewSolver(q.Problem()).SolveAll(context.Background(), 0)
		require.NoError(t, err)
		assert.Len(t, solutions, want, "n=%d", n)
	}
}

func TestQueensRender(t *testing.T) {
	q, err := NewQueens(4)
	require.NoError(t, err)

	result, err := csp.NewSolver(q.Problem()).Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, csp.Success, result.Status)

	board := q.Render(result.Assignment)
	lines := strings.Split(strings.TrimRight(board, "\n"), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 1, strings.Count(line, "Q"), "one queen per rank: %q", line)
	}
	for col := 0; col < 4; col++ {
		queens := 0
		for _, line := range lines {
			cells := strings.Split(line, " ")
			if cells[col] == "Q" {
				queens++
			}
		}
		assert.Equal(t, 1, queens, "one queen per file %d", col)
	}
}
