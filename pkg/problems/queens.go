package problems

import (
	"fmt"
	"strings"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// Queens is the N-Queens puzzle: place n queens on an n x n board so
// that no two attack each other. One variable per column holds the
// 1-based row of that column's queen, so the one-queen-per-column
// rule is structural. An all-different constraint covers rows and a
// pairwise check covers diagonals.
type Queens struct {
	problem *csp.Problem
	cols    []*csp.Variable
	n       int
}

// NewQueens builds an n-queens instance. n must be at least 1.
func NewQueens(n int) (*Queens, error) {
	if n < 1 {
		return nil, fmt.Errorf("board size must be at least 1, got %d", n)
	}

	q := &Queens{problem: csp.NewProblem(), n: n}
	q.cols = q.problem.NewVariables("q", n, csp.NewDomain(n))

	if n > 1 {
		rows, err := csp.NewAllDifferent(q.cols...)
		if err != nil {
			return nil, err
		}
		q.problem.AddConstraint(rows)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := j - i
			name := fmt.Sprintf("noDiagonal(%s,%s)", q.cols[i].Name(), q.cols[j].Name())
			diag, err := csp.NewBinaryFunc(name, q.cols[i], q.cols[j], func(a, b int) bool {
				return a-b != dist && b-a != dist
			})
			if err != nil {
				return nil, err
			}
			q.problem.AddConstraint(diag)
		}
	}

	return q, nil
}

// Problem returns the underlying constraint problem.
func (q *Queens) Problem() *csp.Problem { return q.problem }

// Size returns the board size.
func (q *Queens) Size() int { return q.n }

// Column returns the variable for the given 1-based column.
func (q *Queens) Column(col int) *csp.Variable {
	if col < 1 || col > q.n {
		return nil
	}
	return q.cols[col-1]
}

// Rows decodes an assignment into the queen row per column, indexed
// by column starting at 0.
func (q *Queens) Rows(a *csp.Assignment) []int {
	rows := make([]int, q.n)
	if a == nil {
		return rows
	}
	for i, v := range q.cols {
		rows[i] = a.Value(v)
	}
	return rows
}

// Render formats an assignment as a board, one rank per line with Q
// for queens and dots for empty squares. Row 1 is the top rank.
func (q *Queens) Render(a *csp.Assignment) string {
	rows := q.Rows(a)
	var b strings.Builder
	for r := 1; r <= q.n; r++ {
		for c := 0; c < q.n; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			if rows[c] == r {
				b.WriteByte('Q')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
