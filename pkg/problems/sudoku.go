// Package problems provides ready-made constraint models for classic
// finite-domain puzzles: Sudoku, N-Queens, map coloring, and task
// scheduling. Each model wraps a csp.Problem together with helpers for
// decoding and rendering solutions, and serves as a worked example of
// modeling with the csp package.
package problems

import (
	"fmt"
	"strings"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// Sudoku is a 9x9 puzzle modeled as 81 variables with domain 1..9 and
// 27 all-different constraints, one per row, column, and 3x3 box.
// Givens are encoded as singleton domains.
type Sudoku struct {
	problem *csp.Problem
	cells   [81]*csp.Variable
}

// NewSudoku builds a puzzle from an 81-character grid read left to
// right, top to bottom. Digits 1-9 are givens; '0' and '.' mark empty
// cells. Any other character is rejected.
func NewSudoku(grid string) (*Sudoku, error) {
	if len(grid) != 81 {
		return nil, fmt.Errorf("sudoku grid must be 81 characters, got %d", len(grid))
	}

	s := &Sudoku{problem: csp.NewProblem()}
	full := csp.NewDomain(9)

	for i, ch := range []byte(grid) {
		name := fmt.Sprintf("r%dc%d", i/9+1, i%9+1)
		switch {
		case ch == '0' || ch == '.':
			s.cells[i] = s.problem.NewVariable(name, full)
		case ch >= '1' && ch <= '9':
			s.cells[i] = s.problem.NewVariable(name, csp.Singleton(9, int(ch-'0')))
		default:
			return nil, fmt.Errorf("invalid grid character %q at position %d", ch, i)
		}
	}

	// Rows.
	for r := 0; r < 9; r++ {
		group := make([]*csp.Variable, 9)
		for c := 0; c < 9; c++ {
			group[c] = s.cells[r*9+c]
		}
		if err := s.addAllDifferent(group); err != nil {
			return nil, err
		}
	}

	// Columns.
	for c := 0; c < 9; c++ {
		group := make([]*csp.Variable, 9)
		for r := 0; r < 9; r++ {
			group[r] = s.cells[r*9+c]
		}
		if err := s.addAllDifferent(group); err != nil {
			return nil, err
		}
	}

	// 3x3 boxes.
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			group := make([]*csp.Variable, 0, 9)
			for r := br * 3; r < br*3+3; r++ {
				for c := bc * 3; c < bc*3+3; c++ {
					group = append(group, s.cells[r*9+c])
				}
			}
			if err := s.addAllDifferent(group); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

func (s *Sudoku) addAllDifferent(group []*csp.Variable) error {
	c, err := csp.NewAllDifferent(group...)
	if err != nil {
		return err
	}
	s.problem.AddConstraint(c)
	return nil
}

// Problem returns the underlying constraint problem.
func (s *Sudoku) Problem() *csp.Problem { return s.problem }

// Cell returns the variable at the given 1-based row and column.
func (s *Sudoku) Cell(row, col int) *csp.Variable {
	if row < 1 || row > 9 || col < 1 || col > 9 {
		return nil
	}
	return s.cells[(row-1)*9+(col-1)]
}

// Grid decodes an assignment into a 9x9 value grid. A nil assignment
// decodes the givens, with 0 for empty cells.
func (s *Sudoku) Grid(a *csp.Assignment) [9][9]int {
	var grid [9][9]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := s.cells[r*9+c]
			switch {
			case a != nil:
				grid[r][c] = a.Value(cell)
			case cell.InitialDomain().IsSingleton():
				grid[r][c] = cell.InitialDomain().SingletonValue()
			}
		}
	}
	return grid
}

// Render formats an assignment as a bordered grid with 3x3 box
// separators. Empty cells render as dots.
func (s *Sudoku) Render(a *csp.Assignment) string {
	grid := s.Grid(a)
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			b.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 {
				if c%3 == 0 {
					b.WriteString(" |")
				}
				b.WriteByte(' ')
			}
			if grid[r][c] == 0 {
				b.WriteByte('.')
			} else {
				fmt.Fprintf(&b, "%d", grid[r][c])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
