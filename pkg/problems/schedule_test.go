package problems

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gocsp/pkg/csp"
)

func pipelineSchedule(t *testing.T) *Schedule {
	t.Helper()
	s, err := NewSchedule([]string{"design", "build", "test", "deploy"}, 4)
	require.NoError(t, err)
	require.NoError(t, s.AddPrecedence("design", "build"))
	require.NoError(t, s.AddPrecedence("build", "test"))
	require.NoError(t, s.AddPrecedence("test", "deploy"))
	return s
}

func TestNewScheduleValidation(t *testing.T) {
	_, err := NewSchedule(nil, 3)
	assert.ErrorContains(t, err, "at least one task")

	_, err = NewSchedule([]string{"a"}, 0)
	assert.ErrorContains(t, err, "slot count")

	_, err = NewSchedule([]string{"a", "a"}, 3)
	assert.ErrorContains(t, err, "duplicate task")

	s, err := NewSchedule([]string{"a", "b"}, 3)
	require.NoError(t, err)
	assert.ErrorContains(t, s.AddConflict("a", "z"), "unknown task")
	assert.ErrorContains(t, s.AddPrecedence("z", "a"), "unknown task")
	assert.ErrorContains(t, s.AddConflict("a", "a"), "against itself")
}

func TestScheduleForcedChain(t *testing.T) {
	// Four tasks, four slots, a full precedence chain: exactly one
	// schedule exists.
	s := pipelineSchedule(t)

	solutions, err := csp.NewSolver(s.Problem()).SolveAll(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, solutions, 1)

	times := s.Times(solutions[0])
	assert.Equal(t, map[string]int{"design": 1, "build": 2, "test": 3, "deploy": 4}, times)
}

func TestScheduleConflicts(t *testing.T) {
	s, err := NewSchedule([]string{"a", "b"}, 1)
	require.NoError(t, err)
	require.NoError(t, s.AddConflict("a", "b"))

	result, err := csp.NewSolver(s.Problem()).Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, csp.Exhausted, result.Status, "two conflicting tasks cannot share one slot")
}

func TestScheduleInfeasibleChain(t *testing.T) {
	s, err := NewSchedule([]string{"a", "b", "c"}, 2)
	require.NoError(t, err)
	require.NoError(t, s.AddPrecedence("a", "b"))
	require.NoError(t, s.AddPrecedence("b", "c"))

	result, err := csp.NewSolver(s.Problem()).Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, csp.Exhausted, result.Status, "a 3-task chain needs 3 slots")
}

func TestScheduleAvailability(t *testing.T) {
	s, err := NewSchedule([]string{"a", "b"}, 3)
	require.NoError(t, err)
	require.NoError(t, s.AddConflict("a", "b"))
	require.NoError(t, s.AddAvailability("a", 2))
	require.NoError(t, s.AddAvailability("b", 2, 3))

	solutions, err := csp.NewSolver(s.Problem()).SolveAll(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	assert.Equal(t, map[string]int{"a": 2, "b": 3}, s.Times(solutions[0]))

	assert.ErrorContains(t, s.AddAvailability("z", 1), "unknown task")
	assert.ErrorContains(t, s.AddAvailability("a"), "at least one available slot")
	assert.ErrorContains(t, s.AddAvailability("a", 9), "out of range")
}

func TestScheduleRender(t *testing.T) {
	s := pipelineSchedule(t)

	result, err := csp.NewSolver(s.Problem()).Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, csp.Success, result.Status)

	g := newGoldie(t)
	g.Assert(t, "schedule_pipeline", []byte(s.Render(result.Assignment)))
}
