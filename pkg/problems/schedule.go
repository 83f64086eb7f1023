package problems

import (
	"fmt"
	"strings"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// Schedule assigns each named task a time slot in 1..slots. Conflicts
// keep two tasks out of the same slot; precedences order one task
// strictly before another.
type Schedule struct {
	problem *csp.Problem
	byName  map[string]*csp.Variable
	tasks   []string
	slots   int
}

// NewSchedule builds a scheduling instance over the given tasks and
// number of time slots. Duplicate task names are rejected.
func NewSchedule(tasks []string, slots int) (*Schedule, error) {
	if len(tasks) == 0 {
		return nil, fmt.Errorf("at least one task is required")
	}
	if slots < 1 {
		return nil, fmt.Errorf("slot count must be at least 1, got %d", slots)
	}

	s := &Schedule{
		problem: csp.NewProblem(),
		byName:  make(map[string]*csp.Variable, len(tasks)),
		tasks:   append([]string(nil), tasks...),
		slots:   slots,
	}

	times := csp.NewDomain(slots)
	for _, task := range tasks {
		if _, ok := s.byName[task]; ok {
			return nil, fmt.Errorf("duplicate task %q", task)
		}
		s.byName[task] = s.problem.NewVariable(task, times)
	}

	return s, nil
}

// Problem returns the underlying constraint problem.
func (s *Schedule) Problem() *csp.Problem { return s.problem }

// Tasks returns the task names in the order given at construction.
func (s *Schedule) Tasks() []string {
	return append([]string(nil), s.tasks...)
}

// Slots returns the number of time slots.
func (s *Schedule) Slots() int { return s.slots }

// Task returns the variable for the named task, or nil.
func (s *Schedule) Task(name string) *csp.Variable { return s.byName[name] }

// AddConflict forbids two tasks from sharing a slot.
func (s *Schedule) AddConflict(a, b string) error {
	x, y, err := s.pair(a, b)
	if err != nil {
		return err
	}
	s.problem.AddConstraint(csp.NewNotEqual(x, y))
	return nil
}

// AddAvailability restricts a task to the given slots, posted as a
// unary table constraint so the base slot range stays shared across
// tasks.
func (s *Schedule) AddAvailability(task string, slots ...int) error {
	v, ok := s.byName[task]
	if !ok {
		return fmt.Errorf("unknown task %q", task)
	}
	if len(slots) == 0 {
		return fmt.Errorf("task %q: at least one available slot is required", task)
	}
	tuples := make([][]int, 0, len(slots))
	for _, slot := range slots {
		if slot < 1 || slot > s.slots {
			return fmt.Errorf("task %q: slot %d out of range [1, %d]", task, slot, s.slots)
		}
		tuples = append(tuples, []int{slot})
	}
	c, err := csp.NewTable([]*csp.Variable{v}, tuples)
	if err != nil {
		return err
	}
	s.problem.AddConstraint(c)
	return nil
}

// AddPrecedence requires task before to run in a strictly earlier
// slot than task after.
func (s *Schedule) AddPrecedence(before, after string) error {
	x, y, err := s.pair(before, after)
	if err != nil {
		return err
	}
	s.problem.AddConstraint(csp.NewLessThan(x, y))
	return nil
}

func (s *Schedule) pair(a, b string) (*csp.Variable, *csp.Variable, error) {
	x, ok := s.byName[a]
	if !ok {
		return nil, nil, fmt.Errorf("unknown task %q", a)
	}
	y, ok := s.byName[b]
	if !ok {
		return nil, nil, fmt.Errorf("unknown task %q", b)
	}
	if x == y {
		return nil, nil, fmt.Errorf("task %q cannot be constrained against itself", a)
	}
	return x, y, nil
}

// Times decodes an assignment into a task-to-slot map.
func (s *Schedule) Times(a *csp.Assignment) map[string]int {
	out := make(map[string]int, len(s.tasks))
	if a == nil {
		return out
	}
	for _, task := range s.tasks {
		out[task] = a.Value(s.byName[task])
	}
	return out
}

// Render formats an assignment as a slot-by-slot listing. Tasks in the
// same slot appear on the same line in construction order.
func (s *Schedule) Render(a *csp.Assignment) string {
	times := s.Times(a)
	var b strings.Builder
	for slot := 1; slot <= s.slots; slot++ {
		var names []string
		for _, task := range s.tasks {
			if times[task] == slot {
				names = append(names, task)
			}
		}
		fmt.Fprintf(&b, "slot %d: %s\n", slot, strings.Join(names, ", "))
	}
	return b.String()
}
