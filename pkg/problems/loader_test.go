package problems

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gocsp/pkg/csp"
)

const triangleYAML = `
name: triangle
variables:
  - name: a
    min: 1
    max: 3
  - name: b
    min: 1
    max: 3
  - name: c
    values: [1, 2, 3]
constraints:
  - type: notEqual
    vars: [a, b]
  - type: notEqual
    vars: [b, c]
  - type: notEqual
    vars: [a, c]
solver:
  propagation: arc
  variableOrder: mrv
  valueOrder: lcv
  workers: 2
`

func TestParseInstance(t *testing.T) {
	instance, err := ParseInstance([]byte(triangleYAML))
	require.NoError(t, err)

	assert.Equal(t, "triangle", instance.Name)
	assert.Equal(t, 3, instance.Problem.VariableCount())
	assert.Equal(t, 3, instance.Problem.ConstraintCount())
	assert.Equal(t, csp.PropagationArcConsistency, instance.Config.Propagation)
	assert.Equal(t, csp.VarOrderMRV, instance.Config.VariableOrder)
	assert.Equal(t, csp.ValOrderLCV, instance.Config.ValueOrder)
	assert.Equal(t, 2, instance.Config.Workers)

	result, err := csp.NewSolverWithConfig(instance.Problem, instance.Config).Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, csp.Success, result.Status)
}

func TestParseInstanceDefaultsConfig(t *testing.T) {
	instance, err := ParseInstance([]byte(`
variables:
  - name: x
    min: 1
    max: 2
`))
	require.NoError(t, err)
	assert.Equal(t, csp.DefaultSolverConfig(), instance.Config)
}

func TestParseInstanceDomains(t *testing.T) {
	instance, err := ParseInstance([]byte(`
variables:
  - name: ranged
    min: 3
    max: 5
  - name: listed
    values: [2, 7]
`))
	require.NoError(t, err)

	ranged := instance.Problem.VariableByName("ranged")
	require.NotNil(t, ranged)
	assert.Equal(t, []int{3, 4, 5}, ranged.InitialDomain().ToSlice())

	listed := instance.Problem.VariableByName("listed")
	require.NotNil(t, listed)
	assert.Equal(t, []int{2, 7}, listed.InitialDomain().ToSlice())
}

func TestParseInstanceConstraintTypes(t *testing.T) {
	instance, err := ParseInstance([]byte(`
variables:
  - name: x
    min: 1
    max: 4
  - name: y
    min: 1
    max: 4
  - name: z
    min: 1
    max: 4
constraints:
  - type: lessThan
    vars: [x, y]
  - type: offset
    vars: [y, z]
    offset: 1
  - type: allDifferent
    vars: [x, y, z]
  - type: table
    vars: [x, y]
    tuples: [[1, 2], [2, 3]]
`))
	require.NoError(t, err)
	assert.Equal(t, 4, instance.Problem.ConstraintCount())

	result, err := csp.NewSolver(instance.Problem).Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, csp.Success, result.Status)
	assert.True(t, result.Assignment.SatisfiesAll())
}

func TestParseInstanceErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no variables", `name: empty`, "declares no variables"},
		{"unnamed variable", `
variables:
  - min: 1
    max: 2
`, "has no name"},
		{"duplicate variable", `
variables:
  - name: x
    min: 1
    max: 2
  - name: x
    min: 1
    max: 2
`, "duplicate variable"},
		{"bad range", `
variables:
  - name: x
    min: 5
    max: 2
`, "invalid range"},
		{"range and values", `
variables:
  - name: x
    min: 1
    max: 2
    values: [1]
`, "not both"},
		{"unknown constraint variable", `
variables:
  - name: x
    min: 1
    max: 2
constraints:
  - type: notEqual
    vars: [x, ghost]
`, "unknown variable"},
		{"unsupported constraint", `
variables:
  - name: x
    min: 1
    max: 2
constraints:
  - type: xorShift
    vars: [x]
`, "unsupported constraint type"},
		{"wrong arity", `
variables:
  - name: x
    min: 1
    max: 2
constraints:
  - type: lessThan
    vars: [x]
`, "exactly 2 variables"},
		{"bad solver section", `
variables:
  - name: x
    min: 1
    max: 2
solver:
  propagation: psychic
`, "unknown propagation level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInstance([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(triangleYAML), 0o644))

	instance, err := LoadInstance(path)
	require.NoError(t, err)
	assert.Equal(t, "triangle", instance.Name)

	_, err = LoadInstance(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
