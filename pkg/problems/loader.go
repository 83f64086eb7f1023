package problems

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// Instance is a constraint problem loaded from a YAML document,
// together with the solver configuration the document requested.
type Instance struct {
	Name    string
	Problem *csp.Problem
	Config  *csp.SolverConfig
}

// instanceDoc mirrors the YAML layout of an instance file.
type instanceDoc struct {
	Name      string          `yaml:"name"`
	Variables []variableDoc   `yaml:"variables"`
	Constrs   []constraintDoc `yaml:"constraints"`
	Solver    *solverDoc      `yaml:"solver"`
}

type variableDoc struct {
	Name   string `yaml:"name"`
	Min    int    `yaml:"min"`
	Max    int    `yaml:"max"`
	Values []int  `yaml:"values"`
}

type constraintDoc struct {
	Type   string   `yaml:"type"`
	Vars   []string `yaml:"vars"`
	Offset int      `yaml:"offset"`
	Tuples [][]int  `yaml:"tuples"`
}

type solverDoc struct {
	Propagation   string `yaml:"propagation"`
	VariableOrder string `yaml:"variableOrder"`
	ValueOrder    string `yaml:"valueOrder"`
	Workers       int    `yaml:"workers"`
}

// LoadInstance reads and parses a YAML instance file.
func LoadInstance(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading instance file: %w", err)
	}
	return ParseInstance(data)
}

// ParseInstance builds an Instance from a YAML document. Variables
// declare their domain either as a min/max range or as an explicit
// value list; constraints reference variables by name. Structural
// errors such as unknown variable names or unsupported constraint
// types are reported with enough context to locate them in the file.
func ParseInstance(data []byte) (*Instance, error) {
	var doc instanceDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing instance: %w", err)
	}
	if len(doc.Variables) == 0 {
		return nil, fmt.Errorf("instance %q declares no variables", doc.Name)
	}

	problem := csp.NewProblem()
	byName := make(map[string]*csp.Variable, len(doc.Variables))

	for i, vd := range doc.Variables {
		if vd.Name == "" {
			return nil, fmt.Errorf("variable %d has no name", i)
		}
		if _, ok := byName[vd.Name]; ok {
			return nil, fmt.Errorf("duplicate variable %q", vd.Name)
		}
		domain, err := domainFromDoc(vd)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", vd.Name, err)
		}
		byName[vd.Name] = problem.NewVariable(vd.Name, domain)
	}

	for i, cd := range doc.Constrs {
		c, err := constraintFromDoc(cd, byName)
		if err != nil {
			return nil, fmt.Errorf("constraint %d (%s): %w", i, cd.Type, err)
		}
		problem.AddConstraint(c)
	}

	config, err := configFromDoc(doc.Solver)
	if err != nil {
		return nil, err
	}

	return &Instance{Name: doc.Name, Problem: problem, Config: config}, nil
}

func domainFromDoc(vd variableDoc) (*csp.Domain, error) {
	if len(vd.Values) > 0 {
		if vd.Min != 0 || vd.Max != 0 {
			return nil, fmt.Errorf("declare either values or a min/max range, not both")
		}
		max := 0
		for _, v := range vd.Values {
			if v < 1 {
				return nil, fmt.Errorf("domain values must be positive, got %d", v)
			}
			if v > max {
				max = v
			}
		}
		return csp.NewDomainFromValues(max, vd.Values), nil
	}
	if vd.Min < 1 || vd.Max < vd.Min {
		return nil, fmt.Errorf("invalid range [%d, %d]", vd.Min, vd.Max)
	}
	if vd.Min == 1 {
		return csp.NewDomain(vd.Max), nil
	}
	values := make([]int, 0, vd.Max-vd.Min+1)
	for v := vd.Min; v <= vd.Max; v++ {
		values = append(values, v)
	}
	return csp.NewDomainFromValues(vd.Max, values), nil
}

func constraintFromDoc(cd constraintDoc, byName map[string]*csp.Variable) (csp.Constraint, error) {
	vars := make([]*csp.Variable, len(cd.Vars))
	for i, name := range cd.Vars {
		v, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown variable %q", name)
		}
		vars[i] = v
	}

	binary := func() (*csp.Variable, *csp.Variable, error) {
		if len(vars) != 2 {
			return nil, nil, fmt.Errorf("expects exactly 2 variables, got %d", len(vars))
		}
		return vars[0], vars[1], nil
	}

	switch cd.Type {
	case "notEqual":
		x, y, err := binary()
		if err != nil {
			return nil, err
		}
		return csp.NewNotEqual(x, y), nil
	case "equal":
		x, y, err := binary()
		if err != nil {
			return nil, err
		}
		return csp.NewEqual(x, y), nil
	case "lessThan":
		x, y, err := binary()
		if err != nil {
			return nil, err
		}
		return csp.NewLessThan(x, y), nil
	case "offset":
		x, y, err := binary()
		if err != nil {
			return nil, err
		}
		return csp.NewOffset(x, y, cd.Offset), nil
	case "allDifferent":
		return csp.NewAllDifferent(vars...)
	case "table":
		return csp.NewTable(vars, cd.Tuples)
	default:
		return nil, fmt.Errorf("unsupported constraint type %q", cd.Type)
	}
}

func configFromDoc(sd *solverDoc) (*csp.SolverConfig, error) {
	config := csp.DefaultSolverConfig()
	if sd == nil {
		return config, nil
	}
	if sd.Propagation != "" {
		level, err := csp.ParsePropagationLevel(sd.Propagation)
		if err != nil {
			return nil, err
		}
		config.Propagation = level
	}
	if sd.VariableOrder != "" {
		order, err := csp.ParseVariableOrder(sd.VariableOrder)
		if err != nil {
			return nil, err
		}
		config.VariableOrder = order
	}
	if sd.ValueOrder != "" {
		order, err := csp.ParseValueOrder(sd.ValueOrder)
		if err != nil {
			return nil, err
		}
		config.ValueOrder = order
	}
	if sd.Workers > 0 {
		config.Workers = sd.Workers
	}
	return config, nil
}
