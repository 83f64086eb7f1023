package problems

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// MapColoring assigns one of a fixed palette of colors to each region
// so that no two bordering regions share a color. Colors are encoded
// as palette indices starting at 1; one not-equal constraint is added
// per border.
type MapColoring struct {
	problem *csp.Problem
	byName  map[string]*csp.Variable
	regions []string
	palette []string
}

// NewMapColoring builds a coloring instance from a region list, a
// border list, and a color palette. Duplicate regions, borders naming
// unknown regions, self-borders, and an empty palette are rejected.
func NewMapColoring(regions []string, borders [][2]string, palette []string) (*MapColoring, error) {
	if len(regions) == 0 {
		return nil, fmt.Errorf("at least one region is required")
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("palette must not be empty")
	}

	m := &MapColoring{
		problem: csp.NewProblem(),
		byName:  make(map[string]*csp.Variable, len(regions)),
		regions: append([]string(nil), regions...),
		palette: append([]string(nil), palette...),
	}

	colors := csp.NewDomain(len(palette))
	for _, region := range regions {
		if _, ok := m.byName[region]; ok {
			return nil, fmt.Errorf("duplicate region %q", region)
		}
		m.byName[region] = m.problem.NewVariable(region, colors)
	}

	for _, border := range borders {
		x, ok := m.byName[border[0]]
		if !ok {
			return nil, fmt.Errorf("border references unknown region %q", border[0])
		}
		y, ok := m.byName[border[1]]
		if !ok {
			return nil, fmt.Errorf("border references unknown region %q", border[1])
		}
		if x == y {
			return nil, fmt.Errorf("region %q borders itself", border[0])
		}
		m.problem.AddConstraint(csp.NewNotEqual(x, y))
	}

	return m, nil
}

// Problem returns the underlying constraint problem.
func (m *MapColoring) Problem() *csp.Problem { return m.problem }

// Regions returns the region names in the order given at construction.
func (m *MapColoring) Regions() []string {
	return append([]string(nil), m.regions...)
}

// Palette returns the color names.
func (m *MapColoring) Palette() []string {
	return append([]string(nil), m.palette...)
}

// Region returns the variable for the named region, or nil.
func (m *MapColoring) Region(name string) *csp.Variable { return m.byName[name] }

// Coloring decodes an assignment into a region-to-color map.
func (m *MapColoring) Coloring(a *csp.Assignment) map[string]string {
	out := make(map[string]string, len(m.regions))
	if a == nil {
		return out
	}
	for _, region := range m.regions {
		value := a.Value(m.byName[region])
		if value >= 1 && value <= len(m.palette) {
			out[region] = m.palette[value-1]
		}
	}
	return out
}

// Render formats an assignment as one "region: color" line per region,
// sorted by region name.
func (m *MapColoring) Render(a *csp.Assignment) string {
	coloring := m.Coloring(a)
	names := make([]string, 0, len(coloring))
	for name := range coloring {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s: %s\n", name, coloring[name])
	}
	return b.String()
}
