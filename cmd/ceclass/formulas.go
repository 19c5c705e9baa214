package main

import (
	"fmt"

	"github.com/stlrefine/ceclass/formula"
)

// formulaBuilder constructs the named formula tree a --spec label
// selects. The registry holds a small, fixed set of property shapes,
// not a general STL parser: --spec names a specification label, not
// free-form syntax.
type formulaBuilder func() (*formula.Node, error)

var formulaRegistry = map[string]formulaBuilder{
	"speed-rpm-always": buildSpeedRPMAlways,
	"always-band":      buildAlwaysBand,
}

// buildSpeedRPMAlways builds always_[0,30]((speed < 90) and (RPM < 4000)).
func buildSpeedRPMAlways() (*formula.Node, error) {
	speed, err := formula.Predicate("speed", formula.OpLess, 90, 0, "")
	if err != nil {
		return nil, err
	}
	rpm, err := formula.Predicate("rpm", formula.OpLess, 4000, 1, "")
	if err != nil {
		return nil, err
	}
	conj, err := formula.And(speed, rpm, "speed_rpm_conj")
	if err != nil {
		return nil, err
	}
	return formula.Always(conj, formula.Interval{
		Lo: formula.Concrete(0),
		Hi: formula.Concrete(30),
	}, "alw_speed_rpm")
}

// buildAlwaysBand is a single-signal band property:
// always_[0,10](-0.05 < x < 0.05), built as an And of two predicates
// (x > -0.05 and x < 0.05) since formula has no dedicated range node.
func buildAlwaysBand() (*formula.Node, error) {
	lower, err := formula.Predicate("x", formula.OpGreater, -0.05, 0, "")
	if err != nil {
		return nil, err
	}
	upper, err := formula.Predicate("x", formula.OpLess, 0.05, 0, "")
	if err != nil {
		return nil, err
	}
	band, err := formula.And(lower, upper, "x_band")
	if err != nil {
		return nil, err
	}
	return formula.Always(band, formula.Interval{
		Lo: formula.Concrete(0),
		Hi: formula.Concrete(10),
	}, "alw_x_band")
}

func buildFormula(label string) (*formula.Node, error) {
	build, ok := formulaRegistry[label]
	if !ok {
		return nil, fmt.Errorf("ceclass: unknown --spec label %q", label)
	}
	return build()
}
