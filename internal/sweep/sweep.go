// Package sweep evaluates the spring rate across a range of one geometric
// parameter, for plotting and export.
package sweep

import (
	"fmt"

	"github.com/pkiran/springcalc/internal/spring"
)

// Param selects which specification field is varied.
type Param string

const (
	ParamWire  Param = "wire"
	ParamInner Param = "inner"
	ParamCoils Param = "coils"
)

// Point is one sample of the sweep: the varied value (SI units for
// lengths) and the resulting rate in N/m.
type Point struct {
	Value float64 `json:"value"`
	Rate  float64 `json:"rate"`
}

// Run samples the rate at steps evenly spaced values of p in [from, to],
// holding the rest of base fixed. Samples that fail validation are
// skipped; an error is returned only when the request itself is bad or no
// sample is computable.
func Run(base spring.Specification, p Param, from, to float64, steps int) ([]Point, error) {
	if steps < 2 {
		return nil, fmt.Errorf("sweep: need at least 2 steps, got %d", steps)
	}
	if to <= from {
		return nil, fmt.Errorf("sweep: range must be increasing, got [%g, %g]", from, to)
	}
	switch p {
	case ParamWire, ParamInner, ParamCoils:
	default:
		return nil, fmt.Errorf("sweep: unknown parameter %q (want wire, inner, or coils)", p)
	}

	step := (to - from) / float64(steps-1)
	points := make([]Point, 0, steps)

	for i := 0; i < steps; i++ {
		v := from + float64(i)*step
		s := base
		switch p {
		case ParamWire:
			s.WireDiameter = v
		case ParamInner:
			s.InnerDiameter = v
		case ParamCoils:
			s.ActiveCoils = v
		}

		k, err := spring.Rate(s)
		if err != nil {
			continue
		}
		points = append(points, Point{Value: v, Rate: k})
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("sweep: no valid samples in [%g, %g]", from, to)
	}
	return points, nil
}
