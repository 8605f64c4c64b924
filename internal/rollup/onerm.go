package rollup

import (
	"errors"
	"fmt"
	"strings"
)

var ErrDomain = errors.New("value outside formula domain")

// brzyckiMaxReps is where 37 - reps reaches zero.
const brzyckiMaxReps = 37

type Formula string

const (
	FormulaEpley   Formula = "epley"
	FormulaBrzycki Formula = "brzycki"
)

func ParseFormula(s string) (Formula, error) {
	switch f := Formula(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormulaEpley, nil
	case FormulaEpley, FormulaBrzycki:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown formula [%s]", ErrDomain, s)
	}
}

// Epley estimates 1RM as weight * (1 + reps/30).
func Epley(weight float64, reps int) float64 {
	return weight * (1 + float64(reps)/30)
}

// Brzycki estimates 1RM as weight * 36 / (37 - reps).
// reps >= 37 is rejected instead of producing Inf or a negative estimate.
func Brzycki(weight float64, reps int) (float64, error) {
	if reps >= brzyckiMaxReps {
		return 0, fmt.Errorf("%w: brzycki needs reps < %d, got %d", ErrDomain, brzyckiMaxReps, reps)
	}
	return weight * 36 / float64(brzyckiMaxReps-reps), nil
}

func Estimate(formula Formula, weight float64, reps int) (float64, error) {
	switch formula {
	case FormulaEpley:
		return Epley(weight, reps), nil
	case FormulaBrzycki:
		return Brzycki(weight, reps)
	default:
		return 0, fmt.Errorf("%w: unknown formula [%s]", ErrDomain, formula)
	}
}

// TargetFromPercent1RM returns the weight for percent of an estimated 1RM.
// No rounding to plate increments happens here.
func TargetFromPercent1RM(estimated1RM, percent float64) float64 {
	return estimated1RM * percent / 100
}
