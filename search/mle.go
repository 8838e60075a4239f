package search

import (
	"errors"
	"math"

	"bitbucket.org/dtolpin/gpmle/kernel"
	"bitbucket.org/dtolpin/gpmle/model"
)

// Positive turns a function of positive arguments into a function of
// unconstrained arguments, evaluating f at the exponent of the point.
// An unconstrained minimizer of the wrapped function searches over the
// logs of the original arguments and never leaves the positive domain.
func Positive(f func(x []float64) float64) func(x []float64) float64 {
	return func(x []float64) float64 {
		y := make([]float64, len(x))
		for i := range x {
			y[i] = math.Exp(x[i])
		}
		return f(y)
	}
}

// MLE searches for the variance and length scale maximizing the log
// likelihood of the data, starting from (b0, c0), with the mean offset
// fixed at zero. The search is over (log b, log c), so the minimizer
// needs no constraint support. On a ConvergenceWarning the best point
// found is still returned along with the warning; the simplex is
// local, and restarts from other starting points are up to the caller.
func MLE(data *model.Data, b0, c0 float64, min Minimizer) (bMLE, cMLE float64, err error) {
	if b0 <= 0 || c0 <= 0 {
		return 0, 0, &kernel.DomainError{
			Theta:  kernel.Theta{B: b0, C: c0},
			Reason: "the starting point must be positive",
		}
	}

	objective := func(x []float64) float64 {
		ll, err := model.LogLikelihood(
			kernel.Theta{A: 0, B: x[0], C: x[1]}, data)
		if err != nil {
			// an infeasible trial point, send the simplex back
			return math.Inf(1)
		}
		return -ll
	}

	x, err := min.Minimize(Positive(objective),
		[]float64{math.Log(b0), math.Log(c0)})
	if x == nil {
		return 0, 0, err
	}
	var warn *ConvergenceWarning
	if err != nil && !errors.As(err, &warn) {
		return 0, 0, err
	}
	return math.Exp(x[0]), math.Exp(x[1]), err
}
