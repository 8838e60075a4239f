package search

import (
	"fmt"

	"gonum.org/v1/gonum/optimize"
)

// Minimizer is a derivative-free unconstrained minimizer: given an
// objective and a starting point, it returns an approximate minimizer
// of the objective.
type Minimizer interface {
	Minimize(f func(x []float64) float64, x0 []float64) ([]float64, error)
}

// ConvergenceWarning reports that the minimizer stopped without
// meeting its convergence criterion. The point returned alongside it
// is still the best found.
type ConvergenceWarning struct {
	Status string
	Err    error
}

func (w *ConvergenceWarning) Error() string {
	if w.Err != nil {
		return fmt.Sprintf("stopped without converging (%s): %v",
			w.Status, w.Err)
	}
	return fmt.Sprintf("stopped without converging (%s)", w.Status)
}

func (w *ConvergenceWarning) Unwrap() error { return w.Err }

// NelderMead minimizes with the downhill simplex method.
type NelderMead struct {
	Tol     float64 // function convergence tolerance, 0 for the default
	MaxIter int     // major iteration cap, 0 for no cap
}

const defaultTol = 1e-10

func (nm *NelderMead) Minimize(f func(x []float64) float64, x0 []float64) ([]float64, error) {
	tol := nm.Tol
	if tol == 0 {
		tol = defaultTol
	}
	p := optimize.Problem{Func: f}
	result, err := optimize.Minimize(p, x0, &optimize.Settings{
		Converger: &optimize.FunctionConverge{
			Absolute:   tol,
			Iterations: 50,
		},
		MajorIterations: nm.MaxIter,
	}, &optimize.NelderMead{})
	if result == nil {
		return nil, err
	}
	if err != nil || !converged(result.Status) {
		return result.X, &ConvergenceWarning{
			Status: result.Status.String(),
			Err:    err,
		}
	}
	return result.X, nil
}

func converged(status optimize.Status) bool {
	switch status {
	case optimize.Success,
		optimize.FunctionConvergence,
		optimize.GradientThreshold,
		optimize.StepConvergence:
		return true
	}
	return false
}
