package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Theta holds the hyperparameters of the squared exponential
// Gaussian process.
type Theta struct {
	A float64 // mean offset
	B float64 // variance
	C float64 // length scale
}

// DomainError reports hyperparameters outside the kernel domain.
type DomainError struct {
	Theta  Theta
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("hyperparameters a=%g, b=%g, c=%g: %s",
		e.Theta.A, e.Theta.B, e.Theta.C, e.Reason)
}

// Validate checks that the hyperparameters define a valid kernel.
// The variance must be non-negative and the length scale strictly
// positive; the mean offset is unconstrained.
func (th Theta) Validate() error {
	switch {
	case th.B < 0:
		return &DomainError{th, "variance must be non-negative"}
	case th.C <= 0:
		return &DomainError{th, "length scale must be positive"}
	}
	return nil
}

// Mean returns the mean vector of the process at locations t,
// the mean offset at every location.
func (th Theta) Mean(t []float64) []float64 {
	mu := make([]float64, len(t))
	for i := range mu {
		mu[i] = th.A
	}
	return mu
}

// Cov returns the covariance matrix of the process at locations t,
//
//	K[i,j] = b*exp(-(t[i]-t[j])^2/c^2)
//
// The matrix is symmetric and positive semi-definite by construction.
func (th Theta) Cov(t []float64) (*mat.SymDense, error) {
	if err := th.Validate(); err != nil {
		return nil, err
	}
	n := len(t)
	k := mat.NewSymDense(n, nil)
	for i := 0; i != n; i++ {
		k.SetSym(i, i, th.B)
		for j := i + 1; j != n; j++ {
			d := t[i] - t[j]
			k.SetSym(i, j, th.B*math.Exp(-d*d/(th.C*th.C)))
		}
	}
	return k, nil
}
