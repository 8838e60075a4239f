package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"bitbucket.org/dtolpin/gpmle/kernel"
)

const log2pi = 1.8378770664093453 // log(2*pi)

// Data is a set of scalar observations: locations, observed values,
// and per-observation noise standard deviations.
type Data struct {
	T     []float64 // observation locations
	D     []float64 // observed values
	Sigma []float64 // noise standard deviations
}

// NewData validates and assembles an observation set. sigma is either
// one value per observation or a single value broadcast to all of
// them; noise must be non-negative.
func NewData(t, d, sigma []float64) (*Data, error) {
	if len(t) == 0 {
		return nil, errors.New("empty observation set")
	}
	if len(d) != len(t) {
		return nil, fmt.Errorf(
			"got %d observations at %d locations", len(d), len(t))
	}
	s, err := spread(sigma, len(t))
	if err != nil {
		return nil, err
	}
	return &Data{T: t, D: d, Sigma: s}, nil
}

// spread broadcasts a scalar noise to n values, or passes a full
// noise vector through, checking the sign either way.
func spread(sigma []float64, n int) ([]float64, error) {
	switch len(sigma) {
	case 1:
		if sigma[0] < 0 {
			return nil, fmt.Errorf("negative noise %g", sigma[0])
		}
		s := make([]float64, n)
		for i := range s {
			s[i] = sigma[0]
		}
		return s, nil
	case n:
		for i := range sigma {
			if sigma[i] < 0 {
				return nil, fmt.Errorf(
					"negative noise %g at %d", sigma[i], i)
			}
		}
		return sigma, nil
	default:
		return nil, fmt.Errorf(
			"got %d noise values for %d observations", len(sigma), n)
	}
}

// NumericalError reports that the covariance of the observations is
// not positive definite and the likelihood cannot be evaluated.
type NumericalError struct {
	Theta kernel.Theta
	N     int
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf(
		"%dx%d covariance for a=%g, b=%g, c=%g is not positive definite",
		e.N, e.N, e.Theta.A, e.Theta.B, e.Theta.C)
}

// LogLikelihood returns the log marginal likelihood of the data under
// the Gaussian process with the given hyperparameters,
//
//	log L = -r'(K+S)^-1 r/2 - log|K+S|/2 - n log(2 pi)/2
//
// where r are the centered observations and S is the diagonal noise
// covariance. The factorization is Cholesky; a covariance that is not
// numerically positive definite is a NumericalError.
func LogLikelihood(th kernel.Theta, data *Data) (float64, error) {
	k, err := th.Cov(data.T)
	if err != nil {
		return 0, err
	}
	n := len(data.T)
	for i := 0; i != n; i++ {
		k.SetSym(i, i, k.At(i, i)+data.Sigma[i]*data.Sigma[i])
	}

	var chol mat.Cholesky
	if !chol.Factorize(k) {
		return 0, &NumericalError{th, n}
	}

	r := make([]float64, n)
	for i := range r {
		r[i] = data.D[i] - th.A
	}
	rv := mat.NewVecDense(n, r)
	var alpha mat.VecDense
	if err := chol.SolveVecTo(&alpha, rv); err != nil {
		return 0, &NumericalError{th, n}
	}

	return -0.5*mat.Dot(rv, &alpha) -
		0.5*chol.LogDet() -
		0.5*float64(n)*log2pi, nil
}
