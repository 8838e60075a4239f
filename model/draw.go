package model

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"

	"bitbucket.org/dtolpin/gpmle/kernel"
)

// Draw samples an observation vector at locations t from the process
// with the given hyperparameters and observation noise. The draw is
// from the observation marginal N(mu, K+S), so the noise doubles as
// the jitter keeping the covariance factorizable on dense grids.
func Draw(th kernel.Theta, t, sigma []float64, src rand.Source) ([]float64, error) {
	k, err := th.Cov(t)
	if err != nil {
		return nil, err
	}
	s, err := spread(sigma, len(t))
	if err != nil {
		return nil, err
	}
	for i := 0; i != len(t); i++ {
		k.SetSym(i, i, k.At(i, i)+s[i]*s[i])
	}
	normal, ok := distmv.NewNormal(th.Mean(t), k, src)
	if !ok {
		return nil, &NumericalError{th, len(t)}
	}
	return normal.Rand(nil), nil
}
