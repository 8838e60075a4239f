package model

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"

	"bitbucket.org/dtolpin/gpmle/kernel"
)

const eps = 1e-8

func TestLogLikelihoodSingle(t *testing.T) {
	// a single observation has the closed form
	// -(d-a)^2/(2(b+s^2)) - log(b+s^2)/2 - log(2 pi)/2
	for i, c := range []struct {
		theta    kernel.Theta
		d, sigma float64
	}{
		{kernel.Theta{A: 0, B: 1, C: 1}, 0.3, 0.5},
		{kernel.Theta{A: 1, B: 2, C: 0.1}, -0.7, 0},
		{kernel.Theta{A: -0.5, B: 0.25, C: 3}, 2, 1},
	} {
		data, err := NewData(
			[]float64{0}, []float64{c.d}, []float64{c.sigma})
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		ll, err := LogLikelihood(c.theta, data)
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		v := c.theta.B + c.sigma*c.sigma
		r := c.d - c.theta.A
		want := -0.5*r*r/v - 0.5*math.Log(v) - 0.5*math.Log(2*math.Pi)
		if math.Abs(ll-want) > eps {
			t.Errorf("%d: log likelihood %g, want %g", i, ll, want)
		}
	}
}

func TestLogLikelihoodNormal(t *testing.T) {
	// the likelihood must agree with the multivariate normal density
	// of the observations under K+S
	th := kernel.Theta{A: 0.5, B: 2, C: 1.5}
	ts := []float64{-2, -0.5, 0, 1, 3}
	d := []float64{0.1, 1.2, 0.8, -0.4, 0.9}
	sigma := []float64{0.3}

	data, err := NewData(ts, d, sigma)
	if err != nil {
		t.Fatal(err)
	}
	ll, err := LogLikelihood(th, data)
	if err != nil {
		t.Fatal(err)
	}

	k, err := th.Cov(ts)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i != len(ts); i++ {
		k.SetSym(i, i, k.At(i, i)+0.3*0.3)
	}
	normal, ok := distmv.NewNormal(th.Mean(ts), k, nil)
	if !ok {
		t.Fatal("covariance is not positive definite")
	}
	if want := normal.LogProb(d); math.Abs(ll-want) > eps {
		t.Errorf("log likelihood %g, want %g", ll, want)
	}
}

func TestLogLikelihoodShift(t *testing.T) {
	// shifting the observations and the mean offset together leaves
	// the likelihood unchanged
	th := kernel.Theta{A: 0, B: 1, C: 0.7}
	ts := []float64{0, 0.5, 1, 2}
	d := []float64{-0.2, 0.4, 0.1, 1.3}
	sigma := []float64{0.2}

	data, err := NewData(ts, d, sigma)
	if err != nil {
		t.Fatal(err)
	}
	ll, err := LogLikelihood(th, data)
	if err != nil {
		t.Fatal(err)
	}

	const shift = 5.5
	shifted := make([]float64, len(d))
	for i := range d {
		shifted[i] = d[i] + shift
	}
	sdata, err := NewData(ts, shifted, sigma)
	if err != nil {
		t.Fatal(err)
	}
	sth := th
	sth.A += shift
	sll, err := LogLikelihood(sth, sdata)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ll-sll) > eps {
		t.Errorf("log likelihood changed under shift: %g != %g", ll, sll)
	}
}

func TestLogLikelihoodSingular(t *testing.T) {
	// zero variance and zero noise make the covariance singular
	data, err := NewData(
		[]float64{0, 1, 2},
		[]float64{0.1, -0.2, 0.3},
		[]float64{0})
	if err != nil {
		t.Fatal(err)
	}
	_, err = LogLikelihood(kernel.Theta{A: 0, B: 0, C: 1}, data)
	var nerr *NumericalError
	if !errors.As(err, &nerr) {
		t.Errorf("got %v, want a NumericalError", err)
	}
}

func TestNewData(t *testing.T) {
	for i, c := range []struct {
		t, d, sigma []float64
		ok          bool
	}{
		{[]float64{0, 1}, []float64{1, 2}, []float64{0.5, 0.5}, true},
		{[]float64{0, 1}, []float64{1, 2}, []float64{0.5}, true},
		{[]float64{0, 1}, []float64{1}, []float64{0.5}, false},
		{[]float64{0, 1}, []float64{1, 2}, []float64{0.5, 0.5, 0.5}, false},
		{[]float64{0, 1}, []float64{1, 2}, []float64{-0.5}, false},
		{nil, nil, nil, false},
	} {
		data, err := NewData(c.t, c.d, c.sigma)
		if c.ok != (err == nil) {
			t.Errorf("%d: got error %v, want ok=%v", i, err, c.ok)
			continue
		}
		if err == nil && len(data.Sigma) != len(c.t) {
			t.Errorf("%d: %d noise values for %d observations",
				i, len(data.Sigma), len(c.t))
		}
	}
}

func TestDraw(t *testing.T) {
	th := kernel.Theta{A: 0, B: 1, C: 0.5}
	ts := make([]float64, 20)
	for i := range ts {
		ts[i] = float64(i) * 0.25
	}

	d, err := Draw(th, ts, []float64{0.1}, rand.NewSource(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(d) != len(ts) {
		t.Fatalf("drew %d values at %d locations", len(d), len(ts))
	}

	// the draw is reproducible for a fixed seed
	d2, err := Draw(th, ts, []float64{0.1}, rand.NewSource(1))
	if err != nil {
		t.Fatal(err)
	}
	for i := range d {
		if d[i] != d2[i] {
			t.Fatalf("draws with the same seed differ at %d: %g != %g",
				i, d[i], d2[i])
		}
	}
}
