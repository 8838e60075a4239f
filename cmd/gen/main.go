package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"bitbucket.org/dtolpin/gogp/gp"
	"bitbucket.org/dtolpin/gogp/kernel"
	adkernel "bitbucket.org/dtolpin/gogp/kernel/ad"
	"bitbucket.org/dtolpin/infergo/ad"
)

var (
	N     = 500
	LO    = -5.
	HI    = 5.
	A     = 0.
	B     = 2.
	C     = 0.1
	NOISE = 0.5
	SEED  = int64(0)
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			`Generate noisy observations of a squared exponential Gaussian
process on a uniform grid. Invocation:
	%s [OPTIONS] > OUTPUT
The output is csv with records t,d,sigma.
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.IntVar(&N, "n", N, "number of observations")
	flag.Float64Var(&LO, "lo", LO, "first location")
	flag.Float64Var(&HI, "hi", HI, "last location")
	flag.Float64Var(&A, "a", A, "mean offset")
	flag.Float64Var(&B, "b", B, "variance")
	flag.Float64Var(&C, "c", C, "length scale")
	flag.Float64Var(&NOISE, "noise", NOISE, "observation noise")
	flag.Int64Var(&SEED, "seed", SEED, "random seed, 0 for the clock")
	ad.MTSafeOn()
}

// The squared exponential similarity kernel. gogp's Normal kernel is
// exp(-d^2/(2 l^2)); the length scale is rescaled so that the
// covariance is b*exp(-d^2/c^2).
type sekernel struct {
	b, c float64
}

func (k sekernel) Observe(x []float64) float64 {
	const (
		xa = iota
		xb
	)

	return k.b * kernel.Normal.Cov(k.c/math.Sqrt2, x[xa], x[xb])
}

func (sekernel) Gradient() []float64 {
	return []float64{1, 1}
}

func (sekernel) NTheta() int {
	return 0
}

// sample draws the process at each incoming location, conditioned on
// the locations drawn so far.
func sample(g *gp.GP, xs <-chan float64, xys chan<- [2]float64) {
	for {
		x := <-xs
		X := [][]float64{{x}}
		Y, Sigma, err := g.Produce(X)
		if err != nil {
			panic(fmt.Errorf("produce: %v", err))
		}
		y := Y[0] + Sigma[0]*rand.NormFloat64()
		xys <- [...]float64{x, y}
		X = append(g.X, X...)
		Y = append(g.Y, y)
		if err := g.Absorb(X, Y); err != nil {
			panic(fmt.Errorf("absorb: %v", err))
		}
	}
}

func main() {
	flag.Parse()
	if SEED == 0 {
		SEED = time.Now().UTC().UnixNano()
	}
	rand.Seed(SEED)

	g := &gp.GP{
		NDim:  1,
		Simil: sekernel{B, C},
		// a small jitter keeping incremental conditioning stable
		Noise: adkernel.ConstantNoise(0.01),
	}

	xs := make(chan float64, 1)
	xys := make(chan [2]float64, 1)

	go func() {
		for i := 0; ; i++ {
			xs <- LO + (HI-LO)*float64(i)/float64(N-1)
		}
	}()
	go sample(g, xs, xys)

	for i := 0; i != N; i++ {
		xy := <-xys
		d := A + xy[1] + NOISE*rand.NormFloat64()
		fmt.Printf("%f,%f,%f\n", xy[0], d, NOISE)
	}
}
