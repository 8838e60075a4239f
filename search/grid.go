package search

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"bitbucket.org/dtolpin/gpmle/kernel"
	"bitbucket.org/dtolpin/gpmle/model"
)

// Surface is the log likelihood evaluated over a grid of variance and
// length scale candidates, with the mean offset fixed at zero.
// LL[i][j] is the log likelihood at (B[i], C[j]).
type Surface struct {
	B, C []float64
	LL   [][]float64
}

// Grid exhaustively evaluates the log likelihood of the data at every
// pair of candidates. Candidates must be positive; a cell at which the
// likelihood cannot be evaluated aborts the sweep, and the error names
// the offending hyperparameters.
func Grid(data *model.Data, bs, cs []float64) (*Surface, error) {
	s := &Surface{
		B:  append([]float64(nil), bs...),
		C:  append([]float64(nil), cs...),
		LL: make([][]float64, len(bs)),
	}
	for i, b := range bs {
		row := make([]float64, len(cs))
		for j, c := range cs {
			ll, err := model.LogLikelihood(
				kernel.Theta{A: 0, B: b, C: c}, data)
			if err != nil {
				return nil, fmt.Errorf("grid cell (%d,%d): %w", i, j, err)
			}
			row[j] = ll
		}
		s.LL[i] = row
	}
	return s, nil
}

// ArgMax returns the grid point with the highest log likelihood.
func (s *Surface) ArgMax() (b, c float64) {
	best := math.Inf(-1)
	for i := range s.LL {
		for j, ll := range s.LL[i] {
			if ll > best {
				best = ll
				b, c = s.B[i], s.C[j]
			}
		}
	}
	return b, c
}

// LogSpace fills dst with logarithmically spaced values from 10^lo to
// 10^hi, inclusive, and returns it. Used to sweep hyperparameters over
// orders of magnitude.
func LogSpace(dst []float64, lo, hi float64) []float64 {
	floats.Span(dst, lo, hi)
	for i := range dst {
		dst[i] = math.Pow(10, dst[i])
	}
	return dst
}
