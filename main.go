package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"bitbucket.org/dtolpin/gpmle/model"
	"bitbucket.org/dtolpin/gpmle/search"
)

var (
	NOISE     = 0.5
	B0        = 1.
	C0        = 1.
	M         = 30
	BLO, BHI  = -2., 2.
	CLO, CHI  = -2., 1.
	SURFACE   = false
	NORMALIZE = false
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			`Estimates hyperparameters of a Gaussian process by maximizing
the marginal likelihood, first over a grid and then with the
downhill simplex method. Invocation:
  %s [OPTIONS] < INPUT > OUTPUT
or
  %s [OPTIONS] selfcheck
The input is csv with records t,d or t,d,sigma. In 'selfcheck' mode,
the data hard-coded into the program is used, to demonstrate basic
functionality.
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Float64Var(&NOISE, "noise", NOISE,
		"observation noise, for records without a sigma field")
	flag.Float64Var(&B0, "b0", B0, "initial variance")
	flag.Float64Var(&C0, "c0", C0, "initial length scale")
	flag.IntVar(&M, "m", M, "grid resolution, 0 to skip the sweep")
	flag.Float64Var(&BLO, "blo", BLO, "log10 of the lowest variance")
	flag.Float64Var(&BHI, "bhi", BHI, "log10 of the highest variance")
	flag.Float64Var(&CLO, "clo", CLO, "log10 of the lowest length scale")
	flag.Float64Var(&CHI, "chi", CHI, "log10 of the highest length scale")
	flag.BoolVar(&SURFACE, "surface", SURFACE,
		"write the likelihood surface as csv records b,c,ll")
	flag.BoolVar(&NORMALIZE, "normalize", NORMALIZE,
		"normalize observations to zero mean and unit variance")
}

func main() {
	var (
		input  io.Reader = os.Stdin
		output io.Writer = os.Stdout
	)

	flag.Parse()
	switch {
	case flag.NArg() == 0:
	case flag.NArg() == 1 && flag.Arg(0) == "selfcheck":
		input = strings.NewReader(selfCheckData)
	default:
		panic("usage")
	}

	fmt.Fprint(os.Stderr, "loading...")
	t, d, sigma, err := load(input)
	if err != nil {
		panic(err)
	}
	fmt.Fprintln(os.Stderr, "done")

	if NORMALIZE {
		meand, stdd := stat.MeanStdDev(d, nil)
		for i := range d {
			d[i] = (d[i] - meand) / stdd
			sigma[i] /= stdd
		}
	}

	data, err := model.NewData(t, d, sigma)
	if err != nil {
		panic(err)
	}

	if M > 0 {
		fmt.Fprint(os.Stderr, "sweeping the grid...")
		bs := search.LogSpace(make([]float64, M), BLO, BHI)
		cs := search.LogSpace(make([]float64, M), CLO, CHI)
		s, err := search.Grid(data, bs, cs)
		if err != nil {
			panic(err)
		}
		fmt.Fprintln(os.Stderr, "done")
		if SURFACE {
			for i := range s.LL {
				for j := range s.LL[i] {
					fmt.Fprintf(output, "%f,%f,%f\n",
						s.B[i], s.C[j], s.LL[i][j])
				}
			}
		}
		b, c := s.ArgMax()
		fmt.Fprintf(os.Stderr, "grid argmax: b=%f, c=%f\n", b, c)
	}

	b, c, err := search.MLE(data, B0, C0, &search.NelderMead{})
	if err != nil {
		switch err.(type) {
		case *search.ConvergenceWarning:
			// the best point found is still usable
			fmt.Fprintf(os.Stderr, "%v\n", err)
		default:
			panic(err)
		}
	}
	fmt.Fprintf(output, "%f,%f\n", b, c)
}

// load parses the data from csv and returns locations, observations,
// and noise standard deviations. Records without a sigma field get
// the noise given on the command line.
func load(rdr io.Reader) (
	t []float64,
	d []float64,
	sigma []float64,
	err error,
) {
	csv := csv.NewReader(rdr)
	csv.FieldsPerRecord = -1
RECORDS:
	for {
		record, err := csv.Read()
		switch err {
		case nil:
			// record contains the data
			fields := make([]float64, len(record))
			for i := range record {
				fields[i], err = strconv.ParseFloat(record[i], 64)
				if err != nil {
					// data error
					return t, d, sigma, err
				}
			}
			switch len(fields) {
			case 2:
				t = append(t, fields[0])
				d = append(d, fields[1])
				sigma = append(sigma, NOISE)
			case 3:
				t = append(t, fields[0])
				d = append(d, fields[1])
				sigma = append(sigma, fields[2])
			default:
				return t, d, sigma,
					fmt.Errorf("record %v: want t,d or t,d,sigma", record)
			}
		case io.EOF:
			// end of file
			break RECORDS
		default:
			// i/o error
			return t, d, sigma, err
		}
	}

	return t, d, sigma, err
}

var selfCheckData = `-5.000000,0.142062
-4.743590,1.466047
-4.487179,0.279155
-4.230769,0.834060
-3.974359,0.363264
-3.717949,-0.113910
-3.461538,1.740935
-3.205128,1.780066
-2.948718,1.039112
-2.692308,1.090988
-2.435897,1.907660
-2.179487,1.395372
-1.923077,1.281197
-1.666667,-0.293401
-1.410256,-0.958559
-1.153846,-1.209446
-0.897436,-2.125246
-0.641026,-3.123464
-0.384615,-3.872586
-0.128205,-2.761650
0.128205,-1.513124
0.384615,-0.913502
0.641026,-0.398367
0.897436,-1.534803
1.153846,-1.344579
1.410256,-0.513789
1.666667,0.759595
1.923077,-0.109990
2.179487,-0.785340
2.435897,-2.793940
2.692308,-2.718516
2.948718,-3.888934
3.205128,-4.112035
3.461538,-1.436475
3.717949,-2.369435
3.974359,-0.922286
4.230769,0.074934
4.487179,0.075304
4.743590,0.427928
5.000000,0.883347
`
