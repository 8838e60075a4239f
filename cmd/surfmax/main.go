package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
)

var (
	COMMA  = ","
	HEADER = false
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			`Finds the likelihood surface cell with the highest log
likelihood. The input is csv with records b,c,ll. Invocation:
	%s [OPTIONS] < SURFACE
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&COMMA, "comma", COMMA, "field separator")
	flag.BoolVar(&HEADER, "header", HEADER, "skip the header record")
}

func main() {
	flag.Parse()

	rdr := csv.NewReader(os.Stdin)
	rdr.Comma = rune(COMMA[0])

	if HEADER {
		rdr.Read()
	}
	best := math.Inf(-1)
	b, c := 0., 0.
	n := 0
	for ; ; n++ {
		record, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}

		bi, _ := strconv.ParseFloat(record[0], 64)
		ci, _ := strconv.ParseFloat(record[1], 64)
		ll, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			log.Fatal(err)
		}
		if ll > best {
			best, b, c = ll, bi, ci
		}
	}
	if n == 0 {
		log.Fatal("empty surface")
	}
	fmt.Printf("%f,%f,%f\n", b, c, best)
}
