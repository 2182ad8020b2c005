// dist reads newline-separated numbers from stdin and describes their
// distribution.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/statkit/go-statkit/stats"
)

var flagMu = flag.Float64("mu", math.NaN(), "test the mean against `mean` with a one-sample t-test")

func main() {
	flag.Parse()

	s := readInput(os.Stdin)
	s.Sort()

	fmt.Printf("N %d  sum %.6g  mean %.6g", len(s.Xs), s.Sum(), s.Mean())
	gmean := s.GeoMean()
	if !math.IsNaN(gmean) {
		fmt.Printf("  gmean %.6g", gmean)
	}
	fmt.Printf("  std dev %.6g  variance %.6g\n", s.StdDev(), s.Variance())
	fmt.Printf("skewness %.6g  excess kurtosis %.6g",
		stat.Skew(s.Xs, nil), stat.ExKurtosis(s.Xs, nil))
	if iqr, err := mstats.InterQuartileRange(s.Xs); err == nil {
		mad, _ := mstats.MedianAbsoluteDeviation(s.Xs)
		fmt.Printf("  iqr %.6g  mad %.6g", iqr, mad)
	}
	fmt.Println()
	fmt.Println()

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Printf("%8s %.6g\n", label, s.Quantile(float64(p)/100))
	}
	fmt.Println()

	if !math.IsNaN(*flagMu) {
		r, err := stats.OneSampleTTest(s, *flagMu, stats.TTestConfig{})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%s of mean = %g:\n", r.Name, r.EffectHypothesized)
		fmt.Printf("t %.6g  dof %g  p %.6g  %g%% ci [%.6g, %.6g]\n",
			r.T, r.DoF, r.P, 100*(1-r.Alpha), r.CILo, r.CIHi)
		fmt.Println()
	}

	// Kernel density estimate.
	fprintPDF(os.Stdout, stats.KDE{}.From(s))
}

// fprintPDF renders the density of dist as a horizontal bar chart,
// one row per sample point over the distribution's bounds.
func fprintPDF(w io.Writer, dist stats.Dist) {
	const rows, width = 20, 60

	lo, hi := dist.Bounds()
	xs := make([]float64, rows)
	floats.Span(xs, lo, hi)
	ys := dist.PDFEach(xs)

	max := floats.Max(ys)
	if max == 0 || math.IsInf(max, 1) {
		return
	}
	for i, x := range xs {
		bar := strings.Repeat("*", int(ys[i]/max*width+0.5))
		fmt.Fprintf(w, "%10.4g %s\n", x, bar)
	}
}

func readInput(r io.Reader) (sample stats.Sample) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		sample.Xs = append(sample.Xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return
}
