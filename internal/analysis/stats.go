package analysis

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// Report holds descriptive statistics of a series.
type Report struct {
	Name        string
	Column      string
	Count       int
	GeoMean     float64
	Mean        float64
	Median      float64
	Std         float64 // sample (n-1)
	Variance    float64 // sample (n-1)
	Min         float64
	Max         float64
	Percentiles [3]float64 // 25th, 50th, 75th
}

// PercentileRanks are the quantiles reported in Report.Percentiles.
var PercentileRanks = [3]float64{0.25, 0.5, 0.75}

// Compute derives every statistic of values independently. It returns an
// EmptyDataError for an empty series and a NumericDomainError when a value is
// negative. No partial report is returned on error.
func Compute(values []float64) (*Report, error) {
	if len(values) == 0 {
		return nil, &EmptyDataError{}
	}
	data := stats.Float64Data(values)
	rep := &Report{Count: len(values)}
	var err error
	if rep.GeoMean, err = geometricMean(values); err != nil {
		return nil, err
	}
	if rep.Mean, err = stats.Mean(data); err != nil {
		return nil, err
	}
	if rep.Median, err = stats.Median(data); err != nil {
		return nil, err
	}
	if rep.Std, err = stats.StandardDeviationSample(data); err != nil {
		return nil, err
	}
	if rep.Variance, err = stats.SampleVariance(data); err != nil {
		return nil, err
	}
	if rep.Min, err = stats.Min(data); err != nil {
		return nil, err
	}
	if rep.Max, err = stats.Max(data); err != nil {
		return nil, err
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	for i, q := range PercentileRanks {
		rep.Percentiles[i] = quantile(sorted, q)
	}
	return rep, nil
}

// geometricMean computes exp(mean(ln x)). The result is clamped to [min, max],
// which bounds any geometric mean, so a constant series returns its value exactly.
func geometricMean(values []float64) (float64, error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	var sum float64
	for _, v := range values {
		if v < 0 {
			return 0, &NumericDomainError{Statistic: "geometric mean", Value: v}
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		sum += math.Log(v)
	}
	g := math.Exp(sum / float64(len(values)))
	if math.IsNaN(g) {
		return g, nil
	}
	return math.Max(lo, math.Min(hi, g)), nil
}

// quantile interpolates linearly between the order statistics of sorted at
// position q*(n-1).
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// Summarize loads opt.Column from path, replaces exact zeros with zeroSub and
// computes the report over the adjusted values.
func Summarize(path string, opt Options, zeroSub float64) (*Report, *Series, error) {
	s, err := LoadSeries(path, opt)
	if err != nil {
		return nil, nil, err
	}
	if len(s.Values) == 0 {
		return nil, s, &EmptyDataError{Column: s.Column}
	}
	rep, err := Compute(s.ZeroAdjusted(zeroSub))
	if err != nil {
		return nil, s, err
	}
	rep.Name = s.Name
	rep.Column = s.Column
	return rep, s, nil
}
