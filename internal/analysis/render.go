package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KaramelBytes/solstats/internal/utils"
)

// Text renders the report as the fixed eight-line summary.
func (r *Report) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "The geometric mean of the solutions is: %s\n", FormatFloat(r.GeoMean))
	fmt.Fprintf(&b, "The arithmetic mean of the solutions is: %s\n", FormatFloat(r.Mean))
	fmt.Fprintf(&b, "The median of the solutions is: %s\n", FormatFloat(r.Median))
	fmt.Fprintf(&b, "The standard deviation of the solutions is: %s\n", FormatFloat(r.Std))
	fmt.Fprintf(&b, "The variance of the solutions is: %s\n", FormatFloat(r.Variance))
	fmt.Fprintf(&b, "The minimum solution size is: %s\n", FormatFloat(r.Min))
	fmt.Fprintf(&b, "The maximum solution size is: %s\n", FormatFloat(r.Max))
	fmt.Fprintf(&b, "The 25th, 50th, and 75th percentiles of the solutions are: [%s, %s, %s]\n",
		FormatFloat(r.Percentiles[0]), FormatFloat(r.Percentiles[1]), FormatFloat(r.Percentiles[2]))
	return b.String()
}

// Markdown renders the report as a compact table.
func (r *Report) Markdown() string {
	var b strings.Builder
	title := r.Name
	if title == "" {
		title = "dataset"
	}
	fmt.Fprintf(&b, "# Solution Statistics: %s\n\n", title)
	if r.Column != "" {
		fmt.Fprintf(&b, "Column: `%s`, values: %d\n\n", r.Column, r.Count)
	} else {
		fmt.Fprintf(&b, "Values: %d\n\n", r.Count)
	}
	b.WriteString("| Statistic | Value |\n|---|---|\n")
	rows := []struct {
		k string
		v float64
	}{
		{"Geometric mean", r.GeoMean},
		{"Arithmetic mean", r.Mean},
		{"Median", r.Median},
		{"Std (sample)", r.Std},
		{"Variance (sample)", r.Variance},
		{"Min", r.Min},
		{"Max", r.Max},
		{"P25", r.Percentiles[0]},
		{"P50", r.Percentiles[1]},
		{"P75", r.Percentiles[2]},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", row.k, FormatFloat(row.v))
	}
	return b.String()
}

type jsonPercentiles struct {
	P25 *float64 `json:"p25"`
	P50 *float64 `json:"p50"`
	P75 *float64 `json:"p75"`
}

type jsonReport struct {
	RunID       string          `json:"run_id"`
	Source      string          `json:"source"`
	Column      string          `json:"column"`
	Count       int             `json:"count"`
	GeoMean     *float64        `json:"geometric_mean"`
	Mean        *float64        `json:"mean"`
	Median      *float64        `json:"median"`
	Std         *float64        `json:"std"`
	Variance    *float64        `json:"variance"`
	Min         *float64        `json:"min"`
	Max         *float64        `json:"max"`
	Percentiles jsonPercentiles `json:"percentiles"`
}

// finite maps NaN and infinities to null.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// JSON renders the report as an indented JSON document tagged with runID.
func (r *Report) JSON(runID string) ([]byte, error) {
	doc := jsonReport{
		RunID:    runID,
		Source:   r.Name,
		Column:   r.Column,
		Count:    r.Count,
		GeoMean:  finite(r.GeoMean),
		Mean:     finite(r.Mean),
		Median:   finite(r.Median),
		Std:      finite(r.Std),
		Variance: finite(r.Variance),
		Min:      finite(r.Min),
		Max:      finite(r.Max),
		Percentiles: jsonPercentiles{
			P25: finite(r.Percentiles[0]),
			P50: finite(r.Percentiles[1]),
			P75: finite(r.Percentiles[2]),
		},
	}
	return utils.PrettyJSON(doc)
}

// FormatFloat spells v with the shortest round-trip digits, keeping a ".0"
// on whole numbers and switching to exponent form outside [1e-4, 1e16).
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
