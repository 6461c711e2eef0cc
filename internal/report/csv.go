// Package report renders destination summaries as CSV, the tool's primary
// output format.
package report

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"infinite-experiment/reachburo/internal/models/entities"
)

var header = []string{
	"destination",
	"min_hops", "max_hops", "avg_hops",
	"min_distance_km", "max_distance_km", "avg_distance_km",
	"min_duration_min", "max_duration_min", "avg_duration_min",
	"business_class",
}

// WriteCSV writes a header row followed by one row per destination summary.
func WriteCSV(w io.Writer, summaries []entities.DestinationSummary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return err
	}

	for _, s := range summaries {
		if err := cw.Write(row(s)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func row(s entities.DestinationSummary) []string {
	return []string{
		s.Destination,
		formatMetric(s.Hops.Min), formatMetric(s.Hops.Max), formatMetric(s.Hops.Avg),
		formatMetric(s.DistanceKm.Min), formatMetric(s.DistanceKm.Max), formatMetric(s.DistanceKm.Avg),
		formatMetric(s.DurationMin.Min), formatMetric(s.DurationMin.Max), formatMetric(s.DurationMin.Avg),
		strconv.Itoa(s.BusinessClass),
	}
}

// formatMetric prints integral values without decimals, other finite
// values with two, and the unreachable sentinel as Inf.
func formatMetric(m entities.Metric) string {
	f := float64(m)
	if math.IsInf(f, 1) {
		return "Inf"
	}
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
