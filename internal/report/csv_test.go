package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"infinite-experiment/reachburo/internal/models/entities"
)

func summary(dest string, hops, dist, dur [3]float64, bc int) entities.DestinationSummary {
	ms := func(v [3]float64) entities.MetricSummary {
		return entities.MetricSummary{
			Min: entities.Metric(v[0]),
			Max: entities.Metric(v[1]),
			Avg: entities.Metric(v[2]),
		}
	}
	return entities.DestinationSummary{
		Destination:   dest,
		Hops:          ms(hops),
		DistanceKm:    ms(dist),
		DurationMin:   ms(dur),
		BusinessClass: bc,
	}
}

func TestWriteCSV(t *testing.T) {
	inf := math.Inf(1)
	summaries := []entities.DestinationSummary{
		summary("LHR",
			[3]float64{1, 2, 1.5},
			[3]float64{5255, 8616, 6935.5},
			[3]float64{400, 630, 515},
			1,
		),
		summary("XYZ",
			[3]float64{1, inf, inf},
			[3]float64{500, inf, inf},
			[3]float64{90, inf, inf},
			2,
		),
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, summaries); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}

	wantHeader := "destination,min_hops,max_hops,avg_hops,min_distance_km,max_distance_km,avg_distance_km,min_duration_min,max_duration_min,avg_duration_min,business_class"
	if lines[0] != wantHeader {
		t.Errorf("Unexpected header: %s", lines[0])
	}

	if lines[1] != "LHR,1,2,1.50,5255,8616,6935.50,400,630,515,1" {
		t.Errorf("Unexpected LHR row: %s", lines[1])
	}

	if lines[2] != "XYZ,1,Inf,Inf,500,Inf,Inf,90,Inf,Inf,2" {
		t.Errorf("Unexpected XYZ row: %s", lines[2])
	}
}

func TestFormatMetric(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{3, "3"},
		{1.5, "1.50"},
		{6935.504, "6935.50"},
		{math.Inf(1), "Inf"},
	}

	for _, tc := range cases {
		if got := formatMetric(entities.Metric(tc.in)); got != tc.want {
			t.Errorf("formatMetric(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
