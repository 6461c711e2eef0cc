package services

import (
	"math"
	"testing"

	"infinite-experiment/reachburo/internal/models/entities"
)

func sourceEstimates(durations ...float64) []entities.SourceEstimate {
	sources := make([]entities.SourceEstimate, len(durations))
	for i, d := range durations {
		sources[i] = entities.SourceEstimate{
			Source: "SRC",
			Estimate: entities.RouteEstimate{
				Hops:        1,
				DistanceKm:  entities.Metric(d * 10),
				DurationMin: entities.Metric(d),
			},
		}
	}
	return sources
}

func TestSummarizeMetric(t *testing.T) {
	cases := []struct {
		name   string
		values []entities.Metric
		min    float64
		max    float64
		avg    float64
	}{
		{"SingleValue", []entities.Metric{42}, 42, 42, 42},
		{"Literal", []entities.Metric{3, 1, 2}, 1, 3, 2},
		{"Negative", []entities.Metric{-5, 5}, -5, 5, 0},
		{"Fractional", []entities.Metric{1, 2}, 1, 2, 1.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := summarizeMetric(tc.values)
			if float64(got.Min) != tc.min || float64(got.Max) != tc.max || float64(got.Avg) != tc.avg {
				t.Errorf("Expected min=%v max=%v avg=%v, got %+v", tc.min, tc.max, tc.avg, got)
			}
		})
	}
}

func TestSummarizeMetric_InfDominatesMaxAndMean(t *testing.T) {
	got := summarizeMetric([]entities.Metric{100, entities.Metric(math.Inf(1)), 200})

	if float64(got.Min) != 100 {
		t.Errorf("Expected min 100, got %v", got.Min)
	}
	if !math.IsInf(float64(got.Max), 1) {
		t.Errorf("Expected +Inf max, got %v", got.Max)
	}
	if !math.IsInf(float64(got.Avg), 1) {
		t.Errorf("Expected +Inf mean, got %v", got.Avg)
	}
}

func TestSummarize_BusinessClassStrictlyGreater(t *testing.T) {
	dest := entities.DestinationEstimates{
		Destination: "LHR",
		Sources:     sourceEstimates(300, 360, 361, 500),
	}

	summary := Summarize(dest, 360)

	// 360 does not exceed the threshold; 361 and 500 do
	if summary.BusinessClass != 2 {
		t.Errorf("Expected business-class count 2, got %d", summary.BusinessClass)
	}
}

func TestSummarize_UnreachableCountsAsBusinessClass(t *testing.T) {
	dest := entities.DestinationEstimates{
		Destination: "LHR",
		Sources: append(sourceEstimates(120), entities.SourceEstimate{
			Source:   "XXX",
			Estimate: entities.UnreachableEstimate(),
		}),
	}

	summary := Summarize(dest, 600)

	if summary.BusinessClass != 1 {
		t.Errorf("Expected unreachable source to count, got %d", summary.BusinessClass)
	}

	if !math.IsInf(float64(summary.DurationMin.Avg), 1) {
		t.Errorf("Expected +Inf mean duration, got %v", summary.DurationMin.Avg)
	}
}
