package services

import (
	"infinite-experiment/reachburo/internal/models/entities"
)

// Summarize reduces one destination's per-source estimates to min/max/mean
// per metric plus the business-class count: the number of sources whose
// best-case duration strictly exceeds the threshold. Unreachable sources
// carry +Inf, which dominates max and mean and always counts as exceeding
// the threshold.
func Summarize(dest entities.DestinationEstimates, bcThresholdMin int) entities.DestinationSummary {
	hops := make([]entities.Metric, len(dest.Sources))
	distances := make([]entities.Metric, len(dest.Sources))
	durations := make([]entities.Metric, len(dest.Sources))

	businessClass := 0
	for i, s := range dest.Sources {
		hops[i] = s.Estimate.Hops
		distances[i] = s.Estimate.DistanceKm
		durations[i] = s.Estimate.DurationMin

		if float64(s.Estimate.DurationMin) > float64(bcThresholdMin) {
			businessClass++
		}
	}

	return entities.DestinationSummary{
		Destination:   dest.Destination,
		Hops:          summarizeMetric(hops),
		DistanceKm:    summarizeMetric(distances),
		DurationMin:   summarizeMetric(durations),
		BusinessClass: businessClass,
	}
}

func summarizeMetric(values []entities.Metric) entities.MetricSummary {
	summary := entities.MetricSummary{
		Min: values[0],
		Max: values[0],
	}

	var sum entities.Metric
	for _, v := range values {
		if v < summary.Min {
			summary.Min = v
		}
		if v > summary.Max {
			summary.Max = v
		}
		sum += v
	}
	summary.Avg = sum / entities.Metric(len(values))

	return summary
}
