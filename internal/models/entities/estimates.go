package entities

import (
	"encoding/json"
	"math"
)

// Metric is one travel metric (hops, distance or duration). Unreachable
// pairs carry +Inf, which encoding/json refuses to marshal, so the API
// representation of an unreachable metric is null.
type Metric float64

func (m Metric) MarshalJSON() ([]byte, error) {
	f := float64(m)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func (m *Metric) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = Metric(math.Inf(1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*m = Metric(f)
	return nil
}

// IsFinite reports whether the metric holds a real value rather than the
// unreachable sentinel.
func (m Metric) IsFinite() bool {
	f := float64(m)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// RouteEstimate is the best-case travel estimate between two airports.
// Hops counts flight segments: 0 means no travel at all (identical
// airports), 1 a direct flight, 2 a one-stop itinerary and so on.
type RouteEstimate struct {
	Hops        Metric `json:"hops"`
	DistanceKm  Metric `json:"distance_km"`
	DurationMin Metric `json:"duration_min"`
}

// ZeroEstimate is the no-travel estimate for identical airports.
func ZeroEstimate() RouteEstimate {
	return RouteEstimate{}
}

// UnreachableEstimate marks a pair with no route within the stop budget.
func UnreachableEstimate() RouteEstimate {
	inf := Metric(math.Inf(1))
	return RouteEstimate{Hops: inf, DistanceKm: inf, DurationMin: inf}
}

// Reachable reports whether any itinerary was found for the pair.
func (e RouteEstimate) Reachable() bool {
	return e.Hops.IsFinite()
}

// SourceEstimate tags a best-case estimate with the source city it was
// computed for.
type SourceEstimate struct {
	Source   string        `json:"source"`
	Estimate RouteEstimate `json:"estimate"`
}

// DestinationEstimates is one row of the destination result table: every
// per-source best-case estimate for a single destination city, in config
// source order.
type DestinationEstimates struct {
	Destination string           `json:"destination"`
	Sources     []SourceEstimate `json:"sources"`
}

// MetricSummary holds the minimum, maximum and mean of one metric across
// all sources for a destination.
type MetricSummary struct {
	Min Metric `json:"min"`
	Max Metric `json:"max"`
	Avg Metric `json:"avg"`
}

// DestinationSummary is the aggregated travel difficulty of one destination
// city. BusinessClass counts sources whose best-case duration exceeds the
// configured threshold.
type DestinationSummary struct {
	Destination   string        `json:"destination"`
	Hops          MetricSummary `json:"hops"`
	DistanceKm    MetricSummary `json:"distance_km"`
	DurationMin   MetricSummary `json:"duration_min"`
	BusinessClass int           `json:"business_class"`
}

// EstimateReport is the outcome of a full run: the destination result table
// and the per-destination summaries, both in config destination order.
type EstimateReport struct {
	Results   []DestinationEstimates `json:"results"`
	Summaries []DestinationSummary   `json:"summaries"`
}
