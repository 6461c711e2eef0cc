package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"infinite-experiment/reachburo/internal/common"
	"infinite-experiment/reachburo/internal/metrics"
	"infinite-experiment/reachburo/internal/models/entities"
)

// PairDistancer answers best-case estimates for airport pairs.
// DistanceService is the production implementation.
type PairDistancer interface {
	PairDistance(ctx context.Context, a, b string) (entities.RouteEstimate, error)
}

// EstimatorService expands city codes through the metro alias table, fans
// out pair lookups across the expanded airports and reduces each city pair
// to its best case.
type EstimatorService struct {
	distance PairDistancer
	aliases  map[string][]string
	metrics  *metrics.MetricsRegistry
}

func NewEstimatorService(distance PairDistancer, aliases map[string][]string, reg *metrics.MetricsRegistry) *EstimatorService {
	return &EstimatorService{
		distance: distance,
		aliases:  aliases,
		metrics:  reg,
	}
}

// ExpandCity resolves a city code to its constituent airports. Codes missing
// from the alias table are treated as airport codes already.
func (s *EstimatorService) ExpandCity(code string) []string {
	code = common.NormalizeCode(code)
	if airports, ok := s.aliases[code]; ok {
		return airports
	}
	return []string{code}
}

// CityPairEstimate returns the best-case estimate between two city codes.
// Every airport pair in the cross product of the expansions is looked up
// concurrently; the result is the elementwise minimum across pairs. A
// lookup failure cancels the remaining lookups and propagates.
func (s *EstimatorService) CityPairEstimate(ctx context.Context, srcCity, dstCity string) (entities.RouteEstimate, error) {
	srcAirports := s.ExpandCity(srcCity)
	dstAirports := s.ExpandCity(dstCity)

	results := make([]entities.RouteEstimate, len(srcAirports)*len(dstAirports))

	g, gctx := errgroup.WithContext(ctx)
	idx := 0
	for _, from := range srcAirports {
		for _, to := range dstAirports {
			from, to, i := from, to, idx
			idx++
			g.Go(func() error {
				est, err := s.distance.PairDistance(gctx, from, to)
				if err != nil {
					return err
				}
				results[i] = est
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return entities.RouteEstimate{}, err
	}

	best := results[0]
	for _, r := range results[1:] {
		best = minEstimate(best, r)
	}
	return best, nil
}

// Run computes the full destination result table and its summaries.
// Destinations and sources keep their config order; city pairs proceed
// sequentially, only the airport pairs within one expansion run
// concurrently.
func (s *EstimatorService) Run(ctx context.Context, src, dst []string, bcThreshold int) (*entities.EstimateReport, error) {
	report := &entities.EstimateReport{
		Results:   make([]entities.DestinationEstimates, 0, len(dst)),
		Summaries: make([]entities.DestinationSummary, 0, len(dst)),
	}

	for _, destCity := range dst {
		row := entities.DestinationEstimates{
			Destination: common.NormalizeCode(destCity),
			Sources:     make([]entities.SourceEstimate, 0, len(src)),
		}

		for _, srcCity := range src {
			est, err := s.CityPairEstimate(ctx, srcCity, destCity)
			if err != nil {
				return nil, fmt.Errorf("estimate %s-%s: %w", srcCity, destCity, err)
			}
			row.Sources = append(row.Sources, entities.SourceEstimate{
				Source:   common.NormalizeCode(srcCity),
				Estimate: est,
			})
		}

		report.Results = append(report.Results, row)
		report.Summaries = append(report.Summaries, Summarize(row, bcThreshold))
	}

	s.metrics.EstimatesTotal.Inc()
	return report, nil
}

func minEstimate(a, b entities.RouteEstimate) entities.RouteEstimate {
	if b.Hops < a.Hops {
		a.Hops = b.Hops
	}
	if b.DistanceKm < a.DistanceKm {
		a.DistanceKm = b.DistanceKm
	}
	if b.DurationMin < a.DurationMin {
		a.DurationMin = b.DurationMin
	}
	return a
}
