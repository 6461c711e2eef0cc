package services

import (
	"context"
	"fmt"
	"time"

	"infinite-experiment/reachburo/internal/common"
	"infinite-experiment/reachburo/internal/constants"
	"infinite-experiment/reachburo/internal/metrics"
	"infinite-experiment/reachburo/internal/models/dtos"
	"infinite-experiment/reachburo/internal/models/entities"
	"infinite-experiment/reachburo/internal/providers"
)

// DistanceService answers best-case travel estimates for airport pairs. It
// memoizes airport IDs and pair results for the lifetime of the run, so a
// repeated lookup in either direction never triggers a second remote call.
type DistanceService struct {
	cache    common.CacheInterface
	provider providers.RouteProvider
	metrics  *metrics.MetricsRegistry
}

func NewDistanceService(cache common.CacheInterface, provider providers.RouteProvider, reg *metrics.MetricsRegistry) *DistanceService {
	return &DistanceService{
		cache:    cache,
		provider: provider,
		metrics:  reg,
	}
}

// PairDistance returns the best-case estimate between two airport codes.
// Identical codes short-circuit to the zero estimate without touching the
// cache or the network.
func (s *DistanceService) PairDistance(ctx context.Context, a, b string) (entities.RouteEstimate, error) {
	a = common.NormalizeCode(a)
	b = common.NormalizeCode(b)

	if a == b {
		return entities.ZeroEstimate(), nil
	}

	cacheKey := string(constants.CachePrefixPairDistance) + common.PairKey(a, b)
	if val, found := s.cache.Get(cacheKey); found {
		if est, ok := val.(entities.RouteEstimate); ok {
			s.metrics.CacheHitsTotal.WithLabelValues("pair_distance").Inc()
			s.metrics.PairsEstimated.Inc()
			return est, nil
		}
	}
	s.metrics.CacheMissesTotal.WithLabelValues("pair_distance").Inc()

	est, err := s.lookupPair(ctx, a, b)
	if err != nil {
		return entities.RouteEstimate{}, err
	}

	s.cache.Set(cacheKey, est, 0)
	s.metrics.PairsEstimated.Inc()
	if !est.Reachable() {
		s.metrics.UnreachablePairs.Inc()
	}

	return est, nil
}

// CachedEntries reports the current number of memoized lookups.
func (s *DistanceService) CachedEntries() int {
	return s.cache.Count()
}

// lookupPair walks the stop ladder remotely: direct first, then one, two
// and three stops. The first stop budget with any itinerary wins; exhausting
// the ladder marks the pair unreachable.
func (s *DistanceService) lookupPair(ctx context.Context, from, to string) (entities.RouteEstimate, error) {
	fromID, err := s.resolveAirport(ctx, from)
	if err != nil {
		return entities.RouteEstimate{}, fmt.Errorf("resolve %s: %w", from, err)
	}

	toID, err := s.resolveAirport(ctx, to)
	if err != nil {
		return entities.RouteEstimate{}, fmt.Errorf("resolve %s: %w", to, err)
	}

	for stops := 0; stops <= constants.MaxRouteStops; stops++ {
		start := time.Now()
		routes, _, err := s.provider.SearchRoutes(ctx, fromID, toID, stops)
		s.observeLookup("routes", start, err)
		if err != nil {
			return entities.RouteEstimate{}, fmt.Errorf("routes %s-%s maxStops=%d: %w", from, to, stops, err)
		}

		if len(routes) == 0 {
			continue
		}

		return bestEstimate(routes), nil
	}

	return entities.UnreachableEstimate(), nil
}

// resolveAirport resolves an airport code to the route service's numeric
// ID, memoized for the run.
func (s *DistanceService) resolveAirport(ctx context.Context, code string) (int64, error) {
	cacheKey := string(constants.CachePrefixAirportID) + code
	if val, found := s.cache.Get(cacheKey); found {
		if id, ok := val.(int64); ok {
			s.metrics.CacheHitsTotal.WithLabelValues("airport_id").Inc()
			return id, nil
		}
	}
	s.metrics.CacheMissesTotal.WithLabelValues("airport_id").Inc()

	start := time.Now()
	id, _, err := s.provider.LookupAirport(ctx, code)
	s.observeLookup("airports", start, err)
	if err != nil {
		return 0, err
	}

	s.cache.Set(cacheKey, id, 0)
	return id, nil
}

func (s *DistanceService) observeLookup(endpoint string, start time.Time, err error) {
	s.metrics.RouteLookupDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.metrics.RouteLookupsTotal.WithLabelValues(endpoint, outcome).Inc()
}

// bestEstimate reduces the service's candidate itineraries to the best case
// per metric. Hops counts flight segments, one more than intermediate stops.
func bestEstimate(routes []dtos.RouteEntry) entities.RouteEstimate {
	best := entities.RouteEstimate{
		Hops:        entities.Metric(routes[0].Stops + 1),
		DistanceKm:  entities.Metric(routes[0].DistanceKm),
		DurationMin: entities.Metric(routes[0].DurationMin),
	}

	for _, r := range routes[1:] {
		if hops := entities.Metric(r.Stops + 1); hops < best.Hops {
			best.Hops = hops
		}
		if dist := entities.Metric(r.DistanceKm); dist < best.DistanceKm {
			best.DistanceKm = dist
		}
		if dur := entities.Metric(r.DurationMin); dur < best.DurationMin {
			best.DurationMin = dur
		}
	}

	return best
}
