package api

import (
	"infinite-experiment/reachburo/internal/common"
	"infinite-experiment/reachburo/internal/metrics"
	"infinite-experiment/reachburo/internal/providers"
	"infinite-experiment/reachburo/internal/services"
)

type Services struct {
	Cache     common.CacheInterface
	Provider  providers.RouteProvider
	Distance  *services.DistanceService
	Estimator *services.EstimatorService
}

type Dependencies struct {
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires the serving-mode dependency graph: one cache, one
// route provider and the estimator stack on top, shared across requests so
// memoized lookups survive between calls.
func InitDependencies(metricsReg *metrics.MetricsRegistry, aliases map[string][]string) (*Dependencies, error) {
	cacheSvc := common.NewCacheService(0, 0)
	provider := providers.NewRouteAPIProvider()
	distanceSvc := services.NewDistanceService(cacheSvc, provider, metricsReg)
	estimator := services.NewEstimatorService(distanceSvc, aliases, metricsReg)

	return &Dependencies{
		Services: &Services{
			Cache:     cacheSvc,
			Provider:  provider,
			Distance:  distanceSvc,
			Estimator: estimator,
		},
		Metrics: metricsReg,
	}, nil
}
