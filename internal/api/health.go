package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"infinite-experiment/reachburo/internal/constants"
	"infinite-experiment/reachburo/internal/models/entities"
	"infinite-experiment/reachburo/internal/providers"
)

const healthCacheKey = "HEALTH_ROUTE_API"

// HealthCheckHandler handles GET /healthCheck. Route-service reachability
// is probed with a real airport lookup and cached for 30 seconds so health
// polling does not burn the service quota.
func HealthCheckHandler(deps *Dependencies, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]entities.ServiceStatus)

		status, err := deps.Services.Cache.GetOrSet(healthCacheKey, 30*time.Second, func() (any, error) {
			return probeRouteService(r.Context(), deps.Services.Provider), nil
		})
		if err == nil {
			if s, ok := status.(entities.ServiceStatus); ok {
				services["route_api"] = s
			}
		}

		services["cache"] = entities.ServiceStatus{
			Status:  "ok",
			Details: "in-memory",
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		now := time.Now()
		uptime := now.Sub(upSince).Round(time.Second).String()

		resp := entities.HealthCheckResponse{
			Services:     services,
			Status:       overallStatus,
			UpSince:      upSince,
			Uptime:       uptime,
			CacheEntries: deps.Services.Cache.Count(),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// probeRouteService checks the route service with a lookup of a well-known
// airport. AIRPORT_NOT_FOUND still proves the service answered.
func probeRouteService(ctx context.Context, provider providers.RouteProvider) entities.ServiceStatus {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, _, err := provider.LookupAirport(probeCtx, "JFK")
	if err != nil {
		var provErr *providers.ProviderError
		if errors.As(err, &provErr) && provErr.Code == constants.ErrCodeAirportNotFound {
			return entities.ServiceStatus{Status: "ok", Details: "Route service reachable"}
		}
		return entities.ServiceStatus{Status: "down", Details: err.Error()}
	}

	return entities.ServiceStatus{Status: "ok", Details: "Route service reachable"}
}
