package providers

import (
	"context"
	"fmt"

	"infinite-experiment/reachburo/internal/models/dtos"
)

// RouteProvider defines the interface for the external route-lookup service
type RouteProvider interface {
	// LookupAirport resolves an airport code to the numeric ID the route
	// service assigned to that airport
	LookupAirport(ctx context.Context, code string) (int64, int, error)

	// SearchRoutes returns candidate itineraries between two airport IDs
	// with at most maxStops intermediate stops. An empty slice means no
	// route exists within that stop budget.
	SearchRoutes(ctx context.Context, fromID, toID int64, maxStops int) ([]dtos.RouteEntry, int, error)
}

// ProviderError is the typed error returned for route service failures
type ProviderError struct {
	Code    string
	Message string
	Details string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
