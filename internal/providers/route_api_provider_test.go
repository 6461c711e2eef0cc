package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"infinite-experiment/reachburo/internal/constants"
	"infinite-experiment/reachburo/internal/models/dtos"
)

func TestRouteAPIProvider_LookupAirport_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("Expected GET request, got %s", r.Method)
		}

		if r.URL.Path != "/airports" {
			t.Errorf("Expected path /airports, got %s", r.URL.Path)
		}

		if got := r.URL.Query().Get("code"); got != "JFK" {
			t.Errorf("Expected code query JFK, got %s", got)
		}

		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Errorf("Expected X-API-Key test-key, got %s", got)
		}

		response := dtos.AirportSearchResponse{
			Result: []dtos.AirportEntry{
				{ID: 991, Code: "JFX", Name: "Somewhere else"},
				{ID: 184, Code: "JFK", Name: "John F. Kennedy International"},
			},
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	provider := &RouteAPIProvider{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Client:  &http.Client{},
	}

	ctx := context.Background()
	id, status, err := provider.LookupAirport(ctx, "jfk")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if status != http.StatusOK {
		t.Errorf("Expected status 200, got %d", status)
	}

	// Exact code match must win over the first entry
	if id != 184 {
		t.Errorf("Expected airport ID 184, got %d", id)
	}
}

func TestRouteAPIProvider_LookupAirport_EmptyCode(t *testing.T) {
	provider := NewRouteAPIProvider()

	ctx := context.Background()
	_, status, err := provider.LookupAirport(ctx, "  ")

	if err == nil {
		t.Error("Expected error for empty airport code")
	}

	if status != 0 {
		t.Errorf("Expected status 0, got %d", status)
	}
}

func TestRouteAPIProvider_LookupAirport_UnknownCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(dtos.AirportSearchResponse{Result: []dtos.AirportEntry{}})
	}))
	defer server.Close()

	provider := &RouteAPIProvider{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Client:  &http.Client{},
	}

	ctx := context.Background()
	_, _, err := provider.LookupAirport(ctx, "XXX")

	if err == nil {
		t.Fatal("Expected error for unknown airport code")
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("Expected ProviderError, got %T", err)
	}

	if provErr.Code != constants.ErrCodeAirportNotFound {
		t.Errorf("Expected code %s, got %s", constants.ErrCodeAirportNotFound, provErr.Code)
	}
}

func TestRouteAPIProvider_SearchRoutes_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/routes" {
			t.Errorf("Expected path /routes, got %s", r.URL.Path)
		}

		q := r.URL.Query()
		if q.Get("from") != "184" || q.Get("to") != "507" || q.Get("maxStops") != "1" {
			t.Errorf("Unexpected query %s", r.URL.RawQuery)
		}

		response := dtos.RouteSearchResponse{
			Result: []dtos.RouteEntry{
				{Stops: 1, DistanceKm: 5942.8, DurationMin: 540, Via: []string{"KEF"}},
				{Stops: 1, DistanceKm: 6105.0, DurationMin: 525, Via: []string{"DUB"}},
			},
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	provider := &RouteAPIProvider{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Client:  &http.Client{},
	}

	ctx := context.Background()
	routes, status, err := provider.SearchRoutes(ctx, 184, 507, 1)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if status != http.StatusOK {
		t.Errorf("Expected status 200, got %d", status)
	}

	if len(routes) != 2 {
		t.Fatalf("Expected 2 routes, got %d", len(routes))
	}

	if routes[0].DistanceKm != 5942.8 {
		t.Errorf("Expected distance 5942.8, got %f", routes[0].DistanceKm)
	}
}

func TestRouteAPIProvider_SearchRoutes_NoRoutes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(dtos.RouteSearchResponse{Result: []dtos.RouteEntry{}})
	}))
	defer server.Close()

	provider := &RouteAPIProvider{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Client:  &http.Client{},
	}

	ctx := context.Background()
	routes, _, err := provider.SearchRoutes(ctx, 184, 507, 0)

	if err != nil {
		t.Fatalf("Expected no error for empty result, got %v", err)
	}

	if len(routes) != 0 {
		t.Errorf("Expected no routes, got %d", len(routes))
	}
}

func TestRouteAPIProvider_HTTPErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		statusCode int
		wantCode   string
	}{
		{"Unauthorized", http.StatusUnauthorized, constants.ErrCodeInvalidAPIKey},
		{"NotFound", http.StatusNotFound, constants.ErrCodeAirportNotFound},
		{"RateLimited", http.StatusTooManyRequests, constants.ErrCodeRateLimited},
		{"BadRequest", http.StatusBadRequest, constants.ErrCodeInvalidDataFormat},
		{"ServerError", http.StatusBadGateway, constants.ErrCodeRouteServiceError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(`{"error":"boom"}`))
			}))
			defer server.Close()

			provider := &RouteAPIProvider{
				BaseURL: server.URL,
				APIKey:  "test-key",
				Client:  &http.Client{},
			}

			_, status, err := provider.SearchRoutes(context.Background(), 1, 2, 0)

			if err == nil {
				t.Fatalf("Expected error for HTTP %d", tc.statusCode)
			}

			if status != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, status)
			}

			var provErr *ProviderError
			if !errors.As(err, &provErr) {
				t.Fatalf("Expected ProviderError, got %T", err)
			}

			if provErr.Code != tc.wantCode {
				t.Errorf("Expected code %s, got %s", tc.wantCode, provErr.Code)
			}
		})
	}
}

func TestRouteAPIProvider_MissingAPIKey(t *testing.T) {
	provider := &RouteAPIProvider{
		BaseURL: "http://localhost:0",
		APIKey:  "",
		Client:  &http.Client{},
	}

	_, _, err := provider.LookupAirport(context.Background(), "JFK")

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("Expected ProviderError, got %v", err)
	}

	if provErr.Code != constants.ErrCodeInvalidAPIKey {
		t.Errorf("Expected code %s, got %s", constants.ErrCodeInvalidAPIKey, provErr.Code)
	}
}
