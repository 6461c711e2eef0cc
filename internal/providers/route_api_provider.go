package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"infinite-experiment/reachburo/internal/constants"
	"infinite-experiment/reachburo/internal/models/dtos"
)

// RouteAPIProvider implements RouteProvider against the third-party
// route-lookup web service
type RouteAPIProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// Ensure RouteAPIProvider implements RouteProvider
var _ RouteProvider = (*RouteAPIProvider)(nil)

// NewRouteAPIProvider creates a provider configured from the environment
func NewRouteAPIProvider() *RouteAPIProvider {
	baseURL := os.Getenv("ROUTE_API_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.routeradar.io/v1" // Default
	}
	apiKey := os.Getenv("ROUTE_API_KEY")

	return &RouteAPIProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetProviderType returns the provider type identifier
func (p *RouteAPIProvider) GetProviderType() string {
	return "route_lookup_api"
}

// LookupAirport resolves an airport code to the route service's numeric ID.
// The service may return several records for a query; an exact code match
// wins, otherwise the first record does.
func (p *RouteAPIProvider) LookupAirport(ctx context.Context, code string) (int64, int, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return 0, 0, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Airport code cannot be empty",
		}
	}

	endpoint := fmt.Sprintf("/airports?code=%s", url.QueryEscape(code))

	var result dtos.AirportSearchResponse
	status, err := p.doGET(ctx, endpoint, &result)
	if err != nil {
		return 0, status, err
	}

	if len(result.Result) == 0 {
		return 0, status, &ProviderError{
			Code:    constants.ErrCodeAirportNotFound,
			Message: fmt.Sprintf("No airport found for code %s", code),
		}
	}

	for _, entry := range result.Result {
		if strings.EqualFold(entry.Code, code) {
			return entry.ID, status, nil
		}
	}

	return result.Result[0].ID, status, nil
}

// SearchRoutes fetches candidate itineraries between two airport IDs with
// at most maxStops intermediate stops
func (p *RouteAPIProvider) SearchRoutes(ctx context.Context, fromID, toID int64, maxStops int) ([]dtos.RouteEntry, int, error) {
	if fromID <= 0 || toID <= 0 {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Airport IDs must be positive",
		}
	}

	if maxStops < 0 {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Stop budget must not be negative",
		}
	}

	endpoint := fmt.Sprintf("/routes?from=%d&to=%d&maxStops=%d", fromID, toID, maxStops)

	var result dtos.RouteSearchResponse
	status, err := p.doGET(ctx, endpoint, &result)
	if err != nil {
		return nil, status, err
	}

	return result.Result, status, nil
}

// ============================================================================
// HTTP Helper Methods
// ============================================================================

// doGET performs a GET request with authentication
func (p *RouteAPIProvider) doGET(ctx context.Context, endpoint string, result interface{}) (int, error) {
	// Validate API key
	if p.APIKey == "" {
		return 0, &ProviderError{
			Code:    constants.ErrCodeInvalidAPIKey,
			Message: "ROUTE_API_KEY environment variable is not set",
		}
	}

	// Build request
	url := p.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}

	// Set headers
	req.Header.Set("X-API-Key", p.APIKey)
	req.Header.Set("Accept", "application/json")

	// Execute request
	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	// Handle HTTP errors
	if err := p.handleHTTPError(resp, endpoint); err != nil {
		return resp.StatusCode, err
	}

	// Parse response
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Failed to decode response",
			Details: string(bodyBytes),
			Err:     err,
		}
	}

	return resp.StatusCode, nil
}

// handleHTTPError converts HTTP errors to ProviderError
func (p *RouteAPIProvider) handleHTTPError(resp *http.Response, endpoint string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	bodyBytes, _ := io.ReadAll(resp.Body)
	return p.buildHTTPError(resp.StatusCode, endpoint, string(bodyBytes))
}

// buildHTTPError creates appropriate error based on status code
func (p *RouteAPIProvider) buildHTTPError(statusCode int, endpoint string, body string) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return &ProviderError{
			Code:    constants.ErrCodeInvalidAPIKey,
			Message: fmt.Sprintf("Authentication failed for endpoint %s", endpoint),
			Details: body,
		}
	case http.StatusNotFound:
		return &ProviderError{
			Code:    constants.ErrCodeAirportNotFound,
			Message: fmt.Sprintf("Resource not found: %s", endpoint),
			Details: body,
		}
	case http.StatusTooManyRequests:
		return &ProviderError{
			Code:    constants.ErrCodeRateLimited,
			Message: constants.GetErrorMessage(constants.ErrCodeRateLimited),
			Details: body,
		}
	case http.StatusBadRequest:
		return &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: fmt.Sprintf("Bad request to %s", endpoint),
			Details: body,
		}
	default:
		if statusCode >= 500 {
			return &ProviderError{
				Code:    constants.ErrCodeRouteServiceError,
				Message: fmt.Sprintf("HTTP %d from %s", statusCode, endpoint),
				Details: body,
			}
		}
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: fmt.Sprintf("HTTP %d from %s: %s", statusCode, endpoint, body),
			Details: body,
		}
	}
}
