package constants

// Route Provider Error Codes
// These constants define specific error scenarios for the external
// route-lookup service

// Credential-related errors
const (
	ErrCodeInvalidAPIKey = "INVALID_API_KEY"
	ErrCodeRateLimited   = "RATE_LIMITED"
	ErrCodeNetworkError  = "NETWORK_ERROR"
)

// Lookup errors
const (
	ErrCodeAirportNotFound   = "AIRPORT_NOT_FOUND"
	ErrCodeInvalidDataFormat = "INVALID_DATA_FORMAT"
	ErrCodeRouteServiceError = "ROUTE_SERVICE_ERROR"
)

// Error Messages
// Human-readable messages corresponding to error codes

var RouteProviderErrorMessages = map[string]string{
	ErrCodeInvalidAPIKey:     "The route service API key is invalid or has been revoked",
	ErrCodeRateLimited:       "Rate limit exceeded at the route service",
	ErrCodeNetworkError:      "Unable to connect to the route service",
	ErrCodeAirportNotFound:   "The route service does not know this airport code",
	ErrCodeInvalidDataFormat: "The route service returned data in an unexpected shape",
	ErrCodeRouteServiceError: "The route service reported an internal error",
}

// GetErrorMessage returns the human-readable message for an error code,
// falling back to the code itself for unknown codes.
func GetErrorMessage(code string) string {
	if msg, ok := RouteProviderErrorMessages[code]; ok {
		return msg
	}
	return code
}
