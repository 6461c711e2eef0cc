package dtos

// ---- AIRPORT SEARCH ----
// Shapes below mirror the route-lookup service's wire format, which is
// dictated by that service, not designed here.

type AirportSearchResponse struct {
	ErrorCode int            `json:"errorCode"`
	Result    []AirportEntry `json:"result"`
}

type AirportEntry struct {
	ID      int64   `json:"id"`
	Code    string  `json:"code"`
	ICAO    string  `json:"icao"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// ---- ROUTE SEARCH ----

type RouteSearchResponse struct {
	ErrorCode int          `json:"errorCode"`
	Result    []RouteEntry `json:"result"`
}

type RouteEntry struct {
	Stops       int      `json:"stops"`
	DistanceKm  float64  `json:"distanceKm"`
	DurationMin float64  `json:"durationMin"`
	Carriers    []string `json:"carriers"`
	Via         []string `json:"via"`
}

// ---- SERVE MODE ENVELOPE ----

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}
