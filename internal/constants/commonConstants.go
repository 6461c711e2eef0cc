package constants

type (
	RunSource   string
	APIStatus   string
	CachePrefix string
)

const (
	RunSourceCLI RunSource = "CLI"
	RunSourceAPI RunSource = "API"

	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixAirportID    CachePrefix = "AIRPORT_ID_"
	CachePrefixPairDistance CachePrefix = "PAIR_DIST_"
)

// MaxRouteStops is the deepest itinerary the route service is asked for:
// direct, one-stop, two-stop and three-stop lookups.
const MaxRouteStops = 3
