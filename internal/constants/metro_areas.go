package constants

// MetroAreas maps multi-airport metro codes to their constituent airport
// codes. Codes missing from this table are treated as airport codes already.
// Keys and values are uppercase IATA codes.
var MetroAreas = map[string][]string{
	"NYC": {"JFK", "LGA", "EWR"},
	"LON": {"LHR", "LGW", "LCY", "STN", "LTN"},
	"PAR": {"CDG", "ORY"},
	"TYO": {"HND", "NRT"},
	"OSA": {"KIX", "ITM"},
	"SEL": {"ICN", "GMP"},
	"BJS": {"PEK", "PKX"},
	"SHA": {"PVG", "SHA"},
	"MOW": {"SVO", "DME", "VKO"},
	"CHI": {"ORD", "MDW"},
	"WAS": {"IAD", "DCA", "BWI"},
	"MIL": {"MXP", "LIN", "BGY"},
	"ROM": {"FCO", "CIA"},
	"STO": {"ARN", "BMA", "NYO"},
	"SAO": {"GRU", "CGH", "VCP"},
	"RIO": {"GIG", "SDU"},
	"BUE": {"EZE", "AEP"},
	"YTO": {"YYZ", "YTZ"},
}
