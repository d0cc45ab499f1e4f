package google

// Wire types for the Directions API response. Only the fields the core
// consumes are mapped; everything else is ignored on decode.

type directionsResponse struct {
	Status       string     `json:"status"`
	ErrorMessage string     `json:"error_message,omitempty"`
	Routes       []apiRoute `json:"routes"`
}

type apiRoute struct {
	Legs []apiLeg `json:"legs"`
}

type apiLeg struct {
	Duration apiValue  `json:"duration"`
	Distance apiValue  `json:"distance"`
	Steps    []apiStep `json:"steps"`
}

type apiStep struct {
	TravelMode     string             `json:"travel_mode"`
	Duration       apiValue           `json:"duration"`
	Distance       apiValue           `json:"distance"`
	StartLocation  apiLatLng          `json:"start_location"`
	EndLocation    apiLatLng          `json:"end_location"`
	TransitDetails *apiTransitDetails `json:"transit_details,omitempty"`
}

type apiValue struct {
	Value int `json:"value"`
}

type apiLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type apiTransitDetails struct {
	DepartureStop apiStop `json:"departure_stop"`
	ArrivalStop   apiStop `json:"arrival_stop"`
	Line          apiLine `json:"line"`
}

type apiStop struct {
	Name string `json:"name"`
}

type apiLine struct {
	ShortName string     `json:"short_name"`
	Name      string     `json:"name"`
	Vehicle   apiVehicle `json:"vehicle"`
}

type apiVehicle struct {
	Type string `json:"type"`
}

// Directions API statuses handled by the client.
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)
