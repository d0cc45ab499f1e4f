package domain

// TravelMode is the mode of travel understood by the directions provider.
type TravelMode string

const (
	ModeTransit TravelMode = "transit"
	ModeCycling TravelMode = "bicycling"
	ModeWalking TravelMode = "walking"
)

// Coordinate is a geographic point. Lat and Lon are always set together.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// TravelLimit is one acceptable way of reaching a point of interest:
// a travel mode plus the maximum commute time the user tolerates for it.
type TravelLimit struct {
	Mode       TravelMode `json:"mode"`
	MaxMinutes int        `json:"max_minutes"`
}
