package domain

// Vehicle types reported by the directions provider in transit details.
const (
	VehicleBus = "BUS"
)

// TransitDetails describes the transit portion of an itinerary step.
type TransitDetails struct {
	DepartureStop string `json:"departure_stop"`
	ArrivalStop   string `json:"arrival_stop"`
	LineShortName string `json:"line_short_name"`
	Vehicle       string `json:"vehicle"`
}

// Step is a single instruction of an itinerary leg.
type Step struct {
	Mode           TravelMode      `json:"mode"`
	DurationSec    int             `json:"duration_sec"`
	DistanceMeters int             `json:"distance_meters"`
	Start          Coordinate      `json:"start"`
	End            Coordinate      `json:"end"`
	Transit        *TransitDetails `json:"transit,omitempty"`
}

// IsBusRide reports whether the step is a transit ride on a bus vehicle.
func (s Step) IsBusRide() bool {
	return s.Mode == ModeTransit && s.Transit != nil && s.Transit.Vehicle == VehicleBus
}

// Itinerary is one route option returned by the directions provider.
// Multi-waypoint requests are not made, so an itinerary always carries
// the steps of its single leg.
type Itinerary struct {
	DurationSec    int    `json:"duration_sec"`
	DistanceMeters int    `json:"distance_meters"`
	Steps          []Step `json:"steps"`
}

// TransitStepCount returns the number of transit-vehicle steps.
func (it Itinerary) TransitStepCount() int {
	count := 0
	for _, s := range it.Steps {
		if s.Mode == ModeTransit {
			count++
		}
	}
	return count
}

// TransitChanges returns the number of vehicle changes: one less than the
// number of transit vehicles boarded, never negative.
func (it Itinerary) TransitChanges() int {
	count := it.TransitStepCount()
	if count == 0 {
		return 0
	}
	return count - 1
}

// RouteResult is the resolved best commute from a property to one point of
// interest. ReplacementTransitData is set only when the cycling substitution
// replaced the transit edges of the itinerary; it carries the stop names and
// line of the preserved core leg for display.
type RouteResult struct {
	Description            string      `json:"description"`
	Mode                   TravelMode  `json:"mode"`
	TimeMinutes            int         `json:"time_minutes"`
	DistanceKm             float64     `json:"distance_km"`
	TransitCount           int         `json:"transit_count"`
	ReplacementTransitData *string     `json:"replacement_transit_data,omitempty"`
	Limit                  TravelLimit `json:"limit"`
	DestinationLabel       string      `json:"destination_label,omitempty"`
	DestinationCoordinate  Coordinate  `json:"destination_coordinate"`
}

// WithinLimit reports whether the route satisfies its own travel limit.
func (r RouteResult) WithinLimit() bool {
	return r.TimeMinutes <= r.Limit.MaxMinutes
}
