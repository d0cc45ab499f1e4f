package domain

// POIKind discriminates the point-of-interest variants.
type POIKind string

const (
	// POIKindDestination is a fixed destination with explicit travel limits.
	POIKindDestination POIKind = "destination"
	// POIKindNearestStation asks for the closest rail/metro/tram station
	// instead of a fixed destination.
	POIKindNearestStation POIKind = "nearest_station"
)

// NearestStationDescription labels nearest-station routes in results and
// is what the validator matches against when checking route coverage.
const NearestStationDescription = "nearest station"

// POI is a tagged union of the two point-of-interest variants.
// Coordinate and Limits are set for destinations; MaxMinutes for the
// nearest-station variant.
type POI struct {
	Kind        POIKind       `json:"kind"`
	Description string        `json:"description"`
	Coordinate  *Coordinate   `json:"coordinate,omitempty"`
	Limits      []TravelLimit `json:"limits,omitempty"`
	MaxMinutes  int           `json:"max_minutes,omitempty"`
}

// NewDestinationPOI builds a fixed-destination POI.
func NewDestinationPOI(description string, coord Coordinate, limits ...TravelLimit) POI {
	return POI{
		Kind:        POIKindDestination,
		Description: description,
		Coordinate:  &coord,
		Limits:      limits,
	}
}

// NewNearestStationPOI builds a nearest-station POI with a walking budget.
func NewNearestStationPOI(maxMinutes int) POI {
	return POI{
		Kind:        POIKindNearestStation,
		Description: NearestStationDescription,
		MaxMinutes:  maxMinutes,
	}
}

// WalkingLimit expands the nearest-station budget into a WALKING travel
// limit. It is used to size the station search radius only; the resolved
// route may use any mode the provider returns.
func (p POI) WalkingLimit() TravelLimit {
	return TravelLimit{Mode: ModeWalking, MaxMinutes: p.MaxMinutes}
}
