package domain

// Stop type constants for the transit-stop directory.
const (
	StopTypeMetro = "metro"
	StopTypeTrain = "train"
	StopTypeTram  = "tram"
)

// RailStopTypes returns the stop types considered "stations" for the
// nearest-station search. Bus stops are deliberately excluded.
func RailStopTypes() []string {
	return []string{StopTypeMetro, StopTypeTrain, StopTypeTram}
}

// TransitStop is a stop point from the transit-stop directory.
type TransitStop struct {
	ID   int64   `json:"id" db:"id"`
	Name string  `json:"name" db:"name"`
	Type string  `json:"type" db:"type"`
	Lat  float64 `json:"lat" db:"lat"`
	Lon  float64 `json:"lon" db:"lon"`
}

// Coordinate returns the stop location as a Coordinate.
func (s TransitStop) Coordinate() Coordinate {
	return Coordinate{Lat: s.Lat, Lon: s.Lon}
}
