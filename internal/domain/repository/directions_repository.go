package repository

import (
	"context"
	"time"

	"github.com/flathunt/commute-service/internal/domain"
)

// DirectionsRepository is the third-party directions provider.
type DirectionsRepository interface {
	// GetItineraries returns route options between two points for a mode.
	// A provider response with zero routes is not an error: it returns an
	// empty slice. Errors are reserved for transport failures and
	// malformed responses.
	GetItineraries(
		ctx context.Context,
		from, to domain.Coordinate,
		mode domain.TravelMode,
		departure time.Time,
		alternatives bool,
	) ([]domain.Itinerary, error)
}
