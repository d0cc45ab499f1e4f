package repository

import (
	"context"

	"github.com/flathunt/commute-service/internal/domain"
)

// StopRepository is the transit-stop directory.
type StopRepository interface {
	// GetStopsInRadius returns stops of the given types within radiusM
	// meters of the point, nearest first.
	GetStopsInRadius(ctx context.Context, lat, lon, radiusM float64, types []string) ([]*domain.TransitStop, error)
}
