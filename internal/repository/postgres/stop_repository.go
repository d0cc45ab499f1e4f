package postgres

import (
	"context"
	"fmt"

	"github.com/flathunt/commute-service/internal/domain"
	"github.com/flathunt/commute-service/internal/domain/repository"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type stopRepository struct {
	db *DB
}

// NewStopRepository creates the Postgres-backed transit-stop directory.
func NewStopRepository(db *DB) repository.StopRepository {
	return &stopRepository{db: db}
}

// GetStopsInRadius returns stops of the given types within radiusM meters
// of the point, nearest first. Distance is computed with the haversine
// formula directly in SQL so the table needs no PostGIS geometry column.
func (r *stopRepository) GetStopsInRadius(
	ctx context.Context,
	lat, lon, radiusM float64,
	types []string,
) ([]*domain.TransitStop, error) {
	if len(types) == 0 {
		types = domain.RailStopTypes()
	}

	query := `
		SELECT id, name, type, lat, lon
		FROM transit_stops
		WHERE type IN (?)
		  AND 2 * 6371000 * asin(sqrt(
		        power(sin(radians((lat - ?) / 2)), 2) +
		        cos(radians(?)) * cos(radians(lat)) *
		        power(sin(radians((lon - ?) / 2)), 2)
		      )) <= ?
		ORDER BY 2 * 6371000 * asin(sqrt(
		        power(sin(radians((lat - ?) / 2)), 2) +
		        cos(radians(?)) * cos(radians(lat)) *
		        power(sin(radians((lon - ?) / 2)), 2)
		      ))`

	query, args, err := sqlx.In(query,
		types,
		lat, lat, lon, radiusM,
		lat, lat, lon,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build stops query: %w", err)
	}
	query = r.db.Rebind(query)

	var stops []*domain.TransitStop
	if err := r.db.SelectContext(ctx, &stops, query, args...); err != nil {
		r.db.logger.Error("Failed to query stops in radius",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Float64("radius_m", radiusM),
			zap.Error(err))
		return nil, fmt.Errorf("failed to query stops in radius: %w", err)
	}

	return stops, nil
}
