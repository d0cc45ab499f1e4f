package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/flathunt/commute-service/internal/domain"
	"github.com/flathunt/commute-service/internal/domain/repository"
	"github.com/flathunt/commute-service/internal/pkg/utils"
	"go.uber.org/zap"
)

// NearestStationResolver finds candidate stations around a point and
// resolves a route to each, delegating the per-station work to the
// RouteResolver.
type NearestStationResolver struct {
	stops     repository.StopRepository
	routes    *RouteResolver
	logger    *zap.Logger
	speedKmh  float64
	stopTypes []string
}

// NewNearestStationResolver creates a NearestStationResolver. speedKmh is
// the assumed distance coverable per hour when sizing the search radius
// from the walking budget; it is a rough tunable, not a law.
func NewNearestStationResolver(
	stops repository.StopRepository,
	routes *RouteResolver,
	logger *zap.Logger,
	speedKmh float64,
	stopTypes []string,
) *NearestStationResolver {
	if len(stopTypes) == 0 {
		stopTypes = domain.RailStopTypes()
	}
	return &NearestStationResolver{
		stops:     stops,
		routes:    routes,
		logger:    logger,
		speedKmh:  speedKmh,
		stopTypes: stopTypes,
	}
}

// SearchRadiusM extrapolates the search radius in meters linearly from
// the limit's time budget.
func (r *NearestStationResolver) SearchRadiusM(limit domain.TravelLimit) float64 {
	return math.Ceil(r.speedKmh * 1000 * float64(limit.MaxMinutes) / 60)
}

// Resolve returns a route to every station within the search radius that
// the provider could route to. A station that fails to resolve is skipped;
// the caller selects the fastest of the survivors.
func (r *NearestStationResolver) Resolve(
	ctx context.Context,
	from domain.Coordinate,
	limit domain.TravelLimit,
) ([]domain.RouteResult, error) {
	radiusM := r.SearchRadiusM(limit)

	stops, err := r.stops.GetStopsInRadius(ctx, from.Lat, from.Lon, radiusM, r.stopTypes)
	if err != nil {
		r.logger.Error("Stop directory query failed",
			zap.Float64("radius_m", radiusM),
			zap.Error(err))
		return nil, err
	}

	// Nearest first so the most likely winners are resolved before any
	// provider hiccups further out.
	sort.SliceStable(stops, func(i, j int) bool {
		di := utils.HaversineDistance(from.Lat, from.Lon, stops[i].Lat, stops[i].Lon)
		dj := utils.HaversineDistance(from.Lat, from.Lon, stops[j].Lat, stops[j].Lon)
		return di < dj
	})

	results := make([]domain.RouteResult, 0, len(stops))
	for _, stop := range stops {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := r.routes.Resolve(ctx, from, stop.Coordinate(), []domain.TravelLimit{limit})
		if err != nil {
			return nil, err
		}
		if result == nil {
			r.logger.Debug("Station did not resolve, skipping",
				zap.String("station", stop.Name))
			continue
		}

		result.DestinationLabel = stop.Name
		results = append(results, *result)
	}

	r.logger.Debug("Nearest-station search finished",
		zap.Int("stations", len(stops)),
		zap.Int("resolved", len(results)),
		zap.Float64("radius_m", radiusM))

	return results, nil
}
