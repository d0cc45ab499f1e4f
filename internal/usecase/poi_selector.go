package usecase

import (
	"context"
	"fmt"

	"github.com/flathunt/commute-service/internal/domain"
	"go.uber.org/zap"
)

// POIRouteSelector dispatches a point of interest to the resolver matching
// its variant and reduces the answers to a single best route.
type POIRouteSelector struct {
	routes   *RouteResolver
	stations *NearestStationResolver
	logger   *zap.Logger
}

// NewPOIRouteSelector creates a POIRouteSelector.
func NewPOIRouteSelector(
	routes *RouteResolver,
	stations *NearestStationResolver,
	logger *zap.Logger,
) *POIRouteSelector {
	return &POIRouteSelector{
		routes:   routes,
		stations: stations,
		logger:   logger,
	}
}

// ResolveForPOI resolves the best route from a location to one POI. It
// returns nil when the provider produced no data for the POI at all.
func (s *POIRouteSelector) ResolveForPOI(
	ctx context.Context,
	location domain.Coordinate,
	poi domain.POI,
) (*domain.RouteResult, error) {
	switch poi.Kind {
	case domain.POIKindDestination:
		result, err := s.routes.Resolve(ctx, location, *poi.Coordinate, poi.Limits)
		if err != nil || result == nil {
			return nil, err
		}
		result.Description = poi.Description
		return result, nil

	case domain.POIKindNearestStation:
		results, err := s.stations.Resolve(ctx, location, poi.WalkingLimit())
		if err != nil {
			return nil, err
		}
		// The nearest station is reported even when it is over budget:
		// there is no fixed destination to fall back to.
		best := minByTime(results)
		if best == nil {
			return nil, nil
		}
		best.Description = poi.Description
		return best, nil

	default:
		return nil, fmt.Errorf("unknown poi kind: %q", poi.Kind)
	}
}

func minByTime(results []domain.RouteResult) *domain.RouteResult {
	var best *domain.RouteResult
	for i := range results {
		if best == nil || results[i].TimeMinutes < best.TimeMinutes {
			best = &results[i]
		}
	}
	if best == nil {
		return nil
	}
	copied := *best
	return &copied
}
