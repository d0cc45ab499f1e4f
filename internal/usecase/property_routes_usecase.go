package usecase

import (
	"context"
	"sync"

	"github.com/flathunt/commute-service/internal/domain"
	"github.com/flathunt/commute-service/internal/domain/repository"
	"github.com/flathunt/commute-service/internal/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PropertyRoutesUseCase resolves commute routes for properties and keeps
// the stored copy in sync.
type PropertyRoutesUseCase struct {
	selector   *POIRouteSelector
	properties repository.PropertyRepository
	logger     *zap.Logger
}

// NewPropertyRoutesUseCase creates a PropertyRoutesUseCase.
func NewPropertyRoutesUseCase(
	selector *POIRouteSelector,
	properties repository.PropertyRepository,
	logger *zap.Logger,
) *PropertyRoutesUseCase {
	return &PropertyRoutesUseCase{
		selector:   selector,
		properties: properties,
		logger:     logger,
	}
}

// ResolveRoutes resolves a route for every POI from the location. POIs are
// independent, so they fan out concurrently; the returned slice keeps the
// POI list order with unresolvable POIs omitted.
func (uc *PropertyRoutesUseCase) ResolveRoutes(
	ctx context.Context,
	location domain.Coordinate,
	pois []domain.POI,
) []domain.RouteResult {
	resolved := make([]*domain.RouteResult, len(pois))

	var wg sync.WaitGroup
	for i, poi := range pois {
		wg.Add(1)
		go func(i int, poi domain.POI) {
			defer wg.Done()

			result, err := uc.selector.ResolveForPOI(ctx, location, poi)
			if err != nil {
				// One POI failing must not take the others down; the
				// validator reports it as a missing route.
				uc.logger.Warn("POI resolution failed",
					zap.String("poi", poi.Description),
					zap.Error(err))
				return
			}
			resolved[i] = result
		}(i, poi)
	}
	wg.Wait()

	routes := make([]domain.RouteResult, 0, len(pois))
	for _, r := range resolved {
		if r != nil {
			routes = append(routes, *r)
		}
	}
	return routes
}

// RefreshPropertyRoutes recomputes the routes of a stored property and
// persists the result. Prior routes are overwritten, never merged.
func (uc *PropertyRoutesUseCase) RefreshPropertyRoutes(
	ctx context.Context,
	id uuid.UUID,
	criteria *domain.ValidationCriteria,
) (*domain.Property, error) {
	property, err := uc.properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property.Location == nil {
		return nil, errors.ErrMissingLocation
	}

	routes := uc.ResolveRoutes(ctx, *property.Location, criteria.PointsOfInterest)
	updated := property.WithRoutes(routes)

	if err := uc.properties.Save(ctx, &updated); err != nil {
		return nil, err
	}

	uc.logger.Info("Property routes refreshed",
		zap.String("property_id", id.String()),
		zap.Int("routes", len(routes)))

	return &updated, nil
}

// RefreshAllRoutes recomputes routes for every stored property. A failing
// property is recorded and skipped so one bad listing cannot abort the
// batch. It returns how many properties were refreshed.
func (uc *PropertyRoutesUseCase) RefreshAllRoutes(
	ctx context.Context,
	criteria *domain.ValidationCriteria,
) (int, error) {
	properties, err := uc.properties.List(ctx)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, property := range properties {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}
		if property.Location == nil {
			continue
		}

		routes := uc.ResolveRoutes(ctx, *property.Location, criteria.PointsOfInterest)
		updated := property.WithRoutes(routes)
		if err := uc.properties.Save(ctx, &updated); err != nil {
			uc.logger.Error("Failed to persist refreshed routes",
				zap.String("property_id", property.ID.String()),
				zap.Error(err))
			continue
		}
		refreshed++
	}

	uc.logger.Info("Route refresh batch finished",
		zap.Int("total", len(properties)),
		zap.Int("refreshed", refreshed))

	return refreshed, nil
}
