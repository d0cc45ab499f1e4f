package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/flathunt/commute-service/internal/domain"
	pkgerrors "github.com/flathunt/commute-service/internal/pkg/errors"
	"github.com/flathunt/commute-service/internal/usecase"
)

func newTestRoutesUseCase(
	mockDirections *MockDirectionsRepository,
	mockStops *MockStopRepository,
	mockProperties *MockPropertyRepository,
) *usecase.PropertyRoutesUseCase {
	selector := newTestSelector(mockDirections, mockStops)
	return usecase.NewPropertyRoutesUseCase(selector, mockProperties, zap.NewNop())
}

func TestPropertyRoutesUseCase_ResolveRoutes(t *testing.T) {
	ctx := context.Background()
	location := domain.Coordinate{Lat: 41.3800, Lon: 2.1700}
	office := domain.Coordinate{Lat: 41.4000, Lon: 2.1900}
	gym := domain.Coordinate{Lat: 41.3900, Lon: 2.1600}

	t.Run("results keep the poi order", func(t *testing.T) {
		mockDirections := &MockDirectionsRepository{}
		uc := newTestRoutesUseCase(mockDirections, &MockStopRepository{}, &MockPropertyRepository{})

		mockDirections.On("GetItineraries", mock.Anything, location, office, domain.ModeTransit, mock.Anything, true).
			Return([]domain.Itinerary{{DurationSec: 1500, DistanceMeters: 6000}}, nil)
		mockDirections.On("GetItineraries", mock.Anything, location, gym, domain.ModeCycling, mock.Anything, true).
			Return([]domain.Itinerary{{DurationSec: 600, DistanceMeters: 2500}}, nil)

		pois := []domain.POI{
			domain.NewDestinationPOI("office", office,
				domain.TravelLimit{Mode: domain.ModeTransit, MaxMinutes: 30}),
			domain.NewDestinationPOI("gym", gym,
				domain.TravelLimit{Mode: domain.ModeCycling, MaxMinutes: 15}),
		}

		routes := uc.ResolveRoutes(ctx, location, pois)

		assert.Len(t, routes, 2)
		assert.Equal(t, "office", routes[0].Description)
		assert.Equal(t, "gym", routes[1].Description)
	})

	t.Run("unresolvable poi is omitted, the rest survive", func(t *testing.T) {
		mockDirections := &MockDirectionsRepository{}
		uc := newTestRoutesUseCase(mockDirections, &MockStopRepository{}, &MockPropertyRepository{})

		mockDirections.On("GetItineraries", mock.Anything, location, office, domain.ModeTransit, mock.Anything, true).
			Return([]domain.Itinerary{}, nil)
		mockDirections.On("GetItineraries", mock.Anything, location, gym, domain.ModeCycling, mock.Anything, true).
			Return([]domain.Itinerary{{DurationSec: 600, DistanceMeters: 2500}}, nil)

		pois := []domain.POI{
			domain.NewDestinationPOI("office", office,
				domain.TravelLimit{Mode: domain.ModeTransit, MaxMinutes: 30}),
			domain.NewDestinationPOI("gym", gym,
				domain.TravelLimit{Mode: domain.ModeCycling, MaxMinutes: 15}),
		}

		routes := uc.ResolveRoutes(ctx, location, pois)

		assert.Len(t, routes, 1)
		assert.Equal(t, "gym", routes[0].Description)
	})
}

func TestPropertyRoutesUseCase_RefreshPropertyRoutes(t *testing.T) {
	ctx := context.Background()
	location := domain.Coordinate{Lat: 41.3800, Lon: 2.1700}
	office := domain.Coordinate{Lat: 41.4000, Lon: 2.1900}

	criteria := &domain.ValidationCriteria{
		PointsOfInterest: []domain.POI{
			domain.NewDestinationPOI("office", office,
				domain.TravelLimit{Mode: domain.ModeTransit, MaxMinutes: 30}),
		},
	}

	t.Run("recomputed routes overwrite the stored ones", func(t *testing.T) {
		mockDirections := &MockDirectionsRepository{}
		mockProperties := &MockPropertyRepository{}
		uc := newTestRoutesUseCase(mockDirections, &MockStopRepository{}, mockProperties)

		id := uuid.New()
		stale := domain.RouteResult{Description: "stale", TimeMinutes: 99}
		stored := &domain.Property{ID: id, Title: "Flat", Location: &location, Routes: []domain.RouteResult{stale}}

		mockProperties.On("GetByID", mock.Anything, id).Return(stored, nil)
		mockProperties.On("Save", mock.Anything, mock.AnythingOfType("*domain.Property")).Return(nil)
		mockDirections.On("GetItineraries", mock.Anything, location, office, domain.ModeTransit, mock.Anything, true).
			Return([]domain.Itinerary{{DurationSec: 1500, DistanceMeters: 6000}}, nil)

		updated, err := uc.RefreshPropertyRoutes(ctx, id, criteria)

		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Len(t, updated.Routes, 1)
		assert.Equal(t, "office", updated.Routes[0].Description)

		// The stored copy is untouched; the update is a fresh value.
		assert.Equal(t, "stale", stored.Routes[0].Description)

		mockProperties.AssertExpectations(t)
	})

	t.Run("property without a location is rejected", func(t *testing.T) {
		mockProperties := &MockPropertyRepository{}
		uc := newTestRoutesUseCase(&MockDirectionsRepository{}, &MockStopRepository{}, mockProperties)

		id := uuid.New()
		mockProperties.On("GetByID", mock.Anything, id).Return(&domain.Property{ID: id, Title: "Flat"}, nil)

		updated, err := uc.RefreshPropertyRoutes(ctx, id, criteria)

		assert.ErrorIs(t, err, pkgerrors.ErrMissingLocation)
		assert.Nil(t, updated)
	})

	t.Run("unknown property surfaces the storage error", func(t *testing.T) {
		mockProperties := &MockPropertyRepository{}
		uc := newTestRoutesUseCase(&MockDirectionsRepository{}, &MockStopRepository{}, mockProperties)

		id := uuid.New()
		mockProperties.On("GetByID", mock.Anything, id).Return(nil, pkgerrors.ErrPropertyNotFound)

		updated, err := uc.RefreshPropertyRoutes(ctx, id, criteria)

		assert.ErrorIs(t, err, pkgerrors.ErrPropertyNotFound)
		assert.Nil(t, updated)
	})
}

func TestPropertyRoutesUseCase_RefreshAllRoutes(t *testing.T) {
	ctx := context.Background()
	location := domain.Coordinate{Lat: 41.3800, Lon: 2.1700}
	office := domain.Coordinate{Lat: 41.4000, Lon: 2.1900}

	criteria := &domain.ValidationCriteria{
		PointsOfInterest: []domain.POI{
			domain.NewDestinationPOI("office", office,
				domain.TravelLimit{Mode: domain.ModeTransit, MaxMinutes: 30}),
		},
	}

	t.Run("failing save skips the property, batch continues", func(t *testing.T) {
		mockDirections := &MockDirectionsRepository{}
		mockProperties := &MockPropertyRepository{}
		uc := newTestRoutesUseCase(mockDirections, &MockStopRepository{}, mockProperties)

		broken := &domain.Property{ID: uuid.New(), Title: "Broken", Location: &location}
		healthy := &domain.Property{ID: uuid.New(), Title: "Healthy", Location: &location}
		noLocation := &domain.Property{ID: uuid.New(), Title: "No location"}

		mockProperties.On("List", mock.Anything).
			Return([]*domain.Property{broken, healthy, noLocation}, nil)
		mockDirections.On("GetItineraries", mock.Anything, location, office, domain.ModeTransit, mock.Anything, true).
			Return([]domain.Itinerary{{DurationSec: 1500, DistanceMeters: 6000}}, nil)

		mockProperties.On("Save", mock.Anything, mock.MatchedBy(func(p *domain.Property) bool {
			return p.ID == broken.ID
		})).Return(errors.New("write failed"))
		mockProperties.On("Save", mock.Anything, mock.MatchedBy(func(p *domain.Property) bool {
			return p.ID == healthy.ID
		})).Return(nil)

		refreshed, err := uc.RefreshAllRoutes(ctx, criteria)

		assert.NoError(t, err)
		assert.Equal(t, 1, refreshed)
		mockProperties.AssertExpectations(t)
	})
}
