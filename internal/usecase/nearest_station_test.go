package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/flathunt/commute-service/internal/domain"
	"github.com/flathunt/commute-service/internal/usecase"
)

func TestNearestStationResolver_SearchRadiusM(t *testing.T) {
	logger := zap.NewNop()
	resolver := usecase.NewNearestStationResolver(&MockStopRepository{}, nil, logger, 5, nil)

	t.Run("radius extrapolates linearly and rounds up", func(t *testing.T) {
		// 5 km/h for 10 minutes is 833.33m, rounded up.
		radius := resolver.SearchRadiusM(domain.TravelLimit{Mode: domain.ModeWalking, MaxMinutes: 10})
		assert.Equal(t, 834.0, radius)
	})

	t.Run("one hour budget covers the full speed distance", func(t *testing.T) {
		radius := resolver.SearchRadiusM(domain.TravelLimit{Mode: domain.ModeWalking, MaxMinutes: 60})
		assert.Equal(t, 5000.0, radius)
	})
}

func TestNearestStationResolver_Resolve(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	limit := domain.TravelLimit{Mode: domain.ModeWalking, MaxMinutes: 10}

	from := domain.Coordinate{Lat: 41.3800, Lon: 2.1700}
	near := &domain.TransitStop{ID: 1, Name: "Urquinaona", Type: domain.StopTypeMetro, Lat: 41.3810, Lon: 2.1710}
	mid := &domain.TransitStop{ID: 2, Name: "Catalunya", Type: domain.StopTypeMetro, Lat: 41.3830, Lon: 2.1720}
	far := &domain.TransitStop{ID: 3, Name: "Arc de Triomf", Type: domain.StopTypeTrain, Lat: 41.3900, Lon: 2.1800}

	walkingItineraries := func(durationSec int) []domain.Itinerary {
		return []domain.Itinerary{{DurationSec: durationSec, DistanceMeters: durationSec}}
	}

	t.Run("resolves a route per stop, nearest first", func(t *testing.T) {
		mockStops := &MockStopRepository{}
		mockDirections := &MockDirectionsRepository{}
		routeResolver := usecase.NewRouteResolver(mockDirections, logger)
		resolver := usecase.NewNearestStationResolver(mockStops, routeResolver, logger, 5, nil)

		// Directory returns stops out of distance order.
		mockStops.On("GetStopsInRadius", mock.Anything, from.Lat, from.Lon, 834.0, domain.RailStopTypes()).
			Return([]*domain.TransitStop{far, near, mid}, nil)

		mockDirections.On("GetItineraries", mock.Anything, from, near.Coordinate(), domain.ModeWalking, mock.Anything, true).
			Return(walkingItineraries(720), nil)
		mockDirections.On("GetItineraries", mock.Anything, from, mid.Coordinate(), domain.ModeWalking, mock.Anything, true).
			Return(walkingItineraries(420), nil)
		mockDirections.On("GetItineraries", mock.Anything, from, far.Coordinate(), domain.ModeWalking, mock.Anything, true).
			Return(walkingItineraries(1200), nil)

		results, err := resolver.Resolve(ctx, from, limit)

		assert.NoError(t, err)
		assert.Len(t, results, 3)
		assert.Equal(t, "Urquinaona", results[0].DestinationLabel)
		assert.Equal(t, "Catalunya", results[1].DestinationLabel)
		assert.Equal(t, "Arc de Triomf", results[2].DestinationLabel)
		assert.Equal(t, 12, results[0].TimeMinutes)
		assert.Equal(t, 7, results[1].TimeMinutes)
		assert.Equal(t, 20, results[2].TimeMinutes)

		mockStops.AssertExpectations(t)
	})

	t.Run("stop without a resolvable route is skipped", func(t *testing.T) {
		mockStops := &MockStopRepository{}
		mockDirections := &MockDirectionsRepository{}
		routeResolver := usecase.NewRouteResolver(mockDirections, logger)
		resolver := usecase.NewNearestStationResolver(mockStops, routeResolver, logger, 5, nil)

		mockStops.On("GetStopsInRadius", mock.Anything, from.Lat, from.Lon, 834.0, domain.RailStopTypes()).
			Return([]*domain.TransitStop{near, mid}, nil)

		mockDirections.On("GetItineraries", mock.Anything, from, near.Coordinate(), domain.ModeWalking, mock.Anything, true).
			Return([]domain.Itinerary{}, nil)
		mockDirections.On("GetItineraries", mock.Anything, from, mid.Coordinate(), domain.ModeWalking, mock.Anything, true).
			Return(walkingItineraries(420), nil)

		results, err := resolver.Resolve(ctx, from, limit)

		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, "Catalunya", results[0].DestinationLabel)
	})

	t.Run("directory failure surfaces as an error", func(t *testing.T) {
		mockStops := &MockStopRepository{}
		mockDirections := &MockDirectionsRepository{}
		routeResolver := usecase.NewRouteResolver(mockDirections, logger)
		resolver := usecase.NewNearestStationResolver(mockStops, routeResolver, logger, 5, nil)

		mockStops.On("GetStopsInRadius", mock.Anything, from.Lat, from.Lon, 834.0, domain.RailStopTypes()).
			Return(nil, errors.New("connection refused"))

		results, err := resolver.Resolve(ctx, from, limit)

		assert.Error(t, err)
		assert.Nil(t, results)
	})

	t.Run("no stops in radius yields no results", func(t *testing.T) {
		mockStops := &MockStopRepository{}
		mockDirections := &MockDirectionsRepository{}
		routeResolver := usecase.NewRouteResolver(mockDirections, logger)
		resolver := usecase.NewNearestStationResolver(mockStops, routeResolver, logger, 5, nil)

		mockStops.On("GetStopsInRadius", mock.Anything, from.Lat, from.Lon, 834.0, domain.RailStopTypes()).
			Return([]*domain.TransitStop{}, nil)

		results, err := resolver.Resolve(ctx, from, limit)

		assert.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("configured stop types are passed through", func(t *testing.T) {
		mockStops := &MockStopRepository{}
		mockDirections := &MockDirectionsRepository{}
		routeResolver := usecase.NewRouteResolver(mockDirections, logger)
		resolver := usecase.NewNearestStationResolver(mockStops, routeResolver, logger, 5, []string{domain.StopTypeMetro})

		mockStops.On("GetStopsInRadius", mock.Anything, from.Lat, from.Lon, 834.0, []string{domain.StopTypeMetro}).
			Return([]*domain.TransitStop{}, nil)

		_, err := resolver.Resolve(ctx, from, limit)

		assert.NoError(t, err)
		mockStops.AssertExpectations(t)
	})
}
