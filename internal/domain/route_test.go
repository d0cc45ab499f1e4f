package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flathunt/commute-service/internal/domain"
)

func transitStep(vehicle string) domain.Step {
	return domain.Step{
		Mode:    domain.ModeTransit,
		Transit: &domain.TransitDetails{Vehicle: vehicle},
	}
}

func TestItinerary_TransitChanges(t *testing.T) {
	t.Run("no transit steps means no changes", func(t *testing.T) {
		it := domain.Itinerary{Steps: []domain.Step{{Mode: domain.ModeWalking}}}
		assert.Equal(t, 0, it.TransitChanges())
	})

	t.Run("one vehicle means no changes", func(t *testing.T) {
		it := domain.Itinerary{Steps: []domain.Step{
			{Mode: domain.ModeWalking},
			transitStep("SUBWAY"),
			{Mode: domain.ModeWalking},
		}}
		assert.Equal(t, 1, it.TransitStepCount())
		assert.Equal(t, 0, it.TransitChanges())
	})

	t.Run("each extra vehicle is one change", func(t *testing.T) {
		it := domain.Itinerary{Steps: []domain.Step{
			transitStep("SUBWAY"),
			transitStep("BUS"),
			transitStep("HEAVY_RAIL"),
		}}
		assert.Equal(t, 2, it.TransitChanges())
	})
}

func TestStep_IsBusRide(t *testing.T) {
	assert.True(t, transitStep(domain.VehicleBus).IsBusRide())
	assert.False(t, transitStep("SUBWAY").IsBusRide())
	assert.False(t, domain.Step{Mode: domain.ModeWalking}.IsBusRide())
}

func TestRouteResult_WithinLimit(t *testing.T) {
	limit := domain.TravelLimit{Mode: domain.ModeTransit, MaxMinutes: 30}

	assert.True(t, domain.RouteResult{TimeMinutes: 30, Limit: limit}.WithinLimit())
	assert.True(t, domain.RouteResult{TimeMinutes: 12, Limit: limit}.WithinLimit())
	assert.False(t, domain.RouteResult{TimeMinutes: 31, Limit: limit}.WithinLimit())
}
