package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flathunt/commute-service/internal/domain"
)

func TestParseMaxTerm(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		months    int
		unlimited bool
		ok        bool
	}{
		{"plain months", "6 months", 6, false, true},
		{"single month", "1 month", 1, false, true},
		{"padded", "  12 months ", 12, false, true},
		{"mixed case unit", "3 Months", 3, false, true},
		{"unlimited literal", "None", 0, true, true},
		{"unlimited lower case", "none", 0, true, true},
		{"free text", "ask the landlord", 0, false, false},
		{"empty", "", 0, false, false},
		{"number only", "6", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			months, unlimited, ok := domain.ParseMaxTerm(tt.input)
			assert.Equal(t, tt.months, months)
			assert.Equal(t, tt.unlimited, unlimited)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestProperty_Summary(t *testing.T) {
	t.Run("stated fields are labelled, missing ones skipped", func(t *testing.T) {
		furnished := true
		bedrooms := 2
		available := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

		property := domain.Property{
			Title:         "Bright flat in Gracia",
			URL:           "https://example.com/listing/42",
			Location:      &domain.Coordinate{Lat: 41.40237, Lon: 2.15641},
			Prices:        []int{950, 1100},
			BedroomCount:  &bedrooms,
			Furnished:     &furnished,
			AvailableFrom: &available,
		}

		summary := property.Summary()

		assert.Contains(t, summary, "Title: Bright flat in Gracia\n")
		assert.Contains(t, summary, "URL: https://example.com/listing/42\n")
		assert.Contains(t, summary, "Location: 41.40237, 2.15641\n")
		assert.Contains(t, summary, "Prices: 950, 1100\n")
		assert.Contains(t, summary, "Bedrooms: 2\n")
		assert.Contains(t, summary, "Furnished: yes\n")
		assert.Contains(t, summary, "Available from: 2026-10-01\n")
		// Unstated attributes leave no line behind.
		assert.NotContains(t, summary, "Flatmates")
		assert.NotContains(t, summary, "Heating")
	})

	t.Run("routes are rendered with their destination", func(t *testing.T) {
		replacement := "Catalunya – Sagrera (Line L1)"
		property := domain.Property{
			Title: "Flat",
			Routes: []domain.RouteResult{
				{
					Description: "office",
					Mode:        domain.ModeTransit,
					TimeMinutes: 25,
					DistanceKm:  6.2,
				},
				{
					Description:            "nearest station",
					DestinationLabel:       "Urquinaona",
					Mode:                   domain.ModeCycling,
					TimeMinutes:            8,
					DistanceKm:             1.9,
					ReplacementTransitData: &replacement,
				},
			},
		}

		summary := property.Summary()

		assert.Contains(t, summary, "Route to office: 25 min by transit, 6.2 km\n")
		assert.Contains(t, summary,
			"Route to nearest station (Urquinaona): 8 min by bicycling, 1.9 km instead of Catalunya – Sagrera (Line L1)\n")
	})
}

func TestProperty_With(t *testing.T) {
	t.Run("WithRoutes leaves the original untouched", func(t *testing.T) {
		original := domain.Property{Title: "Flat"}
		updated := original.WithRoutes([]domain.RouteResult{{Description: "office"}})

		assert.Nil(t, original.Routes)
		assert.Len(t, updated.Routes, 1)
	})

	t.Run("WithPersistedIndex leaves the original untouched", func(t *testing.T) {
		original := domain.Property{Title: "Flat"}
		updated := original.WithPersistedIndex(7)

		assert.Nil(t, original.PersistedIndex)
		assert.Equal(t, 7, *updated.PersistedIndex)
	})
}
