package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/flathunt/commute-service/internal/domain"
)

// LoadCriteria reads the user's validation criteria from a JSON file.
// Criteria are loaded once per run and treated as immutable afterwards.
func LoadCriteria(path string) (*domain.ValidationCriteria, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read criteria file: %w", err)
	}

	var criteria domain.ValidationCriteria
	if err := json.Unmarshal(data, &criteria); err != nil {
		return nil, fmt.Errorf("failed to parse criteria file: %w", err)
	}

	for i, poi := range criteria.PointsOfInterest {
		switch poi.Kind {
		case domain.POIKindDestination:
			if poi.Coordinate == nil || len(poi.Limits) == 0 {
				return nil, fmt.Errorf("poi %d: destination needs a coordinate and at least one travel limit", i)
			}
		case domain.POIKindNearestStation:
			if poi.MaxMinutes <= 0 {
				return nil, fmt.Errorf("poi %d: nearest station needs a positive time budget", i)
			}
			if poi.Description == "" {
				criteria.PointsOfInterest[i].Description = domain.NearestStationDescription
			}
		default:
			return nil, fmt.Errorf("poi %d: unknown kind %q", i, poi.Kind)
		}
	}

	return &criteria, nil
}
