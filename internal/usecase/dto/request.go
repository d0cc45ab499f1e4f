package dto

import (
	"github.com/flathunt/commute-service/internal/domain"
	"github.com/flathunt/commute-service/internal/pkg/errors"
	"github.com/flathunt/commute-service/internal/pkg/utils"
)

// CoordinateInput is a lat/lon pair as received over HTTP.
type CoordinateInput struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

// TravelLimitInput is one acceptable mode/time-budget alternative.
type TravelLimitInput struct {
	Mode       string `json:"mode" validate:"required,oneof=transit bicycling walking"`
	MaxMinutes int    `json:"max_minutes" validate:"required,gt=0"`
}

// POIInput is a point of interest in a routes request.
type POIInput struct {
	Kind        string             `json:"kind" validate:"required,oneof=destination nearest_station"`
	Description string             `json:"description"`
	Coordinate  *CoordinateInput   `json:"coordinate,omitempty"`
	Limits      []TravelLimitInput `json:"limits,omitempty"`
	MaxMinutes  int                `json:"max_minutes,omitempty"`
}

// RoutesRequest asks for the best routes from a location to a POI set.
type RoutesRequest struct {
	Location CoordinateInput `json:"location" validate:"required"`
	POIs     []POIInput      `json:"pois" validate:"required,min=1,dive"`
}

// ValidateRequest asks for a validation verdict on a property.
type ValidateRequest struct {
	Property domain.Property           `json:"property" validate:"required"`
	Criteria domain.ValidationCriteria `json:"criteria" validate:"required"`
}

// CreatePropertyRequest stores a new property.
type CreatePropertyRequest struct {
	Property domain.Property `json:"property" validate:"required"`
}

// ToDomain converts the request location and POIs into domain values.
func (r RoutesRequest) ToDomain() (domain.Coordinate, []domain.POI, error) {
	if !utils.ValidateCoordinates(r.Location.Lat, r.Location.Lon) {
		return domain.Coordinate{}, nil, errors.ErrInvalidCoordinates
	}
	location := domain.Coordinate{Lat: r.Location.Lat, Lon: r.Location.Lon}

	pois := make([]domain.POI, 0, len(r.POIs))
	for _, input := range r.POIs {
		poi, err := input.toDomain()
		if err != nil {
			return domain.Coordinate{}, nil, err
		}
		pois = append(pois, poi)
	}
	return location, pois, nil
}

func (p POIInput) toDomain() (domain.POI, error) {
	switch domain.POIKind(p.Kind) {
	case domain.POIKindDestination:
		if p.Coordinate == nil || len(p.Limits) == 0 {
			return domain.POI{}, errors.ErrInvalidPOI
		}
		if !utils.ValidateCoordinates(p.Coordinate.Lat, p.Coordinate.Lon) {
			return domain.POI{}, errors.ErrInvalidCoordinates
		}
		limits := make([]domain.TravelLimit, 0, len(p.Limits))
		for _, l := range p.Limits {
			if l.MaxMinutes <= 0 {
				return domain.POI{}, errors.ErrInvalidTravelLimit
			}
			limits = append(limits, domain.TravelLimit{
				Mode:       domain.TravelMode(l.Mode),
				MaxMinutes: l.MaxMinutes,
			})
		}
		coord := domain.Coordinate{Lat: p.Coordinate.Lat, Lon: p.Coordinate.Lon}
		return domain.NewDestinationPOI(p.Description, coord, limits...), nil

	case domain.POIKindNearestStation:
		if p.MaxMinutes <= 0 {
			return domain.POI{}, errors.ErrInvalidTravelLimit
		}
		poi := domain.NewNearestStationPOI(p.MaxMinutes)
		if p.Description != "" {
			poi.Description = p.Description
		}
		return poi, nil

	default:
		return domain.POI{}, errors.ErrInvalidPOI
	}
}
