package dto

import "github.com/flathunt/commute-service/internal/domain"

// RoutesResponse carries the resolved routes for a routes request.
type RoutesResponse struct {
	Routes []domain.RouteResult `json:"routes"`
}

// ValidateResponse carries the validation verdict.
type ValidateResponse struct {
	Valid   bool     `json:"valid"`
	Reasons []string `json:"reasons"`
}

// PropertyResponse carries a stored property, optionally with its
// validation verdict attached.
type PropertyResponse struct {
	Property *domain.Property `json:"property"`
	Valid    *bool            `json:"valid,omitempty"`
	Reasons  []string         `json:"reasons,omitempty"`
	Summary  string           `json:"summary,omitempty"`
}

// PropertyListResponse carries all stored properties.
type PropertyListResponse struct {
	Properties []*domain.Property `json:"properties"`
	Total      int                `json:"total"`
}
