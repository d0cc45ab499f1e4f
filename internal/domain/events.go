package domain

import "github.com/google/uuid"

// Stream names (must match the producer side).
const (
	StreamRoutesEnrich = "stream:routes:enrich"
	StreamRoutesDone   = "stream:routes:done"
)

// RouteEnrichEvent asks the worker to resolve routes for a stored property.
type RouteEnrichEvent struct {
	PropertyID uuid.UUID `json:"property_id"`
}

// RouteDoneEvent is the result of a route enrichment run for one property.
// Error is set when the property could not be processed at all; a failed
// property never aborts the batch it arrived in.
type RouteDoneEvent struct {
	PropertyID uuid.UUID     `json:"property_id"`
	Routes     []RouteResult `json:"routes,omitempty"`
	Reasons    []string      `json:"reasons,omitempty"`
	Valid      bool          `json:"valid"`
	Error      string        `json:"error,omitempty"`
}

// StreamMessage is a raw message read from a Redis stream.
type StreamMessage struct {
	ID   string
	Data string
}
