package usecase

import (
	"context"
	"time"

	"github.com/flathunt/commute-service/internal/domain"
	"github.com/flathunt/commute-service/internal/domain/repository"
	"go.uber.org/zap"
)

// maxTransitChanges caps how many vehicle changes a commute itinerary may
// have before it is discarded as unreasonable.
const maxTransitChanges = 2

// RouteResolver resolves the best feasible route between two points under
// one or more candidate travel limits.
type RouteResolver struct {
	directions repository.DirectionsRepository
	logger     *zap.Logger
	now        func() time.Time
}

// NewRouteResolver creates a RouteResolver.
func NewRouteResolver(directions repository.DirectionsRepository, logger *zap.Logger) *RouteResolver {
	return &RouteResolver{
		directions: directions,
		logger:     logger,
		now:        time.Now,
	}
}

// Resolve picks the best route from `from` to `to` across the candidate
// limits. Each limit is queried independently since limits may name
// different modes. Among the per-limit winners the fastest one that
// satisfies its own budget is preferred; when none does, the overall
// fastest is returned so callers can still report the closest miss.
// The result is nil only when no limit produced any itinerary.
func (r *RouteResolver) Resolve(
	ctx context.Context,
	from, to domain.Coordinate,
	limits []domain.TravelLimit,
) (*domain.RouteResult, error) {
	departure := departureNoonNextDay(r.now())

	var candidates []domain.RouteResult
	for _, limit := range limits {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := r.resolveForLimit(ctx, from, to, limit, departure)
		if err != nil {
			// Provider failures degrade to "route unknown" for this
			// limit; remaining limits are still tried.
			r.logger.Warn("Route resolution failed for limit",
				zap.String("mode", string(limit.Mode)),
				zap.Int("max_minutes", limit.MaxMinutes),
				zap.Error(err))
			continue
		}
		if result != nil {
			candidates = append(candidates, *result)
		}
	}

	return pickBestCandidate(candidates), nil
}

// resolveForLimit resolves the fastest reasonable itinerary for one limit,
// applying the cycling substitution to transit results.
func (r *RouteResolver) resolveForLimit(
	ctx context.Context,
	from, to domain.Coordinate,
	limit domain.TravelLimit,
	departure time.Time,
) (*domain.RouteResult, error) {
	itineraries, err := r.directions.GetItineraries(ctx, from, to, limit.Mode, departure, true)
	if err != nil {
		return nil, err
	}

	best := fastestReasonable(itineraries)
	if best == nil {
		return nil, nil
	}

	if limit.Mode == domain.ModeTransit {
		if substituted := r.trySubstitution(ctx, *best, limit, to, departure); substituted != nil {
			return substituted, nil
		}
	}

	result := buildResult(*best, limit, to)
	return &result, nil
}

// fastestReasonable discards itineraries with too many vehicle changes and
// returns the fastest survivor.
func fastestReasonable(itineraries []domain.Itinerary) *domain.Itinerary {
	var best *domain.Itinerary
	for i := range itineraries {
		it := itineraries[i]
		if it.TransitChanges() > maxTransitChanges {
			continue
		}
		if best == nil || it.DurationSec < best.DurationSec {
			best = &itineraries[i]
		}
	}
	return best
}

// pickBestCandidate prefers the fastest result satisfying its own limit,
// falling back to the overall fastest when none does.
func pickBestCandidate(candidates []domain.RouteResult) *domain.RouteResult {
	var within, overall *domain.RouteResult
	for i := range candidates {
		c := &candidates[i]
		if overall == nil || c.TimeMinutes < overall.TimeMinutes {
			overall = c
		}
		if c.WithinLimit() && (within == nil || c.TimeMinutes < within.TimeMinutes) {
			within = c
		}
	}
	if within != nil {
		return within
	}
	return overall
}

// buildResult converts an itinerary into a RouteResult for a limit.
func buildResult(it domain.Itinerary, limit domain.TravelLimit, to domain.Coordinate) domain.RouteResult {
	return domain.RouteResult{
		Mode:                  limit.Mode,
		TimeMinutes:           it.DurationSec / 60,
		DistanceKm:            float64(it.DistanceMeters) / 1000.0,
		TransitCount:          it.TransitStepCount(),
		Limit:                 limit,
		DestinationCoordinate: to,
	}
}

// departureNoonNextDay fixes the departure at noon the following day so
// transit schedules are representative rather than whatever runs at the
// moment of the query.
func departureNoonNextDay(now time.Time) time.Time {
	next := now.AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 12, 0, 0, 0, next.Location())
}
