package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/flathunt/commute-service/internal/domain"
	"go.uber.org/zap"
)

// Transit itineraries often look like: short walk or bus hop to a station,
// a core rail leg, and another short hop from the destination station. A
// cyclist can frequently beat both edge hops. The substitution folds the
// edges, re-prices them as dedicated cycling routes, and replaces the
// transit result when the combination is strictly faster.

// foldedSegment is a run of consecutive replaceable steps collapsed into a
// synthetic cycling segment, or a single untouched non-replaceable step.
type foldedSegment struct {
	Mode           domain.TravelMode
	DurationSec    int
	DistanceMeters int
	Start          domain.Coordinate
	End            domain.Coordinate
	Transit        *domain.TransitDetails
}

// foldReplaceableSteps collapses consecutive walking and bus steps into
// cycling-tagged segments. Any other step interrupts the fold and is kept
// as its own segment.
func foldReplaceableSteps(steps []domain.Step) []foldedSegment {
	var segments []foldedSegment
	for _, step := range steps {
		replaceable := step.Mode == domain.ModeWalking || step.IsBusRide()
		if !replaceable {
			segments = append(segments, foldedSegment{
				Mode:           step.Mode,
				DurationSec:    step.DurationSec,
				DistanceMeters: step.DistanceMeters,
				Start:          step.Start,
				End:            step.End,
				Transit:        step.Transit,
			})
			continue
		}

		if n := len(segments); n > 0 && segments[n-1].Mode == domain.ModeCycling {
			segments[n-1].DurationSec += step.DurationSec
			segments[n-1].DistanceMeters += step.DistanceMeters
			segments[n-1].End = step.End
			continue
		}

		segments = append(segments, foldedSegment{
			Mode:           domain.ModeCycling,
			DurationSec:    step.DurationSec,
			DistanceMeters: step.DistanceMeters,
			Start:          step.Start,
			End:            step.End,
		})
	}
	return segments
}

// trySubstitution attempts the cycling substitution on a chosen transit
// itinerary. It returns nil when the itinerary does not fold into the
// exact [cycling, core, cycling] shape or when the substitution is not an
// improvement, leaving the original result in place.
func (r *RouteResolver) trySubstitution(
	ctx context.Context,
	it domain.Itinerary,
	limit domain.TravelLimit,
	to domain.Coordinate,
	departure time.Time,
) *domain.RouteResult {
	segments := foldReplaceableSteps(it.Steps)
	if len(segments) != 3 {
		return nil
	}
	if segments[0].Mode != domain.ModeCycling ||
		segments[1].Mode == domain.ModeCycling ||
		segments[2].Mode != domain.ModeCycling {
		return nil
	}

	core := segments[1]
	if core.Transit == nil {
		return nil
	}

	edge1Dur, edge1Dist := r.cyclingEdge(ctx, segments[0], departure)
	edge2Dur, edge2Dist := r.cyclingEdge(ctx, segments[2], departure)

	replacedTime := edge1Dur + core.DurationSec + edge2Dur
	if replacedTime >= it.DurationSec {
		return nil
	}

	replacement := fmt.Sprintf("%s – %s (Line %s)",
		core.Transit.DepartureStop,
		core.Transit.ArrivalStop,
		core.Transit.LineShortName)

	r.logger.Debug("Cycling substitution applied",
		zap.Int("original_sec", it.DurationSec),
		zap.Int("replaced_sec", replacedTime),
		zap.String("core_leg", replacement))

	return &domain.RouteResult{
		Mode:                   domain.ModeCycling,
		TimeMinutes:            replacedTime / 60,
		DistanceKm:             float64(edge1Dist+core.DistanceMeters+edge2Dist) / 1000.0,
		TransitCount:           1,
		ReplacementTransitData: &replacement,
		Limit:                  limit,
		DestinationCoordinate:  to,
	}
}

// cyclingEdge prices a folded edge as a dedicated cycling route. When the
// provider has no cycling route for the edge, the folded walking/bus
// duration and distance stand in: cycling a short hop is assumed
// comparable to walking it.
func (r *RouteResolver) cyclingEdge(
	ctx context.Context,
	segment foldedSegment,
	departure time.Time,
) (durationSec, distanceMeters int) {
	itineraries, err := r.directions.GetItineraries(
		ctx, segment.Start, segment.End, domain.ModeCycling, departure, false)
	if err != nil {
		r.logger.Warn("Cycling edge query failed, keeping folded estimate", zap.Error(err))
		return segment.DurationSec, segment.DistanceMeters
	}

	best := fastestReasonable(itineraries)
	if best == nil {
		return segment.DurationSec, segment.DistanceMeters
	}
	return best.DurationSec, best.DistanceMeters
}
