package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/flathunt/commute-service/internal/config"
	"github.com/flathunt/commute-service/internal/domain"
	"github.com/flathunt/commute-service/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	maxRetries uint64
	logger     *zap.Logger
}

// NewDirectionsClient creates a Directions API client. Transport failures
// and 5xx responses are retried with exponential backoff up to the
// configured attempt count before being surfaced.
func NewDirectionsClient(cfg *config.GoogleConfig, logger *zap.Logger) repository.DirectionsRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		maxRetries: uint64(cfg.MaxRetries),
		logger:     logger,
	}
}

// retryableError marks a failure worth another attempt.
type retryableError struct{ err error }

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// GetItineraries requests route options between two points.
func (c *client) GetItineraries(
	ctx context.Context,
	from, to domain.Coordinate,
	mode domain.TravelMode,
	departure time.Time,
	alternatives bool,
) ([]domain.Itinerary, error) {
	query := url.Values{}
	query.Set("origin", fmt.Sprintf("%f,%f", from.Lat, from.Lon))
	query.Set("destination", fmt.Sprintf("%f,%f", to.Lat, to.Lon))
	query.Set("mode", string(mode))
	query.Set("departure_time", strconv.FormatInt(departure.Unix(), 10))
	query.Set("alternatives", strconv.FormatBool(alternatives))
	query.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/maps/api/directions/json?%s", c.baseURL, query.Encode())

	c.logger.Debug("Calling Directions API",
		zap.String("mode", string(mode)),
		zap.Bool("alternatives", alternatives))

	var decoded directionsResponse
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return &retryableError{fmt.Errorf("failed to execute request: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			body, _ := io.ReadAll(resp.Body)
			return &retryableError{fmt.Errorf("directions API error: status %d, body: %s", resp.StatusCode, string(body))}
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("directions API error: status %d, body: %s", resp.StatusCode, string(body)))
		}

		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		c.logger.Error("Directions API request failed", zap.Error(err))
		return nil, err
	}

	switch decoded.Status {
	case statusOK:
		// fall through to mapping
	case statusZeroResults:
		c.logger.Debug("Directions API returned no routes")
		return nil, nil
	default:
		c.logger.Error("Directions API returned non-OK status",
			zap.String("status", decoded.Status),
			zap.String("error_message", decoded.ErrorMessage))
		return nil, fmt.Errorf("directions API returned status: %s", decoded.Status)
	}

	itineraries := make([]domain.Itinerary, 0, len(decoded.Routes))
	for _, route := range decoded.Routes {
		if len(route.Legs) == 0 {
			continue
		}
		// Single-leg assumption: requests never carry waypoints.
		itineraries = append(itineraries, mapLeg(route.Legs[0]))
	}

	c.logger.Debug("Directions API call successful",
		zap.Int("itineraries", len(itineraries)))

	return itineraries, nil
}

func mapLeg(leg apiLeg) domain.Itinerary {
	steps := make([]domain.Step, 0, len(leg.Steps))
	for _, s := range leg.Steps {
		step := domain.Step{
			Mode:           mapTravelMode(s.TravelMode),
			DurationSec:    s.Duration.Value,
			DistanceMeters: s.Distance.Value,
			Start:          domain.Coordinate{Lat: s.StartLocation.Lat, Lon: s.StartLocation.Lng},
			End:            domain.Coordinate{Lat: s.EndLocation.Lat, Lon: s.EndLocation.Lng},
		}
		if s.TransitDetails != nil {
			step.Transit = &domain.TransitDetails{
				DepartureStop: s.TransitDetails.DepartureStop.Name,
				ArrivalStop:   s.TransitDetails.ArrivalStop.Name,
				LineShortName: lineName(s.TransitDetails.Line),
				Vehicle:       s.TransitDetails.Line.Vehicle.Type,
			}
		}
		steps = append(steps, step)
	}

	return domain.Itinerary{
		DurationSec:    leg.Duration.Value,
		DistanceMeters: leg.Distance.Value,
		Steps:          steps,
	}
}

func mapTravelMode(apiMode string) domain.TravelMode {
	switch strings.ToUpper(apiMode) {
	case "TRANSIT":
		return domain.ModeTransit
	case "BICYCLING":
		return domain.ModeCycling
	default:
		return domain.ModeWalking
	}
}

func lineName(line apiLine) string {
	if line.ShortName != "" {
		return line.ShortName
	}
	return line.Name
}
