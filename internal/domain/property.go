package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxTermUnlimited is the listing value meaning "no maximum term".
const MaxTermUnlimited = "None"

// Property is a rental listing enriched by the routing core.
// Optional attributes are pointers: nil means the listing did not state
// the attribute, which the validator treats as unknown rather than failing.
// Routes is derived data recomputed by the route selector; it is never
// merged incrementally, each resolution overwrites the previous list.
type Property struct {
	ID               uuid.UUID     `json:"id"`
	Title            string        `json:"title"`
	URL              string        `json:"url,omitempty"`
	Location         *Coordinate   `json:"location,omitempty"`
	Routes           []RouteResult `json:"routes,omitempty"`
	Prices           []int         `json:"prices,omitempty"`
	BedroomCount     *int          `json:"bedroom_count,omitempty"`
	FlatmateCount    *int          `json:"flatmate_count,omitempty"`
	Furnished        *bool         `json:"furnished,omitempty"`
	LivingRoomShared *bool         `json:"living_room_shared,omitempty"`
	AvailableFrom    *time.Time    `json:"available_from,omitempty"`
	MinTerm          *string       `json:"min_term,omitempty"`
	MaxTerm          *string       `json:"max_term,omitempty"`
	EnergyCert       *string       `json:"energy_cert,omitempty"`
	Heating          *bool         `json:"heating,omitempty"`
	AirConditioning  *bool         `json:"air_conditioning,omitempty"`
	PersistedIndex   *int          `json:"persisted_index,omitempty"`
}

// WithRoutes returns a copy of the property with the routes replaced.
func (p Property) WithRoutes(routes []RouteResult) Property {
	p.Routes = routes
	return p
}

// WithPersistedIndex returns a copy of the property with the storage index set.
func (p Property) WithPersistedIndex(index int) Property {
	p.PersistedIndex = &index
	return p
}

var maxTermPattern = regexp.MustCompile(`(?i)^\s*(\d+)\s*months?\s*$`)

// ParseMaxTerm parses a free-text maximum term. It understands "<n> months"
// and the literal "None" (unlimited). ok is false for anything else.
func ParseMaxTerm(text string) (months int, unlimited bool, ok bool) {
	if strings.EqualFold(strings.TrimSpace(text), MaxTermUnlimited) {
		return 0, true, true
	}
	m := maxTermPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false, false
	}
	months, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false, false
	}
	return months, false, true
}

// Summary renders the property as label/value lines for user-facing output.
// The field list is maintained by hand next to the struct: add a line here
// when adding a displayed field.
func (p Property) Summary() string {
	var b strings.Builder
	write := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%s: %s\n", label, value)
	}

	write("Title", p.Title)
	write("URL", p.URL)
	if p.Location != nil {
		write("Location", fmt.Sprintf("%.5f, %.5f", p.Location.Lat, p.Location.Lon))
	}
	if len(p.Prices) > 0 {
		parts := make([]string, len(p.Prices))
		for i, price := range p.Prices {
			parts[i] = strconv.Itoa(price)
		}
		write("Prices", strings.Join(parts, ", "))
	}
	write("Bedrooms", formatOptionalInt(p.BedroomCount))
	write("Flatmates", formatOptionalInt(p.FlatmateCount))
	write("Furnished", formatOptionalBool(p.Furnished))
	write("Shared living room", formatOptionalBool(p.LivingRoomShared))
	if p.AvailableFrom != nil {
		write("Available from", p.AvailableFrom.Format("2006-01-02"))
	}
	write("Min term", formatOptionalString(p.MinTerm))
	write("Max term", formatOptionalString(p.MaxTerm))
	write("Energy certification", formatOptionalString(p.EnergyCert))
	write("Heating", formatOptionalBool(p.Heating))
	write("Air conditioning", formatOptionalBool(p.AirConditioning))
	for _, r := range p.Routes {
		label := r.Description
		if r.DestinationLabel != "" {
			label = fmt.Sprintf("%s (%s)", r.Description, r.DestinationLabel)
		}
		value := fmt.Sprintf("%d min by %s, %.1f km", r.TimeMinutes, r.Mode, r.DistanceKm)
		if r.ReplacementTransitData != nil {
			value += " instead of " + *r.ReplacementTransitData
		}
		write("Route to "+label, value)
	}
	return b.String()
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatOptionalBool(v *bool) string {
	if v == nil {
		return ""
	}
	if *v {
		return "yes"
	}
	return "no"
}

func formatOptionalString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
