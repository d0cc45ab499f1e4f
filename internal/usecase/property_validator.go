package usecase

import (
	"strings"

	"github.com/flathunt/commute-service/internal/domain"
	"go.uber.org/zap"
)

// Violation reasons. Strings are part of the output contract: they end up
// in persisted results and user-facing rejection messages.
const (
	ReasonTooFar          = "too far"
	ReasonMissingRoute    = "missing route to: "
	ReasonTooExpensive    = "too exp"
	ReasonFurnishing      = "furnishing mismatch"
	ReasonLivingRoom      = "living room sharing mismatch"
	ReasonBedrooms        = "bedroom count out of bounds"
	ReasonFlatmates       = "too many flatmates"
	ReasonShortTerm       = "short term let"
	ReasonMaxTermTooShort = "max term too short"
	ReasonAvailability    = "availability outside window"
	ReasonBedsit          = "bedsit"
	ReasonNotBedsit       = "not a bedsit"
	ReasonAirConditioning = "air conditioning mismatch"
	ReasonHeating         = "heating mismatch"
	ReasonEnergyCert      = "energy certification not accepted"
	bedsitKeyword         = "bedsit"
)

// PropertyValidator decides whether a property is acceptable and why not.
// Rules are deliberately lenient: a rule only fires when the property
// actually states the attribute it checks. Missing data is unknown, not
// failing. Validation never errors and keeps no state, so repeated calls
// on the same inputs yield identical reason lists.
type PropertyValidator struct {
	logger *zap.Logger
}

// NewPropertyValidator creates a PropertyValidator.
func NewPropertyValidator(logger *zap.Logger) *PropertyValidator {
	return &PropertyValidator{logger: logger}
}

// IsValid reports whether the property passes every rule.
func (v *PropertyValidator) IsValid(property *domain.Property, criteria *domain.ValidationCriteria) bool {
	return len(v.Validate(property, criteria)) == 0
}

// Validate runs every rule and returns the accumulated violation reasons.
// The evaluation order is fixed so output is reproducible. A non-empty
// result is logged for the user's benefit; that side effect is not part
// of the contract.
func (v *PropertyValidator) Validate(property *domain.Property, criteria *domain.ValidationCriteria) []string {
	reasons := []string{}

	reasons = appendRouteReasons(reasons, property, criteria)
	reasons = appendPriceReason(reasons, property, criteria)
	reasons = appendMismatch(reasons, criteria.Furnished, property.Furnished, ReasonFurnishing)
	reasons = appendMismatch(reasons, criteria.LivingRoomShared, property.LivingRoomShared, ReasonLivingRoom)
	reasons = appendBedroomReason(reasons, property, criteria)
	reasons = appendFlatmateReason(reasons, property, criteria)
	reasons = appendTermReasons(reasons, property, criteria)
	reasons = appendAvailabilityReason(reasons, property, criteria)
	reasons = appendBedsitReason(reasons, property, criteria)
	reasons = appendMismatch(reasons, criteria.AirConditioning, property.AirConditioning, ReasonAirConditioning)
	reasons = appendMismatch(reasons, criteria.Heating, property.Heating, ReasonHeating)
	reasons = appendEnergyCertReason(reasons, property, criteria)

	if len(reasons) > 0 {
		v.logger.Info("Property rejected",
			zap.String("title", property.Title),
			zap.Strings("reasons", reasons))
	}

	return reasons
}

// appendRouteReasons checks route adequacy. "too far" is recorded once per
// property even when several routes blow their budgets; missing POIs are
// listed together in a single reason.
func appendRouteReasons(reasons []string, property *domain.Property, criteria *domain.ValidationCriteria) []string {
	if property.Routes == nil {
		return reasons
	}

	for _, route := range property.Routes {
		if !route.WithinLimit() {
			reasons = append(reasons, ReasonTooFar)
			break
		}
	}

	var missing []string
	for _, poi := range criteria.PointsOfInterest {
		found := false
		for _, route := range property.Routes {
			if route.Description == poi.Description {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, poi.Description)
		}
	}
	if len(missing) > 0 {
		reasons = append(reasons, ReasonMissingRoute+strings.Join(missing, ", "))
	}

	return reasons
}

// appendPriceReason rejects only when every listed price is over budget:
// listings often carry several room prices and one affordable room is
// enough.
func appendPriceReason(reasons []string, property *domain.Property, criteria *domain.ValidationCriteria) []string {
	if len(property.Prices) == 0 || criteria.MaxPrice <= 0 {
		return reasons
	}
	for _, price := range property.Prices {
		if price <= criteria.MaxPrice {
			return reasons
		}
	}
	return append(reasons, ReasonTooExpensive)
}

// appendMismatch fires only when both the preference and the attribute are
// stated and disagree.
func appendMismatch(reasons []string, want, have *bool, reason string) []string {
	if want == nil || have == nil || *want == *have {
		return reasons
	}
	return append(reasons, reason)
}

func appendBedroomReason(reasons []string, property *domain.Property, criteria *domain.ValidationCriteria) []string {
	if property.BedroomCount == nil {
		return reasons
	}
	count := *property.BedroomCount
	if criteria.MinBedrooms != nil && count < *criteria.MinBedrooms {
		return append(reasons, ReasonBedrooms)
	}
	if criteria.MaxBedrooms != nil && count > *criteria.MaxBedrooms {
		return append(reasons, ReasonBedrooms)
	}
	return reasons
}

func appendFlatmateReason(reasons []string, property *domain.Property, criteria *domain.ValidationCriteria) []string {
	if property.FlatmateCount == nil || criteria.MaxFlatmates == nil {
		return reasons
	}
	if *property.FlatmateCount > *criteria.MaxFlatmates {
		return append(reasons, ReasonFlatmates)
	}
	return reasons
}

func appendTermReasons(reasons []string, property *domain.Property, criteria *domain.ValidationCriteria) []string {
	if property.MinTerm != nil && *property.MinTerm == domain.MinTermShort {
		reasons = append(reasons, ReasonShortTerm)
	}
	if property.MaxTerm != nil && criteria.MinTermMonths > 0 {
		months, unlimited, ok := domain.ParseMaxTerm(*property.MaxTerm)
		if ok && !unlimited && months < criteria.MinTermMonths {
			reasons = append(reasons, ReasonMaxTermTooShort)
		}
	}
	return reasons
}

func appendAvailabilityReason(reasons []string, property *domain.Property, criteria *domain.ValidationCriteria) []string {
	if property.AvailableFrom == nil {
		return reasons
	}
	available := *property.AvailableFrom
	if criteria.CanMoveEarliest != nil && available.Before(*criteria.CanMoveEarliest) {
		return append(reasons, ReasonAvailability)
	}
	if criteria.CanMoveLatest != nil && available.After(*criteria.CanMoveLatest) {
		return append(reasons, ReasonAvailability)
	}
	return reasons
}

// appendBedsitReason matches the title against the bedsit preference:
// true means the title must not mention a bedsit, false means it must.
func appendBedsitReason(reasons []string, property *domain.Property, criteria *domain.ValidationCriteria) []string {
	if criteria.NoBedsit == nil || property.Title == "" {
		return reasons
	}
	isBedsit := strings.Contains(strings.ToLower(property.Title), bedsitKeyword)
	if *criteria.NoBedsit && isBedsit {
		return append(reasons, ReasonBedsit)
	}
	if !*criteria.NoBedsit && !isBedsit {
		return append(reasons, ReasonNotBedsit)
	}
	return reasons
}

func appendEnergyCertReason(reasons []string, property *domain.Property, criteria *domain.ValidationCriteria) []string {
	if property.EnergyCert == nil || len(criteria.EnergyCerts) == 0 {
		return reasons
	}
	for _, allowed := range criteria.EnergyCerts {
		if strings.EqualFold(allowed, *property.EnergyCert) {
			return reasons
		}
	}
	return append(reasons, ReasonEnergyCert)
}
