package domain

import "time"

// MinTermShort is the listing value for short-term lets, always rejected
// when present.
const MinTermShort = "Short term"

// ValidationCriteria is the user's acceptance policy. It is configuration:
// loaded once per run and immutable afterwards. Pointer fields mean "no
// preference" when nil.
type ValidationCriteria struct {
	PointsOfInterest []POI      `json:"points_of_interest"`
	MaxPrice         int        `json:"max_price,omitempty"`
	MinBedrooms      *int       `json:"min_bedrooms,omitempty"`
	MaxBedrooms      *int       `json:"max_bedrooms,omitempty"`
	MaxFlatmates     *int       `json:"max_flatmates,omitempty"`
	Furnished        *bool      `json:"furnished,omitempty"`
	LivingRoomShared *bool      `json:"living_room_shared,omitempty"`
	CanMoveEarliest  *time.Time `json:"can_move_earliest,omitempty"`
	CanMoveLatest    *time.Time `json:"can_move_latest,omitempty"`
	MinTermMonths    int        `json:"min_term_months,omitempty"`
	NoBedsit         *bool      `json:"no_bedsit,omitempty"`
	EnergyCerts      []string   `json:"energy_certs,omitempty"`
	Heating          *bool      `json:"heating,omitempty"`
	AirConditioning  *bool      `json:"air_conditioning,omitempty"`
}
