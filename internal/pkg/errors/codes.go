package errors

import "net/http"

var (
	ErrPropertyNotFound = New(
		"PROPERTY_NOT_FOUND",
		"Property not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidTravelLimit = New(
		"INVALID_TRAVEL_LIMIT",
		"Travel limit must have a known mode and a positive time budget",
		http.StatusBadRequest,
	)

	ErrInvalidPOI = New(
		"INVALID_POI",
		"Point of interest is malformed",
		http.StatusBadRequest,
	)

	ErrMissingLocation = New(
		"MISSING_LOCATION",
		"Property has no location to resolve routes from",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
