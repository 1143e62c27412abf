package errors

import "errors"

var (
	// NotFound is returned when no record exists for the requested key.
	NotFound = errors.New("not found")

	// InsufficientData is returned when a computation has input, but not
	// enough of it to produce a meaningful result, e.g. fewer than two
	// non-empty hour buckets before fitting the profile spline. Callers
	// degrade the affected derived field to nil instead of propagating.
	InsufficientData = errors.New("insufficient data")

	// InvalidPeriod is returned for period identities that are out of
	// range, e.g. week 60 or quarter 5.
	InvalidPeriod = errors.New("invalid period")
)
