package models

import (
	"errors"
	"time"
)

// ErrInvalidDateRange is returned for degenerate or inverted rental intervals.
var ErrInvalidDateRange = errors.New("start date must be strictly before end date")

// DateRange is a half-open interval [Start, End). Every entry point that
// accepts a rental period validates through this type.
type DateRange struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
}

// Validate rejects inverted and zero-length intervals.
func (r DateRange) Validate() error {
	if !r.Start.Before(r.End) {
		return ErrInvalidDateRange
	}
	return nil
}

// Overlaps reports whether two half-open intervals intersect. Adjacent
// intervals (one ends exactly when the other begins) do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// Contains reports whether t falls inside the interval.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}
