package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRangeValidate(t *testing.T) {
	assert.NoError(t, DateRange{Start: day(1), End: day(3)}.Validate())

	// inverted
	assert.ErrorIs(t, DateRange{Start: day(3), End: day(1)}.Validate(), ErrInvalidDateRange)
	// zero-length
	assert.ErrorIs(t, DateRange{Start: day(2), End: day(2)}.Validate(), ErrInvalidDateRange)
	// zero values
	assert.ErrorIs(t, DateRange{}.Validate(), ErrInvalidDateRange)
}

func TestDateRangeOverlaps(t *testing.T) {
	base := DateRange{Start: day(5), End: day(10)}

	assert.True(t, base.Overlaps(DateRange{Start: day(7), End: day(8)}), "contained")
	assert.True(t, base.Overlaps(DateRange{Start: day(1), End: day(20)}), "containing")
	assert.True(t, base.Overlaps(DateRange{Start: day(3), End: day(6)}), "left overlap")
	assert.True(t, base.Overlaps(DateRange{Start: day(9), End: day(12)}), "right overlap")
	assert.True(t, base.Overlaps(base), "self")

	assert.False(t, base.Overlaps(DateRange{Start: day(1), End: day(4)}), "before")
	assert.False(t, base.Overlaps(DateRange{Start: day(11), End: day(14)}), "after")

	// Half-open intervals: back-to-back rentals share a boundary instant
	// without conflicting.
	assert.False(t, base.Overlaps(DateRange{Start: day(10), End: day(12)}), "adjacent after")
	assert.False(t, base.Overlaps(DateRange{Start: day(1), End: day(5)}), "adjacent before")
}

func TestDateRangeContains(t *testing.T) {
	rng := DateRange{Start: day(5), End: day(10)}

	assert.True(t, rng.Contains(day(5)), "start is inclusive")
	assert.True(t, rng.Contains(day(7)))
	assert.False(t, rng.Contains(day(10)), "end is exclusive")
	assert.False(t, rng.Contains(day(4)))
}
