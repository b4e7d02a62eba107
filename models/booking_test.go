package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusValid(t *testing.T) {
	assert.True(t, BookingPending.Valid())
	assert.True(t, BookingConfirmed.Valid())
	assert.True(t, BookingPaid.Valid())
	assert.True(t, BookingCancelled.Valid())

	assert.False(t, BookingStatus("completed").Valid())
	assert.False(t, BookingStatus("").Valid())
	assert.False(t, BookingStatus("Pending").Valid())
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, BookingPending.Terminal())
	assert.False(t, BookingConfirmed.Terminal())
	assert.True(t, BookingPaid.Terminal())
	assert.True(t, BookingCancelled.Terminal())
}

func TestBookingStatusTransitions(t *testing.T) {
	// confirmed is only reachable from pending.
	assert.True(t, BookingPending.CanTransitionTo(BookingConfirmed))
	assert.False(t, BookingConfirmed.CanTransitionTo(BookingConfirmed))
	assert.False(t, BookingPaid.CanTransitionTo(BookingConfirmed))
	assert.False(t, BookingCancelled.CanTransitionTo(BookingConfirmed))

	// paid is only reachable from confirmed.
	assert.False(t, BookingPending.CanTransitionTo(BookingPaid))
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingPaid))
	assert.False(t, BookingCancelled.CanTransitionTo(BookingPaid))

	// any non-terminal state may be cancelled.
	assert.True(t, BookingPending.CanTransitionTo(BookingCancelled))
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingCancelled))
	assert.False(t, BookingPaid.CanTransitionTo(BookingCancelled))
	assert.False(t, BookingCancelled.CanTransitionTo(BookingCancelled))

	// no transitions back to pending.
	assert.False(t, BookingConfirmed.CanTransitionTo(BookingPending))
}

func TestBookingRange(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)
	b := Booking{StartDate: start, EndDate: end}

	rng := b.Range()
	assert.Equal(t, start, rng.Start)
	assert.Equal(t, end, rng.End)
}
