package models

import "time"

// BookingStatus enumerates the booking lifecycle states.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingPaid      BookingStatus = "paid"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the canonical statuses. Older revisions
// of the API used "completed" for the paid terminal state; that vocabulary is
// rejected rather than silently mapped.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingPaid, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s BookingStatus) Terminal() bool {
	return s == BookingPaid || s == BookingCancelled
}

// CanTransitionTo reports whether the state machine permits moving from s to
// next. Any non-terminal state may be cancelled; paid is only reachable from
// confirmed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch next {
	case BookingConfirmed:
		return s == BookingPending
	case BookingPaid:
		return s == BookingConfirmed
	case BookingCancelled:
		return !s.Terminal()
	}
	return false
}

// Booking represents a car rental reservation.
type Booking struct {
	ID          string        `bson:"id" json:"id"`
	UserID      string        `bson:"user_id" json:"userId"`
	CarID       string        `bson:"car_id" json:"carId"`
	StartDate   time.Time     `bson:"start_date" json:"startDate"`
	EndDate     time.Time     `bson:"end_date" json:"endDate"`
	TotalAmount float64       `bson:"total_amount" json:"totalAmount"`
	IsPaid      bool          `bson:"is_paid" json:"isPaid"`
	PaymentID   string        `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	Status      BookingStatus `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updatedAt"`
}

// Range returns the booking's half-open rental interval.
func (b *Booking) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

// BookingInput is the request payload for creating a booking.
type BookingInput struct {
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	TotalAmount float64   `json:"totalAmount" binding:"required,gt=0"`
}
