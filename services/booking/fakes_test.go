package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "carrental/database/repository/booking"
	"carrental/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeBookingRepo is an in-memory BookingRepository. It mirrors the Mongo
// implementation's semantics: copies out on read, overlap re-check inside
// CreateWithRefs, and cancel/delete counted as cleanup runs so tests can
// assert the car/user cleanup happened exactly once.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	cleanups int

	// failCancel simulates an aborted transaction for the given booking
	// ids: CancelWithCleanup errors and leaves the document untouched.
	failCancel map[string]bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings:   make(map[string]*models.Booking),
		failCancel: make(map[string]bool),
	}
}

func (r *fakeBookingRepo) put(b models.Booking) {
	cp := b
	r.bookings[b.ID] = &cp
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByCar(carID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CarID == carID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByIDs(ids []string) ([]models.Booking, error) {
	var out []models.Booking
	for _, id := range ids {
		if b, ok := r.bookings[id]; ok {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) CountOverlapping(carID string, rng models.DateRange, excludeID string) (int64, error) {
	var count int64
	for _, b := range r.bookings {
		if b.CarID != carID || b.Status == models.BookingCancelled || b.ID == excludeID {
			continue
		}
		if rng.Overlaps(b.Range()) {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) ActiveCarIDsAt(at time.Time) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, b := range r.bookings {
		if b.Status != models.BookingConfirmed {
			continue
		}
		if !b.StartDate.After(at) && !b.EndDate.Before(at) && !seen[b.CarID] {
			seen[b.CarID] = true
			out = append(out, b.CarID)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindOverdue(now time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.EndDate.Before(now) && b.Status != models.BookingPaid && b.Status != models.BookingCancelled {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) SetStatus(id string, status models.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) MarkPaid(id, paymentID string) error {
	b, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	b.Status = models.BookingPaid
	b.IsPaid = true
	b.PaymentID = paymentID
	return nil
}

func (r *fakeBookingRepo) SetDates(id string, rng models.DateRange, carID string) error {
	b, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	b.StartDate = rng.Start
	b.EndDate = rng.End
	if carID != "" {
		b.CarID = carID
	}
	return nil
}

func (r *fakeBookingRepo) CreateWithRefs(ctx context.Context, b *models.Booking) error {
	count, _ := r.CountOverlapping(b.CarID, b.Range(), "")
	if count > 0 {
		return bookingRepo.ErrOverlappingBooking
	}
	r.put(*b)
	return nil
}

func (r *fakeBookingRepo) CancelWithCleanup(ctx context.Context, b *models.Booking) error {
	if r.failCancel[b.ID] {
		return fmt.Errorf("transaction aborted for booking %s", b.ID)
	}
	stored, ok := r.bookings[b.ID]
	if !ok {
		return fmt.Errorf("booking %s not found", b.ID)
	}
	stored.Status = models.BookingCancelled
	r.cleanups++
	return nil
}

func (r *fakeBookingRepo) DeleteWithCleanup(ctx context.Context, b *models.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return fmt.Errorf("booking %s not found", b.ID)
	}
	delete(r.bookings, b.ID)
	r.cleanups++
	return nil
}

type fakeCarRepo struct {
	cars map[string]*models.Car
}

func newFakeCarRepo() *fakeCarRepo {
	return &fakeCarRepo{cars: make(map[string]*models.Car)}
}

func (r *fakeCarRepo) GetByID(id string) (*models.Car, error) {
	c, ok := r.cars[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCarRepo) GetAll() ([]models.Car, error) {
	out := make([]models.Car, 0, len(r.cars))
	for _, c := range r.cars {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCarRepo) Create(car *models.Car) error {
	cp := *car
	r.cars[car.ID] = &cp
	return nil
}

func (r *fakeCarRepo) Update(car *models.Car) error {
	cp := *car
	r.cars[car.ID] = &cp
	return nil
}

func (r *fakeCarRepo) Delete(id string) error {
	delete(r.cars, id)
	return nil
}

func (r *fakeCarRepo) SetPricePerDay(id string, price float64) error {
	if c, ok := r.cars[id]; ok {
		c.PricePerDay = price
	}
	return nil
}

func (r *fakeCarRepo) SetAvailable(id string, available bool) error {
	if c, ok := r.cars[id]; ok {
		c.Available = available
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByResetToken(token string) (*models.User, error) {
	for _, u := range r.users {
		if u.ResetToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByRole(role string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Create(user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("user %s not found", id)
	}
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return r.GetByID(id)
}
