package user

import (
	"fmt"
	"testing"

	bookingRepoPkg "carrental/database/repository/booking"
	"carrental/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*models.User)}
}

func (r *stubUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) GetByResetToken(token string) (*models.User, error) {
	for _, u := range r.users {
		if u.ResetToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) GetByRole(role string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Create(user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *stubUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id)
	}
	if phone, ok := updateDoc["phone_number"].(string); ok {
		u.PhoneNumber = phone
	}
	if avatar, ok := updateDoc["avatar"].(string); ok {
		u.Avatar = avatar
	}
	return nil
}

func (r *stubUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return r.GetByID(id)
}

// stubBookingRepo embeds the interface so only the methods the user service
// touches need implementing.
type stubBookingRepo struct {
	bookingRepoPkg.BookingRepository
	byUser map[string][]models.Booking
}

func (r *stubBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	return r.byUser[userID], nil
}

func newTestService() (*DefaultUserService, *stubUserRepo, *stubBookingRepo) {
	users := newStubUserRepo()
	bookings := &stubBookingRepo{byUser: make(map[string][]models.Booking)}
	return &DefaultUserService{Repo: users, BookingRepo: bookings}, users, bookings
}

func signupInput() models.SignupInput {
	return models.SignupInput{
		Name:            "Alice",
		Email:           "alice@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		PhoneNumber:     "0700000000",
	}
}

func TestSignup(t *testing.T) {
	svc, _, _ := newTestService()

	usr, token, err := svc.Signup(signupInput())
	require.NoError(t, err)
	assert.NotEmpty(t, usr.ID)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleCustomer, usr.Role)
	assert.NotEqual(t, "secret123", usr.PasswordHash, "password is stored hashed")

	// Duplicate email is rejected.
	_, _, err = svc.Signup(signupInput())
	assert.Error(t, err)
}

func TestSignupPasswordMismatch(t *testing.T) {
	svc, _, _ := newTestService()

	in := signupInput()
	in.ConfirmPassword = "different"
	_, _, err := svc.Signup(in)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService()
	_, _, err := svc.Signup(signupInput())
	require.NoError(t, err)

	usr, token, err := svc.Login(models.LoginInput{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", usr.Email)
	assert.NotEmpty(t, token)

	// Wrong password and unknown email produce the same error.
	_, _, err = svc.Login(models.LoginInput{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(models.LoginInput{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	svc, _, bookings := newTestService()
	usr, _, err := svc.Signup(signupInput())
	require.NoError(t, err)

	bookings.byUser[usr.ID] = []models.Booking{
		{ID: "b-1", UserID: usr.ID, Status: models.BookingConfirmed},
	}

	got, userBookings, err := svc.GetProfile(usr.ID)
	require.NoError(t, err)
	assert.Equal(t, usr.ID, got.ID)
	require.Len(t, userBookings, 1)
	assert.Equal(t, "b-1", userBookings[0].ID)

	_, _, err = svc.GetProfile("ghost")
	assert.Error(t, err)
}

func TestUpdateProfile(t *testing.T) {
	svc, _, _ := newTestService()
	usr, _, err := svc.Signup(signupInput())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(usr.ID, "0711111111", "")
	require.NoError(t, err)
	assert.Equal(t, "0711111111", updated.PhoneNumber)
	assert.Equal(t, models.DefaultAvatarURL, updated.Avatar, "empty avatar leaves the old value")
}

func TestGetAllCustomers(t *testing.T) {
	svc, users, _ := newTestService()
	require.NoError(t, users.Create(&models.User{ID: "u-1", Role: models.RoleCustomer}))
	require.NoError(t, users.Create(&models.User{ID: "u-2", Role: models.RoleAdmin}))

	customers, err := svc.GetAllCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "u-1", customers[0].ID)
}
