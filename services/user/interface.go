package user

import "carrental/models"

// UserService manages accounts: registration, authentication, profile
// management and the password-reset flow.
type UserService interface {
	// Signup registers a new customer account and returns it with a JWT.
	Signup(in models.SignupInput) (*models.User, string, error)
	// Login authenticates by email/password and returns the user with a JWT.
	Login(in models.LoginInput) (*models.User, string, error)
	// GetUserByID returns a user without sensitive fields populated.
	GetUserByID(id string) (*models.User, error)
	// GetProfile returns a user together with their bookings.
	GetProfile(id string) (*models.User, []models.Booking, error)
	// UpdateProfile patches phone number and/or avatar.
	UpdateProfile(id, phoneNumber, avatarURL string) (*models.User, error)
	// GetAllCustomers lists all accounts with the customer role.
	GetAllCustomers() ([]models.User, error)
	// ForgotPassword issues a reset token and emails it to the user.
	ForgotPassword(email string) error
	// ResetPassword sets a new password for a valid, unexpired reset token.
	ResetPassword(token, newPassword string) error
}
