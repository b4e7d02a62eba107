package models

import "time"

// User roles.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

const DefaultAvatarURL = "https://ucarecdn.com/2c2772e9-8dc3-41ad-9c5f-55f5249fefbf/"

// User represents an account. Bookings is a denormalized list of booking ids
// kept in sync by the booking transaction paths only.
type User struct {
	ID               string    `bson:"id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Email            string    `bson:"email" json:"email"`
	PasswordHash     string    `bson:"password_hash" json:"-"`
	PhoneNumber      string    `bson:"phone_number" json:"phoneNumber"`
	Role             string    `bson:"role" json:"role"`
	Avatar           string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Bookings         []string  `bson:"bookings,omitempty" json:"bookings,omitempty"`
	ResetToken       string    `bson:"reset_token,omitempty" json:"-"`
	ResetTokenExpiry time.Time `bson:"reset_token_expiry,omitempty" json:"-"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// SignupInput is the request payload for registration.
type SignupInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	PhoneNumber     string `json:"phoneNumber" binding:"required"`
}

// LoginInput is the request payload for authentication.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
