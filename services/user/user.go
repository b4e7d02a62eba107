package user

import (
	"fmt"
	"time"

	bookingRepo "carrental/database/repository/booking"
	userRepo "carrental/database/repository/user"
	"carrental/models"
	"carrental/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike, so callers cannot probe which emails exist.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials")

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo        userRepo.UserRepository
	BookingRepo bookingRepo.BookingRepository
}

// Signup registers a new customer account and returns it with a JWT.
func (s *DefaultUserService) Signup(in models.SignupInput) (*models.User, string, error) {
	if in.Password != in.ConfirmPassword {
		return nil, "", fmt.Errorf("passwords do not match")
	}

	existing, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, "", fmt.Errorf("user already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		PhoneNumber:  in.PhoneNumber,
		Role:         models.RoleCustomer,
		Avatar:       models.DefaultAvatarURL,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, tokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	utils.GetLogger().Info("User registered", zap.String("userID", usr.ID))
	return usr, token, nil
}

// Login authenticates by email/password and returns the user with a JWT.
func (s *DefaultUserService) Login(in models.LoginInput) (*models.User, string, error) {
	usr, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, tokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return usr, token, nil
}

// GetUserByID returns a user by id, or an error if absent.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	return usr, nil
}

// GetProfile returns a user together with their bookings, resolved from the
// booking collection rather than the denormalized id list.
func (s *DefaultUserService) GetProfile(id string) (*models.User, []models.Booking, error) {
	usr, err := s.GetUserByID(id)
	if err != nil {
		return nil, nil, err
	}
	bookings, err := s.BookingRepo.GetByUser(id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch bookings for user %s: %w", id, err)
	}
	return usr, bookings, nil
}

// UpdateProfile patches phone number and/or avatar.
func (s *DefaultUserService) UpdateProfile(id, phoneNumber, avatarURL string) (*models.User, error) {
	updateFields := bson.M{"updated_at": time.Now()}
	if phoneNumber != "" {
		updateFields["phone_number"] = phoneNumber
	}
	if avatarURL != "" {
		updateFields["avatar"] = avatarURL
	}

	if err := s.Repo.UpdateSetDocument(id, updateFields); err != nil {
		return nil, err
	}
	return s.GetUserByID(id)
}

// GetAllCustomers lists all accounts with the customer role.
func (s *DefaultUserService) GetAllCustomers() ([]models.User, error) {
	return s.Repo.GetByRole(models.RoleCustomer)
}
