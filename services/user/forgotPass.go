package user

import (
	"fmt"
	"time"

	"carrental/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = time.Hour

// ForgotPassword issues a reset token with a one hour expiry and emails the
// reset link. An unknown email is reported as success so the endpoint cannot
// be used to probe for accounts.
func (s *DefaultUserService) ForgotPassword(email string) error {
	logger := utils.GetLogger()

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("ForgotPassword: failed to fetch user", zap.Error(err))
		return fmt.Errorf("failed to initiate password reset, please try again")
	}
	if usr == nil {
		logger.Debug("ForgotPassword: unknown email", zap.String("email", email))
		return nil
	}

	token := uuid.New().String()
	updateFields := bson.M{
		"reset_token":        token,
		"reset_token_expiry": time.Now().Add(resetTokenTTL),
		"updated_at":         time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(usr.ID, updateFields); err != nil {
		logger.Error("ForgotPassword: failed to store reset token", zap.Error(err))
		return fmt.Errorf("failed to initiate password reset, please try again")
	}

	if err := utils.SendPasswordResetEmail(usr.Email, token); err != nil {
		logger.Error("ForgotPassword: failed to send reset email", zap.Error(err))
		return fmt.Errorf("failed to send reset email, please try again")
	}
	return nil
}

// ResetPassword sets a new password for a valid, unexpired reset token and
// clears the token so it cannot be replayed.
func (s *DefaultUserService) ResetPassword(token, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	usr, err := s.Repo.GetByResetToken(token)
	if err != nil {
		return fmt.Errorf("failed to verify reset token: %w", err)
	}
	if usr == nil || usr.ResetToken == "" {
		return fmt.Errorf("invalid or expired reset token")
	}
	if time.Now().After(usr.ResetTokenExpiry) {
		return fmt.Errorf("invalid or expired reset token")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to process new password")
	}

	updateFields := bson.M{
		"password_hash":      string(newHash),
		"reset_token":        "",
		"reset_token_expiry": time.Time{},
		"updated_at":         time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(usr.ID, updateFields); err != nil {
		return fmt.Errorf("failed to update password")
	}

	utils.GetLogger().Info("Password reset", zap.String("userID", usr.ID))
	return nil
}
