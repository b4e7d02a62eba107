package utils

import (
	"fmt"

	"carrental/config"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// SendMail delivers a single HTML email through the configured SMTP relay.
func SendMail(toEmail, subject, htmlBody string) error {
	cfg := config.AppConfig

	msg := mail.NewMsg()
	if err := msg.From(cfg.MailFrom); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", cfg.MailFrom, err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", toEmail, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(cfg.SMTPHost,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUser),
		mail.WithPassword(cfg.SMTPPassword),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", toEmail, err)
	}

	GetLogger().Info("Email sent", zap.String("to", toEmail), zap.String("subject", subject))
	return nil
}

// SendPasswordResetEmail mails the reset link for the given token.
func SendPasswordResetEmail(toEmail, resetToken string) error {
	resetURL := fmt.Sprintf("%s/reset-password/%s", config.AppConfig.ClientURL, resetToken)
	body := fmt.Sprintf(`<p>You requested a password reset.</p>
<p><a href="%s">Click here to reset your password</a>. The link expires in one hour.</p>
<p>If you did not request this, you can safely ignore this email.</p>`, resetURL)
	return SendMail(toEmail, "Password Reset", body)
}

// SendBookingConfirmationEmail notifies a customer that their booking was confirmed.
func SendBookingConfirmationEmail(toEmail, bookingID string, totalAmount float64) error {
	body := fmt.Sprintf(`<p>Your booking <b>%s</b> has been confirmed.</p>
<p>Total amount: $%.2f</p>`, bookingID, totalAmount)
	return SendMail(toEmail, "Booking Confirmed!", body)
}
