// Package mailer delivers transactional email through Resend.
package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

const verificationSubject = "Profile Change Verification Code"

const verificationHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #333;">Phone Number Change Verification</h1>
  <p>You have requested to change your phone number. Please use the following 6-digit code to verify this change:</p>
  <div style="background-color: #f4f4f4; padding: 20px; text-align: center; margin: 20px 0; border-radius: 8px;">
    <span style="font-size: 32px; font-weight: bold; letter-spacing: 8px; color: #333;">%s</span>
  </div>
  <p style="color: #666;">This code will expire in 10 minutes.</p>
  <p style="color: #666;">If you did not request this change, please ignore this email or contact support.</p>
  <hr style="margin: 30px 0; border: none; border-top: 1px solid #eee;" />
  <p style="color: #999; font-size: 12px;">IPR - Investment Property Rentals</p>
</div>`

const verificationText = "Your IPR verification code is %s. It expires in 10 minutes."

// EmailSender is the part of the Resend client used here.
type EmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type Mailer struct {
	emails EmailSender
	from   string
}

// New returns a Resend backed mailer. Without an API key mail is only logged.
func New(apiKey, from string) *Mailer {
	m := &Mailer{from: from}
	if apiKey != "" {
		m.emails = resend.NewClient(apiKey).Emails
	}
	return m
}

func NewWithSender(emails EmailSender, from string) *Mailer {
	return &Mailer{emails: emails, from: from}
}

func (m *Mailer) SendVerificationCode(ctx context.Context, to, code string) error {
	if m.emails == nil {
		zap.L().Warn("resend api key not set, verification email not sent", zap.String("to", to))
		zap.L().Debug("undelivered verification code", zap.String("to", to), zap.String("code", code))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: verificationSubject,
		Html:    fmt.Sprintf(verificationHTML, code),
		Text:    fmt.Sprintf(verificationText, code),
	}
	res, err := m.emails.SendWithContext(ctx, params)
	if err != nil {
		zap.L().Error("can't send verification email", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("send verification email: %w", err)
	}
	zap.L().Info("verification email sent", zap.String("to", to), zap.String("message_id", res.Id))
	return nil
}
