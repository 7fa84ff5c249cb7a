package notify

//go:generate go run go.uber.org/mock/mockgen -source=./notify.go -destination=./mocks/notify_mock.go -package=mocks

import (
	"context"
	"fmt"
	"rental/config"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends transactional mail. When mail is disabled in the
// configuration the no-op implementation is used.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, toName, toEmail, subject, body string) error
}

type sendgridMailer struct {
	config *config.Config
	client *sendgrid.Client
}

type noopMailer struct{}

func New(config *config.Config) Mailer {
	if !config.Mail.Enable {
		log.Info().Msg("Mail is disabled, using no-op mailer")

		return &noopMailer{}
	}

	return &sendgridMailer{
		config: config,
		client: sendgrid.NewSendClient(config.Mail.APIKey),
	}
}

func (m *sendgridMailer) SendBookingConfirmation(ctx context.Context, toName, toEmail, subject, body string) error {
	from := mail.NewEmail(m.config.Mail.FromName, m.config.Mail.FromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		log.Error().Err(err).Str("to", toEmail).Msg("Failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Error().Int("statusCode", response.StatusCode).Str("to", toEmail).Msg("Email rejected by provider")

		return fmt.Errorf("email rejected by provider with status %d", response.StatusCode)
	}

	log.Info().Str("to", toEmail).Msg("Email sent successfully")

	return nil
}

func (m *noopMailer) SendBookingConfirmation(_ context.Context, _, toEmail, _, _ string) error {
	log.Debug().Str("to", toEmail).Msg("Mail disabled, skipping email")

	return nil
}
