package infrastructure

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Mailer interface {
	SendWelcome(ctx context.Context, name, email string) error
}

type SendGridMailer struct {
	client *sendgrid.Client
	sender string
}

// NewMailer returns a SendGrid mailer, or a no-op one when apiKey is empty.
func NewMailer(apiKey, sender string) Mailer {
	if apiKey == "" {
		return NopMailer{}
	}
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}
}

func (m *SendGridMailer) SendWelcome(ctx context.Context, name, email string) error {
	from := mail.NewEmail("42Hub", m.sender)
	to := mail.NewEmail(name, email)
	subject := "Welcome to 42Hub"

	plainTextContent := fmt.Sprintf("Hi %s, your 42Hub account is ready.", name)
	htmlContent := fmt.Sprintf("<strong>Hi %s</strong>, your 42Hub account is ready.", name)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("send welcome email: sendgrid status %d", response.StatusCode)
	}

	log.Printf("Welcome email sent to %s (status %d)", email, response.StatusCode)
	return nil
}

type NopMailer struct{}

func (NopMailer) SendWelcome(context.Context, string, string) error { return nil }
