// Package email provides email queueing and delivery functionality.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/gift-tracker/backend/internal/application/adapter"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send sends an email via Resend.
func (c *ResendClient) Send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
		Text:    textBody,
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailSendFailed,
			"failed to send email",
			err,
		)
	}

	return nil
}

// MockEmailSender is a mock implementation for testing.
type MockEmailSender struct {
	Sent       []SentEmail
	ShouldFail bool
	FailError  error
}

// SentEmail records one email captured by the mock.
type SentEmail struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// NewMockEmailSender creates a new mock email sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{
		Sent: make([]SentEmail, 0),
	}
}

// Send implements the adapter.EmailSender interface for testing.
func (m *MockEmailSender) Send(_ context.Context, to, subject, htmlBody, textBody string) error {
	if m.ShouldFail {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailSendFailed,
			"mock send failure",
			m.FailError,
		)
	}

	m.Sent = append(m.Sent, SentEmail{
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: textBody,
	})
	return nil
}

// Reset clears all sent emails and failure configuration.
func (m *MockEmailSender) Reset() {
	m.Sent = make([]SentEmail, 0)
	m.ShouldFail = false
	m.FailError = nil
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = (*MockEmailSender)(nil)
)
