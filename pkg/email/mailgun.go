package email

import (
	"context"
	"fmt"
	"time"

	"northern-forge-site/config"
	"northern-forge-site/internal/domain"
	"northern-forge-site/pkg/logger"

	"github.com/mailgun/mailgun-go/v4"
)

type mailgunClient interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

// MailgunSender delivers contact submissions through the Mailgun API
type MailgunSender struct {
	client  mailgunClient
	from    string
	toEmail string
	timeout time.Duration
}

// NewMailgunSender returns nil if Mailgun is not configured
func NewMailgunSender(cfg *config.Config) *MailgunSender {
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" {
		return nil
	}
	return &MailgunSender{
		client:  mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
		from:    fmt.Sprintf("%s <%s>", cfg.MailgunFromName, cfg.SMTPFromEmail),
		toEmail: cfg.ContactEmailTo,
		timeout: 30 * time.Second,
	}
}

func (s *MailgunSender) Name() string { return "mailgun" }

func (s *MailgunSender) Deliver(ctx context.Context, sub *domain.ContactSubmission) error {
	data := NewContactEmailData(sub)
	html, err := data.RenderHTML()
	if err != nil {
		return err
	}

	message := s.client.NewMessage(s.from, data.Subject(), data.RenderText(), s.toEmail)
	message.SetHtml(html)
	message.SetReplyTo(data.SenderEmail)

	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, messageID, err := s.client.Send(sendCtx, message)
	if err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}

	logger.Log.Debug("Contact email queued", "message_id", messageID, "submission_id", sub.ID)
	return nil
}
