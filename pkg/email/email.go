package email

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net/smtp"
	"net/textproto"

	"northern-forge-site/config"
	"northern-forge-site/internal/domain"
)

// SMTPSender delivers contact submissions over SMTP as a text and HTML email
type SMTPSender struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string

	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender creates a sender with the SMTP relay configuration (Brevo by default)
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		toEmail:   cfg.ContactEmailTo,
		sendMail:  smtp.SendMail,
	}
}

func (s *SMTPSender) Name() string { return "smtp" }

// Deliver sends a contact form email to the configured recipient
func (s *SMTPSender) Deliver(ctx context.Context, sub *domain.ContactSubmission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := NewContactEmailData(sub)
	body, err := data.RenderHTML()
	if err != nil {
		return err
	}

	msg, err := buildMessage(s.fromEmail, s.toEmail, data.SenderEmail, data.Subject(), data.RenderText(), body)
	if err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := s.sendMail(addr, auth, s.fromEmail, []string{s.toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the sender has valid SMTP configuration
func (s *SMTPSender) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.toEmail != ""
}

// buildMessage constructs a multipart/alternative message with the plain text
// part first. The subject is Q-encoded since it carries visitor-provided text.
func buildMessage(from, to, replyTo, subject, textBody, htmlBody string) ([]byte, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	for _, part := range []struct{ contentType, content string }{
		{"text/plain; charset=UTF-8", textBody},
		{"text/html; charset=UTF-8", htmlBody},
	} {
		w, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {part.contentType},
			"Content-Transfer-Encoding": {"8bit"},
		})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	header := fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: multipart/alternative; boundary=%q\r\n"+
			"\r\n",
		from,
		to,
		replyTo,
		mime.QEncoding.Encode("utf-8", subject),
		mw.Boundary(),
	)
	return append([]byte(header), body.Bytes()...), nil
}
