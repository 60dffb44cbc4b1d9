package email

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"northern-forge-site/config"
	"northern-forge-site/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		SMTPHost:       "smtp.example.com",
		SMTPPort:       "587",
		SMTPUsername:   "relay-user",
		SMTPPassword:   "secret",
		SMTPFromEmail:  "noreply@northern-forge.com",
		ContactEmailTo: "alex@northern-forge.com",
	}
}

func testSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		ID:              "8f2d",
		Name:            "Åsa <Admin>",
		BusinessName:    "Fjord Bakery",
		Email:           "asa@fjord.co.uk",
		ServiceInterest: "Starter Forge",
		Message:         "Line one\nLine two",
		Consultation:    true,
		SubmittedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestSMTPSenderDeliver(t *testing.T) {
	s := NewSMTPSender(testConfig())
	require.True(t, s.IsConfigured())

	var (
		gotAddr string
		gotTo   []string
		gotMsg  string
	)
	s.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		return nil
	}

	require.NoError(t, s.Deliver(context.Background(), testSubmission()))

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"alex@northern-forge.com"}, gotTo)
	assert.Contains(t, gotMsg, "Reply-To: asa@fjord.co.uk\r\n")

	parts := readParts(t, gotMsg)
	require.Len(t, parts, 2)
	assert.Contains(t, parts["text/plain"], "Åsa <Admin>")
	assert.Contains(t, parts["text/plain"], "Line one\nLine two")
	// html/template escapes visitor text
	assert.Contains(t, parts["text/html"], "Åsa &lt;Admin&gt;")
	assert.NotContains(t, parts["text/html"], "<Admin>")
}

// readParts parses a multipart/alternative message into bodies keyed by media type
func readParts(t *testing.T, raw string) map[string]string {
	t.Helper()
	msg, err := mail.ReadMessage(strings.NewReader(raw))
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/alternative", mediaType)

	parts := map[string]string{}
	mr := multipart.NewReader(msg.Body, params["boundary"])
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		partType, _, err := mime.ParseMediaType(p.Header.Get("Content-Type"))
		require.NoError(t, err)
		body, err := io.ReadAll(p)
		require.NoError(t, err)
		parts[partType] = string(body)
	}
	return parts
}

func TestSMTPSenderDeliverError(t *testing.T) {
	s := NewSMTPSender(testConfig())
	s.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("535 auth failed")
	}

	err := s.Deliver(context.Background(), testSubmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "535 auth failed")
}

func TestSMTPSenderHonoursCancelledContext(t *testing.T) {
	s := NewSMTPSender(testConfig())
	called := false
	s.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Deliver(ctx, testSubmission()), context.Canceled)
	assert.False(t, called)
}

func TestSMTPSenderNotConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.SMTPPassword = ""
	assert.False(t, NewSMTPSender(cfg).IsConfigured())
}

func TestBuildMessageEncodesSubject(t *testing.T) {
	raw, err := buildMessage("a@x.io", "b@x.io", "c@x.io", "New enquiry: Åsa", "hi", "<p>hi</p>")
	require.NoError(t, err)
	msg := string(raw)

	assert.True(t, strings.HasPrefix(msg, "From: a@x.io\r\nTo: b@x.io\r\n"))
	assert.Contains(t, msg, "Subject: =?utf-8?q?")
	assert.Equal(t, map[string]string{"text/plain": "hi", "text/html": "<p>hi</p>"}, readParts(t, msg))
}

func TestRenderText(t *testing.T) {
	text := NewContactEmailData(testSubmission()).RenderText()
	assert.Contains(t, text, "Consultation call requested: Yes")
	assert.Contains(t, text, "Line one\nLine two")
	assert.NotContains(t, text, "Phone:")
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "New enquiry: Starter Forge (Fjord Bakery)", NewContactEmailData(testSubmission()).Subject())
}

func TestNewMailgunSenderUnconfigured(t *testing.T) {
	assert.Nil(t, NewMailgunSender(testConfig()))

	cfg := testConfig()
	cfg.MailgunDomain = "mg.northern-forge.com"
	cfg.MailgunAPIKey = "key-123"
	cfg.MailgunFromName = "Northern Forge AI"
	s := NewMailgunSender(cfg)
	require.NotNil(t, s)
	assert.Equal(t, "mailgun", s.Name())
	assert.Equal(t, "Northern Forge AI <noreply@northern-forge.com>", s.from)
}
