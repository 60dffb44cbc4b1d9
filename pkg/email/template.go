package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"northern-forge-site/internal/domain"
)

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SubmissionID    string
	SenderName      string
	BusinessName    string
	SenderEmail     string
	Phone           string
	ServiceInterest string
	Message         string
	Consultation    bool
	SubmittedAt     time.Time
}

func NewContactEmailData(sub *domain.ContactSubmission) ContactEmailData {
	return ContactEmailData{
		SubmissionID:    sub.ID,
		SenderName:      sub.Name,
		BusinessName:    sub.BusinessName,
		SenderEmail:     sub.Email,
		Phone:           sub.Phone,
		ServiceInterest: sub.ServiceInterest,
		Message:         sub.Message,
		Consultation:    sub.Consultation,
		SubmittedAt:     sub.SubmittedAt,
	}
}

// Subject is the subject line of the notification email
func (d ContactEmailData) Subject() string {
	return fmt.Sprintf("New enquiry: %s (%s)", d.ServiceInterest, d.BusinessName)
}

// contactEmailTemplate is the HTML template for contact form emails
var contactEmailTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: 'Space Grotesk', Arial, sans-serif; line-height: 1.6; color: #001219; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0A9396; color: #E9D8A6; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #4A4A4A; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0A9396; margin-top: 10px; white-space: pre-wrap; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.SenderName}} ({{.SenderEmail}})</div>
            </div>
            <div class="field">
                <div class="label">Business:</div>
                <div class="value">{{.BusinessName}}</div>
            </div>
            {{if .Phone}}<div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Phone}}</div>
            </div>{{end}}
            <div class="field">
                <div class="label">Service Interest:</div>
                <div class="value">{{.ServiceInterest}}</div>
            </div>
            <div class="field">
                <div class="label">Consultation call requested:</div>
                <div class="value">{{if .Consultation}}Yes{{else}}No{{end}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>Sent from the Northern Forge AI contact form. Reference {{.SubmissionID}}.</p>
            <p>To reply, send an email to: {{.SenderEmail}}</p>
        </div>
    </div>
</body>
</html>`))

// RenderHTML executes the HTML body template
func (d ContactEmailData) RenderHTML() (string, error) {
	var body bytes.Buffer
	if err := contactEmailTemplate.Execute(&body, d); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

// RenderText is the plain-text alternative body
func (d ContactEmailData) RenderText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\n", d.SenderName, d.SenderEmail)
	fmt.Fprintf(&b, "Business: %s\n", d.BusinessName)
	if d.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", d.Phone)
	}
	fmt.Fprintf(&b, "Service Interest: %s\n", d.ServiceInterest)
	consultation := "No"
	if d.Consultation {
		consultation = "Yes"
	}
	fmt.Fprintf(&b, "Consultation call requested: %s\n\n", consultation)
	b.WriteString(d.Message)
	fmt.Fprintf(&b, "\n\nReference: %s\n", d.SubmissionID)
	return b.String()
}
