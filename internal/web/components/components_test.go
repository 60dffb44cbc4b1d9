package components

import (
	"html"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"northern-forge-site/config"
	"northern-forge-site/internal/content"
	"northern-forge-site/internal/domain"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestContactHref(t *testing.T) {
	assert.Equal(t, "/?contact=open#contact-modal", ContactHref(""))
	assert.Equal(t, "/?contact=open&service=Master+Forge#contact-modal", ContactHref("Master Forge"))
}

func TestHomePageClosed(t *testing.T) {
	out := render(t, HomePage(HomeProps{
		Site:          content.Site(),
		QuoteCategory: content.QuoteCategory,
		Year:          2026,
	}))

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, html.EscapeString("Forging Accessible AI for Tomorrow's Businesses"))
	assert.Contains(t, out, "<body>")
	assert.NotContains(t, out, `id="contact-modal"`)
	assert.Contains(t, out, "© 2026 Northern Forge AI Limited. All rights reserved.")
	assert.Contains(t, out, `href="/blog/ai-powered-automation"`)
	assert.Contains(t, out, `href="/?contact=open&amp;service=quote#contact-modal"`)
	assert.Contains(t, out, `href="/?contact=open&amp;service=Hive-Mind+Waitlist#contact-modal"`)
}

func TestHomePageOpen(t *testing.T) {
	out := render(t, HomePage(HomeProps{
		Config: PageConfig{BodyClass: "overflow-hidden"},
		Site:   content.Site(),
		Year:   2026,
		Modal: &ContactModalProps{
			Values:    domain.ContactForm{ServiceInterest: "Master Forge"},
			Offerings: config.DefaultOfferings,
			CSRFToken: "tok",
		},
	}))

	assert.Contains(t, out, `<body class="overflow-hidden">`)
	assert.Contains(t, out, `id="contact-modal"`)
	assert.Contains(t, out, `<option value="Master Forge" selected>Master Forge</option>`)
	assert.Contains(t, out, `<option value="">Select a service</option>`)
	assert.Contains(t, out, `name="csrf_token" value="tok"`)
}

func TestContactModalErrorsAndBanner(t *testing.T) {
	out := render(t, ContactModal(ContactModalProps{
		Values:    domain.ContactForm{Email: "nope", Message: "keep me"},
		Errors:    domain.FieldErrors{"name": "Name is required", "email": "Invalid email address"},
		Failure:   "Our contact form is temporarily unavailable. Please email us directly.",
		Offerings: config.DefaultOfferings,
	}))

	assert.Contains(t, out, `<p id="name-error" class="field-error">Name is required</p>`)
	assert.Contains(t, out, `<p id="email-error" class="field-error">Invalid email address</p>`)
	assert.NotContains(t, out, `id="message-error"`)
	assert.Contains(t, out, `value="nope"`)
	assert.Contains(t, out, ">keep me</textarea>")
	assert.Contains(t, out, `role="alert"`)
	assert.Contains(t, out, "temporarily unavailable")
}

func TestContactModalEscapesRedisplayedValues(t *testing.T) {
	out := render(t, ContactModal(ContactModalProps{
		Values: domain.ContactForm{
			BusinessName: `<Acme "Ltd">`,
			Message:      "if a<b then alert",
		},
		Offerings: config.DefaultOfferings,
	}))

	assert.NotContains(t, out, "<Acme")
	assert.Contains(t, out, "&lt;Acme")
	assert.Contains(t, out, ">if a&lt;b then alert</textarea>")
}

func TestContactModalUnknownCategorySelectsPlaceholder(t *testing.T) {
	out := render(t, ContactModal(ContactModalProps{
		Values:    domain.ContactForm{ServiceInterest: content.QuoteCategory},
		Offerings: config.DefaultOfferings,
	}))

	assert.Contains(t, out, `<option value="" selected>Select a service</option>`)
	assert.NotContains(t, out, `" selected>Master Forge`)
}

func TestContactModalLabels(t *testing.T) {
	out := render(t, ContactModal(ContactModalProps{Offerings: config.DefaultOfferings}))

	for _, label := range []string{
		"Name *",
		"Business Name *",
		"Email *",
		"Phone (optional)",
		"Service Interest *",
		"Message / Project Description *",
		html.EscapeString("I'd like to schedule a consultation call"),
		"Send Message",
	} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, `href="/" class="modal-close"`)
}

func TestPostPage(t *testing.T) {
	post, err := content.Post("navigating-the-ai-landscape")
	require.NoError(t, err)
	body, err := content.RenderPost(post)
	require.NoError(t, err)

	out := render(t, PostPage(PostProps{Site: content.Site(), Post: post, HTML: body, Year: 2026}))
	assert.Contains(t, out, "<h2>Ask three questions</h2>")
	assert.Contains(t, out, "3 November 2025")
}

func TestNotFoundPage(t *testing.T) {
	out := render(t, NotFoundPage(content.Site(), 2026))
	assert.Contains(t, out, "Page not found")
}
