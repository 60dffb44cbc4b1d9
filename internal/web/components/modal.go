package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"northern-forge-site/internal/domain"
)

// ContactModalProps is what the overlay needs from the form and controller
type ContactModalProps struct {
	Values    domain.ContactForm
	Errors    domain.FieldErrors
	Failure   string
	Offerings []string
	CSRFToken string
}

// closeHref reloads the page without contact=open, which renders it closed
const closeHref = "/"

func ContactModal(p ContactModalProps) g.Node {
	return Div(
		ID("contact-modal"),
		Class("modal"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		g.Attr("aria-labelledby", "contact-modal-title"),

		A(
			Href(closeHref),
			Class("modal-overlay"),
			g.Attr("aria-label", "Close modal"),
			g.Attr("tabindex", "-1"),
		),

		Div(
			Class("modal-panel"),
			A(
				Href(closeHref),
				Class("modal-close"),
				g.Attr("aria-label", "Close modal"),
				g.Text("×"),
			),

			Div(
				Class("modal-aside"),
				Div(Class("illustration"), P(g.Text("Messenger Character"))),
				H3(ID("contact-modal-title"), g.Text("Get in Touch")),
				P(g.Text("We'd love to hear from you. Fill out the form and we'll get back to you shortly.")),
			),

			Div(
				Class("modal-body"),
				g.If(p.Failure != "", Div(Class("alert alert-error"), g.Attr("role", "alert"), g.Text(p.Failure))),
				contactForm(p),
			),
		),
	)
}

func contactForm(p ContactModalProps) g.Node {
	v := p.Values
	return g.El("form",
		Action("/contact"),
		Method("post"),
		Class("contact-form"),
		g.Attr("novalidate"),
		Input(Type("hidden"), Name("csrf_token"), Value(p.CSRFToken)),

		Div(
			Class("field-row"),
			textField("name", "Name *", "text", v.Name, "Your name", p.Errors),
			textField("businessName", "Business Name *", "text", v.BusinessName, "Your business", p.Errors),
		),
		Div(
			Class("field-row"),
			textField("email", "Email *", "email", v.Email, "your@email.com", p.Errors),
			textField("phone", "Phone (optional)", "tel", v.Phone, "+44 1234 567890", p.Errors),
		),

		Div(
			Class("field"),
			Label(g.Attr("for", "serviceInterest"), g.Text("Service Interest *")),
			Select(
				ID("serviceInterest"),
				Name("serviceInterest"),
				fieldInvalid("serviceInterest", p.Errors),
				serviceOptions(v.ServiceInterest, p.Offerings),
			),
			fieldError("serviceInterest", p.Errors),
		),

		Div(
			Class("field"),
			Label(g.Attr("for", "message"), g.Text("Message / Project Description *")),
			Textarea(
				ID("message"),
				Name("message"),
				g.Attr("rows", "4"),
				g.Attr("placeholder", "Tell us about your project..."),
				fieldInvalid("message", p.Errors),
				g.Text(v.Message),
			),
			fieldError("message", p.Errors),
		),

		Div(
			Class("field-check"),
			Input(
				ID("consultation"),
				Type("checkbox"),
				Name("consultation"),
				Value("true"),
				g.If(v.Consultation, g.Attr("checked")),
			),
			Label(g.Attr("for", "consultation"), g.Text("I'd like to schedule a consultation call")),
		),

		Button(Type("submit"), Class("btn btn-primary btn-block"), g.Text("Send Message")),
	)
}

func textField(name, label, typ, value, placeholder string, errs domain.FieldErrors) g.Node {
	return Div(
		Class("field"),
		Label(g.Attr("for", name), g.Text(label)),
		Input(
			ID(name),
			Name(name),
			Type(typ),
			Value(value),
			g.Attr("placeholder", placeholder),
			fieldInvalid(name, errs),
		),
		fieldError(name, errs),
	)
}

func fieldInvalid(name string, errs domain.FieldErrors) g.Node {
	if errs[name] == "" {
		return nil
	}
	return g.Group([]g.Node{
		g.Attr("aria-invalid", "true"),
		g.Attr("aria-describedby", name+"-error"),
	})
}

func fieldError(name string, errs domain.FieldErrors) g.Node {
	msg := errs[name]
	if msg == "" {
		return nil
	}
	return P(ID(name+"-error"), Class("field-error"), g.Text(msg))
}

// serviceOptions marks the option equal to current as selected. A current
// value outside offerings leaves the placeholder selected.
func serviceOptions(current string, offerings []string) g.Node {
	matched := false
	for _, o := range offerings {
		if o == current {
			matched = true
			break
		}
	}

	return g.Group([]g.Node{
		Option(Value(""), g.If(!matched, g.Attr("selected")), g.Text("Select a service")),
		g.Map(offerings, func(o string) g.Node {
			return Option(Value(o), g.If(o == current, g.Attr("selected")), g.Text(o))
		}),
	})
}
