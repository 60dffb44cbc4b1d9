package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"northern-forge-site/internal/domain"
)

func SiteFooter(site domain.SiteContent, year int) g.Node {
	return Footer(
		ID("contact"),
		Class("site-footer"),
		Div(
			Class("container footer-grid"),

			Div(
				Logo(site.CompanyName),
				P(Class("footer-tagline"), g.Text(site.Tagline)),
				P(g.Text(site.Blurb)),
				P(Class("footer-location"), g.Text(site.Contact.Location)),
			),

			Div(
				H4(g.Text("Quick Links")),
				Ul(
					Class("footer-links"),
					g.Map(site.Nav, func(l domain.NavLink) g.Node {
						return Li(A(Href(anchorHref(l.Anchor)), g.Text(l.Label)))
					}),
					Li(A(Href("#"), g.Text("Privacy Policy"))),
					Li(A(Href("#"), g.Text("Terms of Service"))),
				),
			),

			Div(
				H4(g.Text("Contact")),
				Ul(
					Class("footer-links"),
					Li(A(Href("mailto:"+site.Contact.Email), g.Text(site.Contact.Email))),
					Li(A(Href(site.Contact.PhoneURI), g.Text(site.Contact.Phone))),
					Li(Span(g.Text(site.Contact.Hours))),
				),
				ContactTrigger("Get in Touch", "", "btn btn-primary"),
			),

			Div(
				H4(g.Text("Follow Us")),
				Ul(
					Class("social-links"),
					g.Map(site.Social, func(s domain.SocialLink) g.Node {
						return Li(A(Href(s.URL), g.Attr("aria-label", s.Label), g.Text(s.Label)))
					}),
				),
			),
		),
		Div(
			Class("container footer-bottom"),
			P(g.Text("Made with ❤️ and AI in Milton Keynes")),
			P(g.Text("© "+strconv.Itoa(year)+" "+site.LegalName+". All rights reserved.")),
		),
	)
}
