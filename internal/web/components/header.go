package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"northern-forge-site/internal/domain"
)

func Logo(name string) g.Node {
	return A(
		Href(anchorHref("home")),
		Class("logo"),
		g.El("svg",
			g.Attr("width", "32"),
			g.Attr("height", "32"),
			g.Attr("viewBox", "0 0 32 32"),
			g.Attr("aria-hidden", "true"),
			g.El("path",
				g.Attr("d", "M4 22h24v4H4v-4zm3-3h18l1-7H6l1 7zm17-10v2H8V9h16z"),
				g.Attr("fill", "currentColor"),
			),
		),
		Span(g.Text(name)),
	)
}

func SiteHeader(site domain.SiteContent) g.Node {
	return Header(
		Class("site-header"),
		Div(
			Class("container header-inner"),
			Logo(site.CompanyName),

			Nav(
				Class("nav-desktop"),
				g.Attr("aria-label", "Main"),
				navLinks(site.Nav),
				ContactTrigger("Get in Touch", "", "btn btn-primary"),
			),

			g.El("details",
				Class("nav-mobile"),
				g.El("summary",
					g.Attr("aria-label", "Toggle menu"),
					Span(Class("menu-icon"), g.Attr("aria-hidden", "true")),
				),
				Nav(
					Class("nav-mobile-panel"),
					g.Attr("aria-label", "Mobile"),
					navLinks(site.Nav),
					ContactTrigger("Get in Touch", "", "btn btn-primary btn-block"),
				),
			),
		),
	)
}

func navLinks(links []domain.NavLink) g.Node {
	return Ul(
		Class("nav-links"),
		g.Map(links, func(l domain.NavLink) g.Node {
			return Li(A(Href(anchorHref(l.Anchor)), g.Text(l.Label)))
		}),
	)
}
