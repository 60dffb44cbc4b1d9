package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"northern-forge-site/internal/domain"
)

// Notice is a one-shot status line shown above the page, e.g. after a
// successful contact submission
type Notice struct {
	Kind string
	Text string
}

type HomeProps struct {
	Config        PageConfig
	Site          domain.SiteContent
	QuoteCategory string
	Year          int
	Notice        *Notice
	// Modal is nil while the contact modal is closed
	Modal *ContactModalProps
}

func HomePage(p HomeProps) g.Node {
	return Layout(
		p.Config,
		SiteHeader(p.Site),
		Main(
			noticeBar(p.Notice),
			Hero(p.Site.Hero, p.QuoteCategory),
			ProblemSection(p.Site.Problems),
			SolutionSection(p.Site.Solutions),
			PricingSection(p.Site.Pricing),
			BlogSection(p.Site.Posts),
		),
		SiteFooter(p.Site, p.Year),
		modalNode(p.Modal),
	)
}

func noticeBar(n *Notice) g.Node {
	if n == nil {
		return nil
	}
	return Div(
		Class("notice notice-"+n.Kind),
		g.Attr("role", "status"),
		Div(Class("container"), g.Text(n.Text)),
	)
}

func modalNode(p *ContactModalProps) g.Node {
	if p == nil {
		return nil
	}
	return ContactModal(*p)
}

type PostProps struct {
	Config PageConfig
	Site   domain.SiteContent
	Post   *domain.BlogPost
	// HTML is the sanitized rendered body
	HTML string
	Year int
}

func PostPage(p PostProps) g.Node {
	return Layout(
		p.Config,
		SiteHeader(p.Site),
		Main(
			Article(
				Class("section section-light post"),
				Div(
					Class("container container-narrow"),
					A(Href("/#blog"), Class("back-link"), g.Text("← Back to the blog")),
					P(Class("post-date"), g.Text(p.Post.PublishedAt.Format("2 January 2006"))),
					Div(Class("post-body"), g.Raw(p.HTML)),
					Div(
						Class("post-cta"),
						ContactTrigger("Get in Touch", "", "btn btn-primary"),
					),
				),
			),
		),
		SiteFooter(p.Site, p.Year),
	)
}

func NotFoundPage(site domain.SiteContent, year int) g.Node {
	return Layout(
		PageConfig{Title: "Page not found - " + site.CompanyName},
		SiteHeader(site),
		Main(
			Section(
				Class("section section-light"),
				Div(
					Class("container container-narrow"),
					H1(g.Text("Page not found")),
					P(g.Text("The page you were looking for has been moved or never existed.")),
					A(Href("/"), Class("btn btn-primary"), g.Text("Back to home")),
				),
			),
		),
		SiteFooter(site, year),
	)
}
