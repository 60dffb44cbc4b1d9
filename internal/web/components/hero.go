package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"northern-forge-site/internal/domain"
)

func Hero(hero domain.Hero, quoteCategory string) g.Node {
	return Section(
		ID("home"),
		Class("hero"),
		rings("rings-top-right"),
		Div(
			Class("container hero-inner"),
			H1(Class("hero-title"), g.Text(hero.Heading)),
			P(Class("hero-subtitle"), g.Text(hero.Subtitle)),
			Div(
				Class("hero-actions"),
				ContactTrigger("Get in Touch", "", "btn btn-primary btn-lg"),
				ContactTrigger("Request Quote", quoteCategory, "btn btn-outline btn-lg"),
			),
		),
	)
}

// rings is the decorative concentric circle motif
func rings(position string) g.Node {
	return g.El("svg",
		Class("rings "+position),
		g.Attr("viewBox", "0 0 200 200"),
		g.Attr("aria-hidden", "true"),
		g.Map([]string{"90", "70", "50", "30"}, func(r string) g.Node {
			return g.El("circle",
				g.Attr("cx", "100"),
				g.Attr("cy", "100"),
				g.Attr("r", r),
				g.Attr("fill", "none"),
				g.Attr("stroke", "currentColor"),
			)
		}),
	)
}
