package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"northern-forge-site/internal/domain"
)

func sectionHeading(title, subtitle string, dark bool) g.Node {
	class := "section-heading"
	if dark {
		class += " on-dark"
	}
	return Div(
		Class(class),
		H2(g.Text(title)),
		g.If(subtitle != "", P(g.Text(subtitle))),
	)
}

func ProblemSection(problems []domain.ProblemCard) g.Node {
	return Section(
		ID("our-story"),
		Class("section section-light"),
		Div(
			Class("container"),
			sectionHeading("The AI Gap We're Closing", "Three challenges keeping brilliant businesses from AI transformation", false),
			Div(
				Class("grid grid-3"),
				g.Map(problems, func(p domain.ProblemCard) g.Node {
					return Div(
						Class("card card-light"),
						Span(Class("card-icon"), g.Attr("aria-hidden", "true"), g.Text(p.Icon)),
						H3(g.Text(p.Title)),
						P(g.Text(p.Description)),
						Div(Class("illustration"), P(g.Text(p.Illustration))),
					)
				}),
			),
		),
	)
}

func SolutionSection(solutions []domain.SolutionCard) g.Node {
	return Section(
		ID("services"),
		Class("section section-dark circuit-pattern"),
		Div(
			Class("container"),
			sectionHeading("The Hive-Mind Architecture", "Four principles that make AI accessible", true),
			Div(
				Class("grid grid-2"),
				g.Map(solutions, func(s domain.SolutionCard) g.Node {
					return Div(
						Class("card card-dark"),
						Span(Class("card-icon card-icon-lg"), g.Attr("aria-hidden", "true"), g.Text(s.Icon)),
						H3(g.Text(s.Title)),
						P(g.Text(s.Description)),
					)
				}),
			),
		),
	)
}

func PricingSection(tiers []domain.PricingTier) g.Node {
	return Section(
		ID("pricing"),
		Class("section section-light"),
		Div(
			Class("container"),
			sectionHeading("Your Journey to AI Transformation", "Three paths, one destination: Accessible intelligence", false),
			Div(
				Class("grid grid-3"),
				g.Map(tiers, pricingCard),
			),
		),
	)
}

func pricingCard(tier domain.PricingTier) g.Node {
	cardClass := "card card-light pricing-card"
	if tier.Featured {
		cardClass += " featured"
	}
	buttonClass := "btn btn-block btn-gray"
	if tier.Primary {
		buttonClass = "btn btn-block btn-primary"
	}

	return Div(
		Class(cardClass),
		g.If(tier.Featured, Div(Class("badge"), g.Text("POPULAR"))),
		Div(
			Class("tier-badge"),
			P(g.Text(tier.Icon)),
		),
		H3(g.Text(tier.Name)),
		P(Class("tier-description"), g.Text(tier.Description)),
		Div(
			Class("tier-price"),
			P(Class("price"), g.Text(tier.Pricing)),
			P(Class("timeline"), g.Text(tier.Timeline)),
		),
		ContactTrigger(tier.ButtonText, tier.ServiceID, buttonClass),
	)
}

func BlogSection(posts []domain.BlogPost) g.Node {
	return Section(
		ID("blog"),
		Class("section section-dark"),
		rings("rings-top-left"),
		Div(
			Class("container"),
			sectionHeading("From the Anvil: Our Latest Insights", "", true),
			Div(
				Class("grid grid-3"),
				g.Map(posts, func(p domain.BlogPost) g.Node {
					return Article(
						Class("card card-dark blog-card"),
						Div(Class("blog-image "+p.Gradient)),
						Div(
							Class("blog-body"),
							H3(g.Text(p.Title)),
							P(g.Text(p.Summary)),
							A(Href("/blog/"+p.Slug), Class("read-more"), g.Text("Read More →")),
						),
					)
				}),
			),
		),
	)
}
