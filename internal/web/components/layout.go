// Package components renders the Northern Forge pages with gomponents.
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	URL         string
	OGImage     string
	// BodyClass is set to "overflow-hidden" while the contact modal holds the
	// scroll lock
	BodyClass string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Northern Forge AI - Forging Accessible AI"
	}

	if config.Description == "" {
		config.Description = "Bespoke, privacy-first AI solutions for small and medium-sized businesses across the UK."
	}

	if config.OGImage == "" {
		config.OGImage = "/og-image.png"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.URL+config.OGImage)),
				g.If(config.URL != "", Meta(g.Attr("property", "og:url"), Content(config.URL))),

				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				g.If(config.BodyClass != "", Class(config.BodyClass)),
				g.Group(content),
			),
		),
	})
}
