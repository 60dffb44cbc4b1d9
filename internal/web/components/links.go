package components

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContactHref is the link that opens the contact modal, optionally seeding the
// service interest with category.
func ContactHref(category string) string {
	q := url.Values{}
	q.Set("contact", "open")
	if category != "" {
		q.Set("service", category)
	}
	return "/?" + q.Encode() + "#contact-modal"
}

// ContactTrigger is any control that opens the contact modal
func ContactTrigger(label, category, class string) g.Node {
	return A(
		Href(ContactHref(category)),
		Class(class),
		g.Attr("data-contact-trigger", category),
		g.Text(label),
	)
}

func anchorHref(anchor string) string {
	return "/#" + anchor
}
