package domain

import "time"

type NavLink struct {
	Label  string `json:"label"`
	Anchor string `json:"anchor"`
}

type Hero struct {
	Heading  string `json:"heading"`
	Subtitle string `json:"subtitle"`
}

type ProblemCard struct {
	Icon         string `json:"icon"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Illustration string `json:"illustration"`
}

type SolutionCard struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PricingTier is one card of the pricing grid. ServiceID is the category its
// call to action passes to the contact modal.
type PricingTier struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Pricing     string `json:"pricing"`
	Timeline    string `json:"timeline"`
	Icon        string `json:"icon"`
	Featured    bool   `json:"featured"`
	ButtonText  string `json:"buttonText"`
	Primary     bool   `json:"primary"`
	ServiceID   string `json:"serviceId"`
}

type BlogPost struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Gradient    string    `json:"gradient"`
	PublishedAt time.Time `json:"publishedAt"`
	// Markdown is the post body; empty in teaser listings
	Markdown string `json:"-"`
}

type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	PhoneURI string `json:"phoneUri"`
	Hours    string `json:"hours"`
	Location string `json:"location"`
}

type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// SiteContent is everything the single page renders
type SiteContent struct {
	CompanyName string         `json:"companyName"`
	Tagline     string         `json:"tagline"`
	Blurb       string         `json:"blurb"`
	Nav         []NavLink      `json:"nav"`
	Hero        Hero           `json:"hero"`
	Problems    []ProblemCard  `json:"problems"`
	Solutions   []SolutionCard `json:"solutions"`
	Pricing     []PricingTier  `json:"pricing"`
	Posts       []BlogPost     `json:"posts"`
	Contact     ContactInfo    `json:"contact"`
	Social      []SocialLink   `json:"social"`
	LegalName   string         `json:"legalName"`
}
