// Package content holds the static copy rendered on the Northern Forge site.
package content

import "northern-forge-site/internal/domain"

const (
	QuoteCategory = "quote"

	SuccessNotice = "Thank you! We'll be in touch soon."
)

// Site returns the page content with blog teasers (no post bodies).
func Site() domain.SiteContent {
	return domain.SiteContent{
		CompanyName: "Northern Forge AI",
		Tagline:     "Forging Accessible AI",
		Blurb:       "We blend Baltic/Norse heritage with modern AI innovation to create bespoke solutions that empower SMBs across the UK.",
		Nav: []domain.NavLink{
			{Label: "Home", Anchor: "home"},
			{Label: "Our Story", Anchor: "our-story"},
			{Label: "Services", Anchor: "services"},
			{Label: "Pricing", Anchor: "pricing"},
			{Label: "Blog", Anchor: "blog"},
			{Label: "Contact", Anchor: "contact"},
		},
		Hero: domain.Hero{
			Heading:  "Forging Accessible AI for Tomorrow's Businesses",
			Subtitle: "We blend Baltic/Norse heritage with modern AI innovation to create bespoke solutions that empower your business.",
		},
		Problems: []domain.ProblemCard{
			{
				Icon:         "$",
				Title:        "The Cost Barrier",
				Description:  "Enterprise-level AI is often too expensive for small and medium-sized businesses, creating a significant barrier to entry.",
				Illustration: "Businessman + Price Tag Illustration",
			},
			{
				Icon:         "▦",
				Title:        "The One-Size-Fits-All Trap",
				Description:  "Generic AI solutions fail to address the unique and specific needs of individual businesses, leading to inefficient outcomes.",
				Illustration: "Character + Complex Machine Illustration",
			},
			{
				Icon:         "⛨",
				Title:        "The Privacy Paradox",
				Description:  "Leveraging the power of AI while ensuring data privacy and security is a major challenge for businesses of all sizes.",
				Illustration: "Guardian + Shield Illustration",
			},
		},
		Solutions: []domain.SolutionCard{
			{
				Icon:        "⬡",
				Title:       "Distributed Intelligence",
				Description: "Like a beehive, we use specialized AI workers for specific tasks. No massive models doing simple jobs.",
			},
			{
				Icon:        "↘",
				Title:       "Cost-Optimized Architecture",
				Description: "Our three-tier system activates only what you need, when you need it. Result? 60-80% cost reduction.",
			},
			{
				Icon:        "⛉",
				Title:       "Privacy-First Design",
				Description: "Open-source models you can deploy on-premise. Your data never leaves your control.",
			},
			{
				Icon:        "⚙",
				Title:       "SMB-Focused Customization",
				Description: "Fine-tuned for your industry, your workflow, your challenges. Not a generic chatbot.",
			},
		},
		Pricing: []domain.PricingTier{
			{
				Name:        "Starter Forge",
				Description: "Entry-level AI solution, ideal for small businesses or startups exploring AI.",
				Pricing:     "£14-18/hour",
				Timeline:    "2-4 weeks typical project",
				Icon:        "Simple Anvil Icon",
				ButtonText:  "Get Started",
				ServiceID:   "Starter Forge",
			},
			{
				Name:        "Master Forge",
				Description: "Custom AI solutions for established businesses seeking advanced capabilities.",
				Pricing:     "£20+/hour",
				Timeline:    "4+ weeks typical project",
				Icon:        "Complex Anvil + Sparks Icon",
				Featured:    true,
				ButtonText:  "Contact Us for Quote",
				Primary:     true,
				ServiceID:   "Master Forge",
			},
			{
				Name:        "Hive-Mind System",
				Description: "Fully integrated, scalable AI architecture. Subscription-based, launching Q2 2026.",
				Pricing:     "From £49/month",
				Timeline:    "Q2 2026 Launch",
				Icon:        "Hexagon Network Icon",
				ButtonText:  "Join Waitlist",
				ServiceID:   "Hive-Mind Waitlist",
			},
		},
		Posts: Posts(),
		Contact: domain.ContactInfo{
			Email:    "alex@northern-forge.com",
			Phone:    "+44 7405 929684",
			PhoneURI: "tel:+447405929684",
			Hours:    "Mon-Fri, 9AM-6PM GMT",
			Location: "Milton Keynes, UK",
		},
		Social: []domain.SocialLink{
			{Label: "LinkedIn", URL: "#"},
			{Label: "GitHub", URL: "#"},
			{Label: "Twitter", URL: "#"},
		},
		LegalName: "Northern Forge AI Limited",
	}
}
