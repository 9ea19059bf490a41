// Package content holds the site's hard-coded copy as plain data tables.
// Layout code in the view package consumes these records; editing copy never
// touches markup.
package content

import "github.com/truepath/advocates-site/internal/domain"

// Defaults for the values a deployment may override.
const (
	// DefaultBusinessEmail is the public contact and Zelle address.
	DefaultBusinessEmail = "truepathadvocates26@gmail.com"

	// DefaultFormEndpoint is the third-party form handler.
	DefaultFormEndpoint = "https://formspree.io/f/mgooejgr"

	// DefaultThanksPath is where the form handler redirects after a submission.
	DefaultThanksPath = "/thanks"

	// SiteName is the business name shown in the header and footer.
	SiteName = "TruePath Advocates"
)

// Options carries deployment-specific values.
type Options struct {
	BusinessEmail string
	FormEndpoint  string

	// NextURL is sent as the form's redirect target.
	NextURL string
}

// DefaultOptions returns the production values.
func DefaultOptions() Options {
	return Options{
		BusinessEmail: DefaultBusinessEmail,
		FormEndpoint:  DefaultFormEndpoint,
		NextURL:       DefaultThanksPath,
	}
}

// New builds the site content. Every call returns an independent value.
func New(opts Options) *domain.Site {
	if opts.BusinessEmail == "" {
		opts.BusinessEmail = DefaultBusinessEmail
	}

	if opts.FormEndpoint == "" {
		opts.FormEndpoint = DefaultFormEndpoint
	}

	if opts.NextURL == "" {
		opts.NextURL = DefaultThanksPath
	}

	return &domain.Site{
		Name:          SiteName,
		BusinessEmail: opts.BusinessEmail,
		Nav: []domain.NavLink{
			{Label: "Services", Anchor: domain.SectionServices},
			{Label: "About", Anchor: domain.SectionAbout},
			{Label: "Pricing", Anchor: domain.SectionPricing},
			{Label: "Contact", Anchor: domain.SectionContact},
		},
		Actions: []domain.NavLink{
			{Label: "Free Consultation", Anchor: domain.SectionContact},
			{Label: "Donate", Anchor: domain.SectionDonate},
		},
		Hero: hero(),

		ServicesHeading: domain.SectionHeading{
			ID:       domain.SectionServices,
			Title:    "What We Do",
			Subtitle: "Practical, patient-first advocacy you can count on.",
		},
		Services: services(),

		AboutHeading: domain.SectionHeading{
			ID:       domain.SectionAbout,
			Title:    "Why TruePath?",
			Subtitle: "Local. Compassionate. Relentless about getting you answers.",
		},
		Reasons: []string{
			"Bay Area roots with a community-first approach",
			"Clear, plain-English explanations at every step",
			"Fast turnaround and proactive follow-ups",
			"Strict confidentiality and HIPAA-conscious workflows",
		},
		StepsTitle: "How it works",
		Steps: []string{
			"Free 15-minute call to understand your situation.",
			"Sign a service agreement & confidentiality form.",
			"We gather documents and create your action plan.",
			"We execute the plan and keep you updated.",
		},

		PricingHeading: domain.SectionHeading{
			ID:       domain.SectionPricing,
			Title:    "Simple Pricing",
			Subtitle: "Transparent options — pick what fits your needs.",
		},
		Pricing: pricing(),

		DonateHeading: domain.SectionHeading{
			ID:       domain.SectionDonate,
			Title:    "Donate",
			Subtitle: "Your support helps TruePath Advocates continue serving our community. Thank you.",
		},
		Donations: donations(opts.BusinessEmail),

		ContactHeading: domain.SectionHeading{
			ID:       domain.SectionContact,
			Title:    "Let’s Talk",
			Subtitle: "Fill this out and we’ll reach out within 1 business day.",
		},
		Contact:     contactForm(opts.FormEndpoint, opts.NextURL),
		PrivacyNote: "By submitting, you agree to our privacy policy.",
		EmailPrompt: "Prefer email instead?",

		Thanks: domain.ThanksCopy{
			Title:     "Thank you!",
			Message:   "We received your message. A TruePath Advocate will reach out within 1 business day.",
			BackLabel: "Back to Contact Form",
		},
	}
}

func hero() domain.Hero {
	return domain.Hero{
		Badge:          "Now accepting new clients in the Bay Area",
		Headline:       "Guiding You Through",
		HeadlineAccent: "Healthcare’s Maze",
		Lead: "We help you understand benefits, resolve billing issues, navigate Medi-Cal/Medicare, " +
			"and fight claim denials — with care and clarity.",
		Stats: []domain.Stat{
			{Value: "24–72h", Label: "Typical Resolution Window"},
			{Value: "$99", Label: "Flat Benefit Review"},
			{Value: "5★", Label: "Client Care Focus"},
		},
		Highlights: []domain.Highlight{
			{Title: "Insurance Paperwork", Description: "We break down EOBs and handle forms step-by-step.", Tint: "cyan"},
			{Title: "Claim Appeals", Description: "We prepare strong appeals for denied claims.", Tint: "fuchsia"},
			{Title: "Bill Reviews", Description: "Spot errors, negotiate, and set payment plans.", Tint: "orange"},
			{Title: "Medi-Cal & Medicare", Description: "Eligibility, applications, and follow-through.", Tint: "emerald"},
		},
	}
}

func services() []domain.Service {
	list := []domain.Service{
		{
			Title:       "Insurance Paperwork Support",
			Description: "From forms to EOBs, we translate the jargon and handle the steps so you don’t have to.",
		},
		{
			Title:       "Claims & Denials Appeals",
			Description: "We assemble documentation and build a clear case to challenge unfair denials.",
		},
		{
			Title:       "Medical Bill Reviews",
			Description: "We check for coding errors, double charges, and help you negotiate workable plans.",
		},
		{
			Title:       "Medi-Cal & Medicare Navigation",
			Description: "Eligibility checks, applications, renewals, and benefits coordination.",
		},
		{
			Title:       "Provider Coordination",
			Description: "Warm handoffs, referrals, pre-authorizations, and records requests.",
		},
		{
			Title:       "Patient Rights Guidance",
			Description: "Know your rights. We help file grievances and escalate when needed.",
		},
		{
			Title: "DME, Medication & Incontinence Supplies",
			Description: "We assist with durable medical equipment (DME), medication coordination, and access to " +
				"incontinence supplies by working directly with providers, pharmacies, and supply vendors.",
		},
		{
			Title: "Medical Transportation Assistance",
			Description: "We help arrange and coordinate non-emergency medical transportation (NEMT), including " +
				"rides to appointments, therapy, and pharmacy visits, working with health plans and transportation providers.",
		},
		{
			Title: "Mental Health & Substance Use Treatment Resources",
			Description: "We help locate and connect clients with mental health facilities and substance use " +
				"treatment programs, including detox, outpatient, and residential rehabilitation services, " +
				"based on individual needs and coverage.",
		},
	}

	// Every service card carries the brand mark.
	for i := range list {
		list[i].Icon = domain.IconLogo
	}

	return list
}

func pricing() []domain.PricingTier {
	return []domain.PricingTier{
		{
			Name:        "Starter",
			Price:       "$99",
			Description: "Flat benefit review: coverage check + action plan.",
			Features:    []string{"Coverage review", "1 action plan", "1 week email support"},
			CTALabel:    "Get Started",
			Accent:      "cyan",
		},
		{
			Name:        "Advocacy",
			Price:       "$65/hr",
			Description: "Hands-on navigation, paperwork, calls, and follow-ups.",
			Features:    []string{"Forms & submissions", "Provider coordination", "Weekly updates"},
			CTALabel:    "Book Time",
			Featured:    true,
			Accent:      "fuchsia",
		},
		{
			Name:        "Claim Appeal",
			Price:       "$250",
			Description: "One formal appeal: documentation, letter, submission.",
			Features:    []string{"Records + evidence", "Appeal letter", "Submission & follow-up"},
			CTALabel:    "Start Appeal",
			Accent:      "orange",
		},
	}
}

func donations(zelleEmail string) []domain.DonationChannel {
	return []domain.DonationChannel{
		{
			Provider:    "Venmo",
			Description: "Quick & easy mobile payments",
			URL:         "https://venmo.com/u/TruepathAdvocates",
			CTALabel:    "Donate via Venmo",
			Theme:       domain.ThemeVenmo,
			Icon:        domain.IconVenmo,
		},
		{
			Provider:    "Cash App",
			Description: "Fast, simple donations",
			URL:         "https://cash.app/$Truepathadvocates",
			CTALabel:    "Donate via Cash App",
			Theme:       domain.ThemeCashApp,
			Icon:        domain.IconCashApp,
		},
		{
			Provider:    "Zelle",
			Description: "Send directly from your bank",
			CopyValue:   zelleEmail,
			Hint:        "If copy doesn’t work on some browsers, tap and hold the email to select/copy.",
			Theme:       domain.ThemeZelle,
			Icon:        domain.IconZelle,
		},
		{
			Provider:    "PayPal",
			Description: "Donate securely with PayPal",
			URL:         "https://www.paypal.com/ncp/payment/HTZK4BJMG4CJJ",
			CTALabel:    "Donate with PayPal",
			Theme:       domain.ThemePayPal,
			Icon:        domain.IconPayPal,
		},
	}
}

func contactForm(endpoint, next string) domain.ContactForm {
	return domain.ContactForm{
		Endpoint: endpoint,
		Method:   "POST",
		NextURL:  next,
		Fields: []domain.ContactField{
			{Name: "name", Label: "Full Name", Type: "text", Required: true},
			{Name: "email", Label: "Email", Type: "email", Required: true},
			{Name: "message", Label: "How can we help?", Type: "textarea", Rows: 5},
		},
	}
}
