package domain

// Icon names an inline graphic the view layer knows how to draw.
type Icon string

// Icons used by the site content.
const (
	IconLogo    Icon = "logo"
	IconCheck   Icon = "check"
	IconVenmo   Icon = "venmo"
	IconCashApp Icon = "cashapp"
	IconZelle   Icon = "zelle"
	IconPayPal  Icon = "paypal"
)

// Theme selects the visual treatment of a donation card.
type Theme string

// Donation card themes, one per payment provider.
const (
	ThemeVenmo   Theme = "venmo"
	ThemeCashApp Theme = "cashapp"
	ThemeZelle   Theme = "zelle"
	ThemePayPal  Theme = "paypal"
)

// Section anchors. Navigation links and the acknowledgement page refer to these.
const (
	SectionServices = "services"
	SectionAbout    = "about"
	SectionPricing  = "pricing"
	SectionDonate   = "donate"
	SectionContact  = "contact"
)

// Service is one advocacy offering shown in the services grid.
type Service struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Icon        Icon   `json:"icon"        validate:"required"`
}

// Stat is a headline figure in the hero.
type Stat struct {
	Value string `json:"value" validate:"required"`
	Label string `json:"label" validate:"required"`
}

// Highlight is a small tinted card in the hero panel.
type Highlight struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Tint        string `json:"tint"        validate:"required"`
}

// PricingTier is one pricing card.
type PricingTier struct {
	Name        string   `json:"name"        validate:"required"`
	Price       string   `json:"price"       validate:"required"`
	Description string   `json:"description" validate:"required"`
	Features    []string `json:"features"    validate:"required,min=1,dive,required"`
	CTALabel    string   `json:"ctaLabel"    validate:"required"`

	// Featured tiers get the emphasised card treatment.
	Featured bool   `json:"featured"`
	Accent   string `json:"accent" validate:"required"`
}

// DonationChannel is a payment provider donors can use. A channel either
// links out to the provider (URL) or exposes an identifier to copy
// (CopyValue), never both.
type DonationChannel struct {
	Provider    string `json:"provider"            validate:"required"`
	Description string `json:"description"         validate:"required"`
	URL         string `json:"url,omitempty"       validate:"omitempty,url"`
	CopyValue   string `json:"copyValue,omitempty" validate:"omitempty,email"`
	CTALabel    string `json:"ctaLabel,omitempty"`
	Hint        string `json:"hint,omitempty"`
	Theme       Theme  `json:"theme" validate:"required,oneof=venmo cashapp zelle paypal"`
	Icon        Icon   `json:"icon"  validate:"required"`
}

// Copyable reports whether the channel is paid by copying an identifier.
func (d DonationChannel) Copyable() bool {
	return d.CopyValue != ""
}

// SectionHeading titles an anchor-addressable section. Subtitle is optional.
type SectionHeading struct {
	ID       string `json:"id"                 validate:"required"`
	Title    string `json:"title"              validate:"required"`
	Subtitle string `json:"subtitle,omitempty"`
}

// NavLink is an in-page navigation entry.
type NavLink struct {
	Label  string `json:"label"  validate:"required"`
	Anchor string `json:"anchor" validate:"required"`
}

// Href returns the fragment link for the anchor.
func (n NavLink) Href() string {
	return "#" + n.Anchor
}

// ContactField is one input of the contact form.
type ContactField struct {
	Name     string `json:"name"           validate:"required"`
	Label    string `json:"label"          validate:"required"`
	Type     string `json:"type"           validate:"required,oneof=text email textarea"`
	Required bool   `json:"required"`
	Rows     int    `json:"rows,omitempty" validate:"omitempty,min=1"`
}

// ContactForm declares the externally handled contact form. The endpoint
// receives the POST and redirects the browser to NextURL.
type ContactForm struct {
	Endpoint string         `json:"endpoint" validate:"required,url"`
	Method   string         `json:"method"   validate:"required,oneof=POST"`
	NextURL  string         `json:"next"     validate:"required"`
	Fields   []ContactField `json:"fields"   validate:"required,min=1,dive"`

	SubmitLabel string `json:"submitLabel" validate:"required"`
}

// RequiredFields returns the names of fields the browser must see filled in.
func (f ContactForm) RequiredFields() []string {
	names := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		if field.Required {
			names = append(names, field.Name)
		}
	}

	return names
}

// Hero holds the header copy.
type Hero struct {
	Badge          string      `json:"badge"          validate:"required"`
	Headline       string      `json:"headline"       validate:"required"`
	HeadlineAccent string      `json:"headlineAccent" validate:"required"`
	Lead           string      `json:"lead"           validate:"required"`
	Stats          []Stat      `json:"stats"          validate:"required,min=1,dive"`
	Highlights     []Highlight `json:"highlights"     validate:"dive"`

	// Actions are the hero's call-to-action buttons.
	Actions []NavLink `json:"actions" validate:"dive"`
}

// ThanksCopy is the text of the acknowledgement page.
type ThanksCopy struct {
	Title     string `json:"title"     validate:"required"`
	Message   string `json:"message"   validate:"required"`
	BackLabel string `json:"backLabel" validate:"required"`
}

// Site is the complete static content model of the site.
type Site struct {
	Name          string `json:"name"          validate:"required"`
	BusinessEmail string `json:"businessEmail" validate:"required,email"`

	Nav []NavLink `json:"nav" validate:"required,min=1,dive"`

	// Actions are the header's call-to-action links, shown beside Nav.
	Actions []NavLink `json:"actions" validate:"dive"`
	Hero    Hero      `json:"hero"`

	ServicesHeading SectionHeading `json:"servicesHeading"`
	Services        []Service      `json:"services" validate:"required,min=1,dive"`

	AboutHeading SectionHeading `json:"aboutHeading"`
	Reasons      []string       `json:"reasons"    validate:"dive,required"`
	StepsTitle   string         `json:"stepsTitle" validate:"required"`
	Steps        []string       `json:"steps"      validate:"dive,required"`

	PricingHeading SectionHeading `json:"pricingHeading"`
	Pricing        []PricingTier  `json:"pricing" validate:"required,min=1,dive"`

	DonateHeading SectionHeading    `json:"donateHeading"`
	Donations     []DonationChannel `json:"donations" validate:"dive"`

	ContactHeading SectionHeading `json:"contactHeading"`
	Contact        ContactForm    `json:"contact"`
	PrivacyNote    string         `json:"privacyNote"`

	// EmailPrompt introduces the mailto link above the contact form.
	EmailPrompt string `json:"emailPrompt"`

	Thanks ThanksCopy `json:"thanks"`
}

// Links returns every in-page link the content declares: nav, header
// actions, then hero actions.
func (s *Site) Links() []NavLink {
	links := make([]NavLink, 0, len(s.Nav)+len(s.Actions)+len(s.Hero.Actions))
	links = append(links, s.Nav...)
	links = append(links, s.Actions...)

	return append(links, s.Hero.Actions...)
}

// Headings returns the section headings in page order.
func (s *Site) Headings() []SectionHeading {
	return []SectionHeading{
		s.ServicesHeading,
		s.AboutHeading,
		s.PricingHeading,
		s.DonateHeading,
		s.ContactHeading,
	}
}

// CopyableDonation returns the first donation channel paid by copying an
// identifier, if any.
func (s *Site) CopyableDonation() (DonationChannel, bool) {
	for _, d := range s.Donations {
		if d.Copyable() {
			return d, true
		}
	}

	return DonationChannel{}, false
}
