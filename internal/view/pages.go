package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/truepath/advocates-site/internal/domain"
)

// Page names used for metrics and export paths.
const (
	PageHome     = "home"
	PageThanks   = "thanks"
	PageNotFound = "not_found"
)

// HomePage composes the single marketing page. Sections appear in the order
// services, about, pricing, donate, contact.
func HomePage(site *domain.Site, opts PageOptions) g.Node {
	return document(site.Name, site.Hero.Lead, opts,
		Header(site),
		h.Main(
			Hero(site.Hero),
			Section(site.ServicesHeading, "bg-white",
				h.Div(h.Class("mt-12 grid md:grid-cols-3 gap-6"),
					g.Map(site.Services, ServiceCard),
				),
			),
			Section(site.AboutHeading, "bg-slate-50",
				h.Div(h.Class("mt-12 grid md:grid-cols-2 gap-10"),
					h.Ul(h.Class("space-y-3"), g.Map(site.Reasons, CheckItem)),
					h.Div(h.Class("rounded-3xl bg-white p-8 border shadow-sm"),
						h.H3(h.Class("font-semibold text-lg"), g.Text(site.StepsTitle)),
						h.Ol(h.Class("mt-4 space-y-2 list-decimal list-inside text-slate-700"),
							g.Map(site.Steps, func(s string) g.Node { return h.Li(g.Text(s)) }),
						),
					),
				),
			),
			Section(site.PricingHeading, "bg-white",
				h.Div(h.Class("mt-12 grid md:grid-cols-3 gap-6"),
					g.Map(site.Pricing, PricingCard),
				),
			),
			Section(site.DonateHeading, "bg-slate-50",
				h.Div(h.Class("mt-12 grid md:grid-cols-2 lg:grid-cols-4 gap-6"),
					g.Map(site.Donations, func(d domain.DonationChannel) g.Node {
						return DonationCard(d, opts.CopyResetDelay)
					}),
				),
			),
			Section(site.ContactHeading, "bg-white",
				h.Div(h.Class("max-w-2xl mx-auto"),
					g.If(site.EmailPrompt != "",
						h.P(h.Class("mt-6 text-sm text-slate-700 text-center"),
							g.Text(site.EmailPrompt+" "),
							h.A(h.Href("mailto:"+site.BusinessEmail), h.Class("font-semibold underline underline-offset-4"), g.Text(site.BusinessEmail)),
						),
					),
					ContactForm(site.Contact, site.PrivacyNote),
				),
			),
		),
		Footer(site, opts.year()),
	)
}

// Hero renders the header band with the headline, stats, and highlights.
func Hero(hero domain.Hero) g.Node {
	return h.Section(h.Class("relative overflow-hidden bg-gradient-to-br from-cyan-500 via-violet-600 to-orange-500 text-white"),
		h.Div(h.Class("max-w-7xl mx-auto px-6 py-20 grid md:grid-cols-2 gap-10 items-center"),
			h.Div(
				h.Span(h.Class("inline-block rounded-full bg-white/20 px-3 py-1 text-xs font-semibold"), g.Text(hero.Badge)),
				h.H1(h.Class("mt-4 text-4xl md:text-5xl font-extrabold leading-tight"),
					g.Text(hero.Headline+" "),
					h.Span(h.Class("text-yellow-200"), g.Text(hero.HeadlineAccent)),
				),
				h.P(h.Class("mt-4 text-lg opacity-95"), g.Text(hero.Lead)),
				h.Div(h.Class("mt-8 flex flex-wrap gap-3"),
					g.Map(hero.Actions, heroAction),
				),
				h.Div(h.Class("mt-10 grid grid-cols-3 gap-4"),
					g.Map(hero.Stats, StatCard),
				),
			),
			g.If(len(hero.Highlights) > 0,
				h.Div(h.Class("rounded-3xl bg-white text-slate-800 p-6 shadow-2xl grid sm:grid-cols-2 gap-4"),
					g.Map(hero.Highlights, HighlightCard),
				),
			),
		),
	)
}

// heroAction renders a hero button. Contact links get the filled style.
func heroAction(link domain.NavLink) g.Node {
	class := "rounded-xl border border-white/60 px-5 py-3 font-semibold"
	if link.Anchor == domain.SectionContact {
		class = "rounded-xl bg-white text-slate-900 px-5 py-3 font-semibold shadow"
	}

	return h.A(h.Href(link.Href()), h.Class(class), g.Text(link.Label))
}

// ThanksPage acknowledges a contact form submission and links back to the
// contact section of the home page.
func ThanksPage(site *domain.Site, opts PageOptions) g.Node {
	return document(site.Thanks.Title+" | "+site.Name, "", opts,
		h.Main(h.Class("min-h-screen flex items-center justify-center px-6"),
			h.Div(h.Class("max-w-lg text-center"),
				Logo("w-16 h-16 mx-auto"),
				h.H1(h.Class("mt-6 text-3xl font-bold"), g.Text(site.Thanks.Title)),
				h.P(h.Class("mt-3 text-slate-600"), g.Text(site.Thanks.Message)),
				h.A(
					h.Href("/#"+domain.SectionContact),
					h.Class("mt-8 inline-flex rounded-xl bg-slate-900 text-white px-6 py-3 font-semibold"),
					g.Text(site.Thanks.BackLabel),
				),
			),
		),
	)
}

// NotFoundPage is shown for unknown paths.
func NotFoundPage(site *domain.Site, opts PageOptions) g.Node {
	return document("Page not found | "+site.Name, "", opts,
		h.Main(h.Class("min-h-screen flex items-center justify-center px-6"),
			h.Div(h.Class("max-w-lg text-center"),
				h.H1(h.Class("text-3xl font-bold"), g.Text("Page not found")),
				h.A(h.Href("/"), h.Class("mt-6 inline-flex text-cyan-700 underline"), g.Text("Go to the home page")),
			),
		),
	)
}
