package view

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/truepath/advocates-site/internal/app"
	"github.com/truepath/advocates-site/internal/domain"
)

// Section renders an anchor-addressable block with a centred heading. The
// subtitle paragraph is omitted when the heading has none.
func Section(heading domain.SectionHeading, class string, children ...g.Node) g.Node {
	return h.Section(h.ID(heading.ID), h.Class("py-20 "+class),
		h.Div(h.Class("max-w-7xl mx-auto px-6"),
			h.Div(h.Class("text-center max-w-2xl mx-auto"),
				h.H2(h.Class("text-3xl md:text-4xl font-bold tracking-tight"), g.Text(heading.Title)),
				g.If(heading.Subtitle != "",
					h.P(h.Class("mt-3 text-slate-600"), g.Text(heading.Subtitle)),
				),
			),
			g.Group(children),
		),
	)
}

// StatCard renders a headline figure.
func StatCard(stat domain.Stat) g.Node {
	return h.Div(h.Class("rounded-2xl p-4 bg-white/10 border border-white/20 text-center"),
		h.Div(h.Class("text-2xl font-bold"), g.Text(stat.Value)),
		h.Div(h.Class("text-xs opacity-90"), g.Text(stat.Label)),
	)
}

// HighlightCard renders a tinted card in the hero panel.
func HighlightCard(hl domain.Highlight) g.Node {
	return h.Div(h.Class("rounded-2xl bg-"+hl.Tint+"-50 p-5 border border-"+hl.Tint+"-100"),
		h.Div(h.Class("font-semibold"), g.Text(hl.Title)),
		h.P(h.Class("text-sm text-slate-600 mt-1"), g.Text(hl.Description)),
	)
}

// ServiceCard renders one service with its icon.
func ServiceCard(svc domain.Service) g.Node {
	return h.Div(h.Class("rounded-2xl border p-6 bg-white hover:shadow-lg transition"),
		h.Div(h.Class("flex items-center gap-3"),
			Icon(svc.Icon, "w-8 h-8"),
			h.H3(h.Class("font-semibold text-lg"), g.Text(svc.Title)),
		),
		h.P(h.Class("mt-3 text-slate-600"), g.Text(svc.Description)),
	)
}

// CheckItem renders a list item led by a check mark.
func CheckItem(text string) g.Node {
	return h.Li(h.Class("flex items-start gap-3"),
		CheckIcon(),
		h.Span(g.Text(text)),
	)
}

// PricingCard renders a tier. The call to action jumps to the contact form.
func PricingCard(tier domain.PricingTier) g.Node {
	card := "rounded-3xl border p-8 bg-white"
	if tier.Featured {
		card = "rounded-3xl border-2 border-" + tier.Accent + "-400 p-8 bg-white shadow-xl"
	}

	return h.Div(h.Class(card),
		h.H3(h.Class("text-xl font-semibold"), g.Text(tier.Name)),
		h.P(h.Class("mt-2 text-4xl font-extrabold"), g.Text(tier.Price)),
		h.P(h.Class("mt-2 text-slate-600"), g.Text(tier.Description)),
		h.Ul(h.Class("mt-6 space-y-2 text-slate-700"),
			g.Map(tier.Features, CheckItem),
		),
		h.A(
			h.Href("#"+domain.SectionContact),
			h.Class("mt-8 inline-flex w-full justify-center rounded-xl bg-"+tier.Accent+"-600 text-white px-4 py-2 font-semibold"),
			g.Text(tier.CTALabel),
		),
	)
}

type themeStyle struct {
	card, title, description, button string
}

var themes = map[domain.Theme]themeStyle{
	domain.ThemeVenmo: {
		card:        "bg-sky-50 border-sky-100",
		title:       "text-sky-700",
		description: "text-sky-600",
		button:      "bg-sky-600 hover:bg-sky-700",
	},
	domain.ThemeCashApp: {
		card:        "bg-emerald-50 border-emerald-100",
		title:       "text-emerald-700",
		description: "text-emerald-600",
		button:      "bg-emerald-600 hover:bg-emerald-700",
	},
	domain.ThemeZelle: {
		card:        "bg-violet-50 border-violet-100",
		title:       "text-violet-700",
		description: "text-violet-600",
		button:      "bg-violet-600 hover:bg-violet-700",
	},
	domain.ThemePayPal: {
		card:        "bg-amber-50 border-amber-100",
		title:       "text-amber-700",
		description: "text-amber-600",
		button:      "bg-amber-500 hover:bg-amber-600",
	},
}

// DonationCard renders a payment channel. Linked channels open the provider
// in a new browsing context without a referrer; copyable channels show the
// identifier with a copy button.
func DonationCard(d domain.DonationChannel, resetDelay time.Duration) g.Node {
	style, ok := themes[d.Theme]
	if !ok {
		style = themes[domain.ThemeVenmo]
	}

	buttonClass := "w-full inline-flex items-center justify-center rounded-xl text-white font-semibold px-4 py-3 " + style.button

	var action g.Node
	if d.Copyable() {
		action = g.Group{
			h.Div(h.Class("mb-3 text-sm break-all select-all rounded-lg bg-white/70 px-3 py-2 font-mono"), g.Text(d.CopyValue)),
			CopyButton(d.CopyValue, resetDelay, buttonClass),
			g.If(d.Hint != "", h.P(h.Class("mt-2 text-xs text-slate-500"), g.Text(d.Hint))),
		}
	} else {
		action = h.A(
			h.Href(d.URL),
			h.Target("_blank"),
			h.Rel("noreferrer"),
			h.Class(buttonClass),
			g.Text(d.CTALabel),
		)
	}

	return h.Div(h.Class("rounded-3xl border p-8 shadow-sm "+style.card),
		h.Div(h.Class("flex items-center gap-3 mb-4"),
			Icon(d.Icon, "w-7 h-7 "+style.title),
			h.H3(h.Class("text-xl font-bold "+style.title), g.Text(d.Provider)),
		),
		h.P(h.Class("mb-6 "+style.description), g.Text(d.Description)),
		action,
	)
}

// CopyButton renders a button that copies value to the clipboard. The
// static script reads the data attributes to swap the label for the reset
// delay.
func CopyButton(value string, resetDelay time.Duration, class string) g.Node {
	if resetDelay <= 0 {
		resetDelay = app.DefaultCopyResetDelay
	}

	return h.Button(
		h.Type("button"),
		h.Class(class),
		h.Data("copy-value", value),
		h.Data("idle-label", app.CopyIdleLabel),
		h.Data("copied-label", app.CopyDoneLabel),
		h.Data("reset-ms", strconv.FormatInt(resetDelay.Milliseconds(), 10)),
		h.Aria("live", "polite"),
		g.Text(app.CopyIdleLabel),
	)
}

// ContactForm renders the externally handled form. The hidden _next input
// tells the form handler where to send the browser afterwards.
func ContactForm(form domain.ContactForm, privacyNote string) g.Node {
	return h.Form(
		h.Action(form.Endpoint),
		h.Method(form.Method),
		h.Class("mt-10 grid gap-4 bg-white rounded-3xl p-8 border shadow-sm"),
		h.Input(h.Type("hidden"), h.Name("_next"), h.Value(form.NextURL)),
		g.Map(form.Fields, contactField),
		h.Button(
			h.Type("submit"),
			h.Class("mt-2 inline-flex justify-center rounded-xl bg-slate-900 text-white px-6 py-3 font-semibold hover:bg-slate-800"),
			g.Text(form.SubmitLabel),
		),
		g.If(privacyNote != "", h.P(h.Class("text-xs text-slate-500"), g.Text(privacyNote))),
	)
}

func contactField(f domain.ContactField) g.Node {
	const inputClass = "w-full rounded-xl border px-4 py-3"

	var control g.Node
	if f.Type == "textarea" {
		rows := f.Rows
		if rows <= 0 {
			rows = 5
		}

		control = h.Textarea(
			h.ID(f.Name),
			h.Name(f.Name),
			h.Rows(strconv.Itoa(rows)),
			g.If(f.Required, h.Required()),
			h.Class(inputClass),
		)
	} else {
		control = h.Input(
			h.ID(f.Name),
			h.Name(f.Name),
			h.Type(f.Type),
			g.If(f.Required, h.Required()),
			h.Class(inputClass),
		)
	}

	return h.Div(
		h.Label(h.For(f.Name), h.Class("block text-sm font-medium mb-1"), g.Text(f.Label)),
		control,
	)
}
