// Package view renders the site with gomponents. Components take content
// records and return nodes; nothing here holds state or performs I/O beyond
// writing the rendered document.
package view

import (
	"io"
	"strconv"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/truepath/advocates-site/internal/domain"
)

// DefaultStaticPrefix is where the embedded assets are served.
const DefaultStaticPrefix = "/static"

// PageOptions carries the values a page needs that are not content.
type PageOptions struct {
	// Year is printed in the footer. Zero means the current year.
	Year int

	// StaticPrefix is the URL path of the embedded assets.
	StaticPrefix string

	// CopyResetDelay is how long copy buttons show their acknowledgement.
	CopyResetDelay time.Duration
}

func (o PageOptions) year() int {
	if o.Year > 0 {
		return o.Year
	}

	return time.Now().Year()
}

func (o PageOptions) asset(name string) string {
	prefix := o.StaticPrefix
	if prefix == "" {
		prefix = DefaultStaticPrefix
	}

	return strings.TrimSuffix(prefix, "/") + "/" + name
}

// Render writes a node to w.
func Render(w io.Writer, n g.Node) error {
	return n.Render(w)
}

// String renders a node to a string.
func String(n g.Node) (string, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}

	return b.String(), nil
}

func document(title, description string, opts PageOptions, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       title,
		Description: description,
		Language:    "en",
		Head: []g.Node{
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.Link(h.Rel("icon"), h.Href(opts.asset("favicon.svg")), h.Type("image/svg+xml")),
			h.Script(h.Src("https://cdn.tailwindcss.com")),
			h.Script(h.Src(opts.asset("site.js")), h.Defer()),
		},
		Body: []g.Node{
			h.Class("min-h-screen bg-white text-slate-800"),
			g.Group(body),
		},
	})
}

// Header renders the sticky brand bar with in-page navigation and the
// call-to-action links.
func Header(site *domain.Site) g.Node {
	return h.Header(h.Class("sticky top-0 z-40 backdrop-blur bg-white/80 border-b"),
		h.Div(h.Class("max-w-7xl mx-auto px-6 py-3 flex items-center justify-between"),
			h.A(h.Href("#"), h.Class("flex items-center gap-3"),
				Logo("w-10 h-10"),
				h.Span(h.Class("text-xl font-bold tracking-tight"), g.Text(site.Name)),
			),
			navLinks(site.Nav, "hidden md:flex items-center gap-6 text-sm", "hover:text-cyan-600"),
			h.Div(h.Class("hidden md:flex items-center gap-3"),
				g.Map(site.Actions, headerAction),
			),
		),
	)
}

// headerAction renders a call to action. The link to the contact form is
// marked with a check.
func headerAction(link domain.NavLink) g.Node {
	class := "inline-flex items-center gap-2 rounded-2xl px-4 py-2 text-white shadow hover:-translate-y-0.5 transition "

	if link.Anchor == domain.SectionContact {
		return h.A(h.Href(link.Href()), h.Class(class+"bg-slate-900"), CheckIcon(), g.Text(link.Label))
	}

	return h.A(h.Href(link.Href()), h.Class(class+"bg-black"), g.Text(link.Label))
}

func navLinks(links []domain.NavLink, class, linkClass string) g.Node {
	return h.Nav(h.Class(class),
		g.Map(links, func(link domain.NavLink) g.Node {
			return h.A(h.Href(link.Href()), h.Class(linkClass), g.Text(link.Label))
		}),
	)
}

// Footer renders the brand, the section links, the copyright line and the
// business email.
func Footer(site *domain.Site, year int) g.Node {
	return h.Footer(h.Class("py-10 border-t"),
		h.Div(h.Class("max-w-7xl mx-auto px-6 flex flex-col md:flex-row items-center justify-between gap-4 text-sm text-slate-600"),
			h.Div(h.Class("flex items-center gap-3"),
				Logo("w-6 h-6"),
				h.Span(h.Class("font-semibold text-slate-800"), g.Text(site.Name)),
			),
			navLinks(site.Nav, "flex gap-6", "hover:text-slate-900"),
			h.Div(h.Class("flex flex-col items-center md:items-end gap-1"),
				h.A(h.Href("mailto:"+site.BusinessEmail), h.Class("hover:text-cyan-600"), g.Text(site.BusinessEmail)),
				h.P(h.Class("text-xs text-slate-500"), g.Text("© "+strconv.Itoa(year)+" "+site.Name+". All rights reserved.")),
			),
		),
	)
}
