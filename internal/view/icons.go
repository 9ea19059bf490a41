package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/truepath/advocates-site/internal/domain"
)

func svg(viewBox, class string, children ...g.Node) g.Node {
	return g.El("svg", g.Attr("viewBox", viewBox), h.Class(class), g.Group(children))
}

func path(d string, attrs ...g.Node) g.Node {
	return g.El("path", g.Attr("d", d), g.Group(attrs))
}

func stop(offset, color string) g.Node {
	return g.El("stop", g.Attr("offset", offset), g.Attr("stop-color", color))
}

// Logo draws the brand mark: a sun over a rising path.
func Logo(class string) g.Node {
	return svg("0 0 200 200", class,
		h.Aria("label", "TruePath Advocates logo"),
		h.Role("img"),
		g.El("defs",
			g.El("linearGradient", h.ID("pathGrad"), g.Attr("x1", "0"), g.Attr("x2", "1"), g.Attr("y1", "0"), g.Attr("y2", "1"),
				stop("0%", "#05C3DD"),
				stop("50%", "#7C3AED"),
				stop("100%", "#FF6A00"),
			),
			g.El("radialGradient", h.ID("sunGrad"), g.Attr("cx", "50%"), g.Attr("cy", "50%"), g.Attr("r", "60%"),
				stop("0%", "#FFD54A"),
				stop("100%", "#FFA31A"),
			),
		),
		g.El("circle", g.Attr("cx", "160"), g.Attr("cy", "40"), g.Attr("r", "22"), g.Attr("fill", "url(#sunGrad)")),
		path("M10 170c50-80 80-60 120-120",
			g.Attr("stroke", "url(#pathGrad)"),
			g.Attr("stroke-width", "16"),
			g.Attr("fill", "none"),
			g.Attr("stroke-linecap", "round"),
		),
	)
}

// CheckIcon draws the green tick used in lists and buttons.
func CheckIcon() g.Node {
	return svg("0 0 24 24", "w-6 h-6 text-emerald-600",
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		path("M20 6L9 17l-5-5", g.Attr("stroke-linecap", "round"), g.Attr("stroke-linejoin", "round")),
	)
}

var providerPaths = map[domain.Icon]string{
	domain.IconVenmo:   "M19.8 4.8c.4.7.6 1.6.6 2.7 0 2.6-2.1 6.7-3.8 9.5h-4.6l-2.4-14h4l1.3 10.5c1.2-2 2.7-5.2 2.7-7.4 0-.9-.2-1.5-.4-2.1l3-1.2z",
	domain.IconCashApp: "M12 2c5.5 0 10 4.5 10 10s-4.5 10-10 10S2 17.5 2 12 6.5 2 12 2zm.6 5.2c-1.4 0-2.4.8-2.8 2.1l-2 .6.5 1.7 1.8-.5c.2 1 .8 1.7 2 2l-.5 1.8 1.7.5.6-2c1.4 0 2.4-.8 2.8-2.1l2-.6-.5-1.7-1.8.5c-.2-1-.8-1.7-2-2l.5-1.8-1.7-.5-.6 2z",
	domain.IconZelle:   "M4 6h16v3H9l11 9v3H4v-3h11L4 9V6z",
	domain.IconPayPal:  "M7.5 20H5l2-14h6.5c4 0 6.5 1.7 6.5 5.2 0 4.2-3 6.8-7.7 6.8h-2L9.5 20z",
}

// Icon draws a named icon. Unknown names fall back to the brand mark.
func Icon(icon domain.Icon, class string) g.Node {
	switch icon {
	case domain.IconCheck:
		return CheckIcon()
	case domain.IconLogo:
		return Logo(class)
	}

	d, ok := providerPaths[icon]
	if !ok {
		return Logo(class)
	}

	return svg("0 0 24 24", class, h.Aria("hidden", "true"), path(d))
}
