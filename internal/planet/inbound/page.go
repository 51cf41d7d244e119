package inbound

import (
	g "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

const (
	pageTitle = "Potentially Habitable Planets"
	d3Source  = "https://d3js.org/d3.v7.min.js"
)

// frontendScripts are loaded in order; each one fetches /api/planets itself.
//
//nolint:gochecknoglobals // static page asset list
var frontendScripts = []string{
	"/static/js/script.js",
	"/static/js/D3/orbit.js",
	"/static/js/D3/starmap.js",
	"/static/js/D3/flux.js",
}

// indexPage is the landing page. It has no server-side data: the charts are
// drawn in the browser from the JSON endpoint.
func indexPage() g.Node {
	scripts := make([]g.Node, 0, len(frontendScripts)+1)
	scripts = append(scripts, html.Script(html.Src(d3Source)))
	for _, src := range frontendScripts {
		scripts = append(scripts, html.Script(html.Src(src)))
	}

	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(g.Text(pageTitle)),
				html.Link(html.Rel("stylesheet"), html.Href("/static/css/style.css")),
			),
			html.Body(
				html.Header(
					html.H1(g.Text(pageTitle)),
					html.P(g.Text("Exoplanets that might support life, compared by mass, radius, flux and temperature.")),
				),
				html.Main(
					section("comparison", "Compare planets",
						html.Select(html.ID("planet-select"), html.Multiple()),
						html.Button(html.ID("compare-btn"), html.Type("button"), g.Text("Compare")),
						html.Canvas(html.ID("comparison-chart")),
					),
					section("orbit", "Orbits",
						html.Div(html.ID("orbit-controls")),
						html.Div(html.ID("orbit-chart")),
					),
					section("starmap", "Host stars",
						html.Div(html.ID("starmap-chart")),
					),
					section("flux", "Temperature vs flux",
						html.Div(html.ID("temperature-flux-chart")),
					),
				),
				g.Group(scripts),
			),
		),
	)
}

func section(id, title string, children ...g.Node) g.Node {
	return html.Section(
		html.ID(id),
		html.Class("panel"),
		html.H2(g.Text(title)),
		g.Group(children),
	)
}
