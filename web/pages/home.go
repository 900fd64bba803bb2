package pages

import "github.com/rohanthewiz/element"

// SearchPage is the single page of the app: a search form over the gallery.
type SearchPage struct {
	Title string
}

// NewSearchPage creates the search page instance
func NewSearchPage() SearchPage {
	return SearchPage{
		Title: "PhotoSearch - Find Stock Photos",
	}
}

// Render generates the complete HTML for the search page
func (p SearchPage) Render() string {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		p.renderHead(b),
		p.renderBody(b),
	)

	return b.String()
}

func (p SearchPage) renderHead(b *element.Builder) any {
	return b.Head().R(
		b.Meta("charset", "UTF-8"),
		b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
		b.Title().T(p.Title),
		b.Link("rel", "stylesheet", "href", "/static/css/app.css?v=1"),
		// HTMX drives the search form: request dispatch, loading indicator,
		// and swapping results into the gallery
		b.Script("src", "https://unpkg.com/htmx.org@1.9.12/dist/htmx.min.js").R(),
	)
}

func (p SearchPage) renderBody(b *element.Builder) any {
	return b.Body().R(
		b.Header("class", "site-header").R(
			b.H1().T("📷 PhotoSearch"),
		),

		b.DivClass("search-wrapper").R(
			// The form submits to the search endpoint and swaps the returned
			// partial into the gallery as one batch. hx-sync aborts any
			// in-flight request when the user submits again, so overlapping
			// submissions cannot interleave their renders.
			b.Form("id", "search-form",
				"hx-get", "/api/search",
				"hx-target", "#image-gallery",
				"hx-swap", "innerHTML",
				"hx-indicator", "#loader",
				"hx-sync", "this:replace").R(
				b.Input("type", "text",
					"id", "search-input",
					"name", "query",
					"placeholder", "Search for images...",
					"autocomplete", "off",
					"autofocus", "autofocus"),
				b.Button("type", "submit").T("Search"),
			),
		),

		// Loading indicator - visible only while a search request is in flight
		b.Div("id", "loader").R(),

		// Gallery container - holds rendered items or a single status message
		b.Div("id", "image-gallery").R(),
	)
}
