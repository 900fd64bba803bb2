package pages

import (
	"github.com/rohanthewiz/element"

	"photosearch/pexels"
)

// Gallery renders search results as gallery items, preserving response order.
type Gallery struct {
	Photos []pexels.Photo
}

// Render implements element.Component
func (g Gallery) Render(b *element.Builder) (x any) {
	element.ForEach(g.Photos, func(photo pexels.Photo) {
		// A photo without a large rendition can't be displayed; skip it
		// rather than emit a broken img tag.
		if photo.Src.Large == "" {
			return
		}

		altText := photo.Alt
		if altText == "" {
			altText = "A photo by " + photo.Photographer
		}

		b.DivClass("gallery-item").R(
			b.Img("src", photo.Src.Large,
				"alt", altText,
				"loading", "lazy"),
			// Overlay links to the photo's page on Pexels. noopener/noreferrer
			// keeps the opened page from reaching back to this window.
			b.A("href", photo.URL,
				"target", "_blank",
				"rel", "noopener noreferrer",
				"class", "overlay").R(
				b.SpanClass("caption").T("📷 "+photo.Photographer),
			),
		)
	})
	return
}

// Message renders a single status line in the gallery container. It is the
// only thing shown for empty queries, empty results, and failures.
type Message struct {
	Text string
}

// Render implements element.Component
func (m Message) Render(b *element.Builder) (x any) {
	b.P("class", "gallery-message").T(m.Text)
	return
}

// RenderGallery returns the gallery items as an HTML fragment
func RenderGallery(photos []pexels.Photo) string {
	b := element.NewBuilder()
	element.RenderComponents(b, Gallery{Photos: photos})
	return b.String()
}

// RenderMessage returns a single status message as an HTML fragment
func RenderMessage(text string) string {
	b := element.NewBuilder()
	element.RenderComponents(b, Message{Text: text})
	return b.String()
}
