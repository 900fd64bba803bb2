package pages

import (
	"strings"
	"testing"

	"photosearch/pexels"
)

// TestSearchPageRequiredIds verifies the page carries the element ids the
// styling and HTMX wiring depend on
func TestSearchPageRequiredIds(t *testing.T) {
	html := NewSearchPage().Render()

	for _, id := range []string{
		`id="search-form"`,
		`id="search-input"`,
		`id="image-gallery"`,
		`id="loader"`,
	} {
		if !strings.Contains(html, id) {
			t.Errorf("search page should contain %s", id)
		}
	}
}

// TestSearchPageHtmxWiring verifies the form drives the search cycle via HTMX
func TestSearchPageHtmxWiring(t *testing.T) {
	html := NewSearchPage().Render()

	if !strings.Contains(html, `hx-get="/api/search"`) {
		t.Error("form should submit to /api/search via hx-get")
	}
	if !strings.Contains(html, `hx-target="#image-gallery"`) {
		t.Error("results should be swapped into the gallery container")
	}
	if !strings.Contains(html, `hx-indicator="#loader"`) {
		t.Error("loading indicator should be driven by hx-indicator")
	}
	if !strings.Contains(html, `hx-sync="this:replace"`) {
		t.Error("overlapping submits should cancel the in-flight request")
	}
	if !strings.Contains(html, `name="query"`) {
		t.Error("search input should submit as the query parameter")
	}
}

func TestGalleryRendersPhotosInOrder(t *testing.T) {
	html := RenderGallery([]pexels.Photo{
		{URL: "p1", Photographer: "Jane", Src: pexels.PhotoSrc{Large: "u1"}},
		{URL: "p2", Photographer: "Jo", Src: pexels.PhotoSrc{Large: "u2"}},
	})

	first := strings.Index(html, `src="u1"`)
	second := strings.Index(html, `src="u2"`)
	if first == -1 || second == -1 {
		t.Fatalf("gallery should contain both image sources, got: %s", html)
	}
	if first > second {
		t.Error("gallery items should preserve response order")
	}

	if !strings.Contains(html, `href="p1"`) || !strings.Contains(html, `href="p2"`) {
		t.Error("each item should link to its photo page")
	}
	if strings.Count(html, "gallery-item") < 2 {
		t.Error("expected two gallery items")
	}
}

func TestGalleryItemAttributes(t *testing.T) {
	html := RenderGallery([]pexels.Photo{
		{URL: "p1", Photographer: "Jane", Src: pexels.PhotoSrc{Large: "u1"}},
	})

	if !strings.Contains(html, `loading="lazy"`) {
		t.Error("images should be lazy-loaded")
	}
	if !strings.Contains(html, `target="_blank"`) {
		t.Error("photo links should open in a new tab")
	}
	if !strings.Contains(html, `rel="noopener noreferrer"`) {
		t.Error("photo links need noopener noreferrer")
	}
	if !strings.Contains(html, "📷 Jane") {
		t.Error("caption should show the photographer with the camera glyph")
	}
}

func TestGalleryAltTextFallback(t *testing.T) {
	withAlt := RenderGallery([]pexels.Photo{
		{URL: "p1", Photographer: "Jane", Alt: "a mountain lake", Src: pexels.PhotoSrc{Large: "u1"}},
	})
	if !strings.Contains(withAlt, `alt="a mountain lake"`) {
		t.Error("alt text from the photo record should be used when present")
	}

	withoutAlt := RenderGallery([]pexels.Photo{
		{URL: "p1", Photographer: "Jane", Src: pexels.PhotoSrc{Large: "u1"}},
	})
	if !strings.Contains(withoutAlt, `alt="A photo by Jane"`) {
		t.Error("missing alt should fall back to 'A photo by {photographer}'")
	}
}

func TestGallerySkipsPhotosWithoutLargeURL(t *testing.T) {
	html := RenderGallery([]pexels.Photo{
		{URL: "p1", Photographer: "Jane"}, // no large rendition
		{URL: "p2", Photographer: "Jo", Src: pexels.PhotoSrc{Large: "u2"}},
	})

	if strings.Count(html, "<img") != 1 {
		t.Errorf("photo without a large URL should be skipped, got: %s", html)
	}
}

func TestMessageRendersSingleParagraph(t *testing.T) {
	html := RenderMessage("No images found. Try a different search term.")

	if !strings.Contains(html, "No images found. Try a different search term.") {
		t.Error("message text should be rendered verbatim")
	}
	if !strings.Contains(html, "gallery-message") {
		t.Error("message should carry the gallery-message class")
	}
	if strings.Contains(html, "<img") {
		t.Error("message partial should not contain images")
	}
}
