package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"

	"photosearch/pexels"
	"photosearch/search"
	"photosearch/web/pages"
)

// User-facing status messages. These exact strings are part of the UI
// contract and have tests against them.
const (
	MsgEmptyQuery  = "Please enter a search term."
	MsgNoResults   = "No images found. Try a different search term."
	MsgSearchError = "An error occurred while fetching images. Please try again later."
)

// SearchHandler serves GET /api/search in two modes: HTMX requests get the
// rendered gallery partial, everything else gets the JSON wire contract.
type SearchHandler struct {
	svc            search.Service
	defaultPerPage int
	maxPerPage     int
}

func NewSearchHandler(svc search.Service, defaultPerPage, maxPerPage int) *SearchHandler {
	return &SearchHandler{
		svc:            svc,
		defaultPerPage: defaultPerPage,
		maxPerPage:     maxPerPage,
	}
}

// Search handles GET /api/search?query=...&page=...&per_page=...
func (h *SearchHandler) Search(c rweb.Context) error {
	query := strings.TrimSpace(c.Request().QueryParam("query"))
	page := parseIntParam(c.Request().QueryParam("page"), 1)
	perPage := parseIntParam(c.Request().QueryParam("per_page"), h.defaultPerPage)
	if perPage > h.maxPerPage {
		perPage = h.maxPerPage
	}
	if perPage < 1 {
		perPage = h.defaultPerPage
	}
	if page < 1 {
		page = 1
	}

	if c.Request().Header("HX-Request") == "true" {
		return h.searchPartial(c, query, page, perPage)
	}
	return h.searchJSON(c, query, page, perPage)
}

// searchPartial runs the full search cycle server-side and returns exactly
// one of: gallery items, or a single status message. Error detail is logged,
// never rendered.
func (h *SearchHandler) searchPartial(c rweb.Context, query string, page, perPage int) error {
	c.Response().SetHeader("Content-Type", "text/html; charset=utf-8")

	// Empty query is a normal outcome, not an error, and makes no upstream call.
	if query == "" {
		return c.WriteHTML(pages.RenderMessage(MsgEmptyQuery))
	}

	result, err := h.svc.Search(context.Background(), query, page, perPage)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "search failed"), "showing generic error to user",
			"query", query, "request_id", requestID(c))
		// 200 on purpose - HTMX only swaps successful responses, and the
		// message is the content here.
		return c.WriteHTML(pages.RenderMessage(MsgSearchError))
	}

	if result == nil || len(result.Photos) == 0 {
		return c.WriteHTML(pages.RenderMessage(MsgNoResults))
	}

	logger.Info("Search rendered", "query", query, "count", len(result.Photos))
	return c.WriteHTML(pages.RenderGallery(result.Photos))
}

// searchJSON implements the wire contract: a photos array on success, an
// error object otherwise. Upstream API errors are forwarded with their
// status; transport failures surface as 503.
func (h *SearchHandler) searchJSON(c rweb.Context, query string, page, perPage int) error {
	if query == "" {
		c.SetStatus(http.StatusBadRequest)
		return c.WriteJSON(map[string]string{"error": "The 'query' parameter is required."})
	}

	result, err := h.svc.Search(context.Background(), query, page, perPage)
	if err != nil {
		var upErr *pexels.UpstreamError
		if errors.As(err, &upErr) {
			logger.LogErr(serr.Wrap(err, "upstream search error"), "forwarding upstream status",
				"query", query, "status", upErr.StatusCode, "request_id", requestID(c))
			c.SetStatus(upErr.StatusCode)
			if upErr.BodyIsJSON {
				c.Response().SetHeader("Content-Type", "application/json")
				return c.Bytes(upErr.Body)
			}
			return c.WriteJSON(map[string]string{"error": upErr.Message})
		}

		logger.LogErr(serr.Wrap(err, "search transport failure"),
			"query", query, "request_id", requestID(c))
		c.SetStatus(http.StatusServiceUnavailable)
		return c.WriteJSON(map[string]string{"error": "Could not connect to the image service."})
	}

	return c.WriteJSON(result)
}

func requestID(c rweb.Context) string {
	reqID, _ := c.Get("request_id").(string)
	return reqID
}

// parseIntParam parses an optional numeric query parameter, falling back to
// the default on absence or garbage rather than failing the request.
func parseIntParam(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
