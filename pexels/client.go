// Package pexels is a minimal client for the Pexels photo search API.
// Only the fields the gallery actually displays are decoded.
package pexels

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rohanthewiz/serr"
)

// PhotoSrc holds the rendition URLs for a photo. Large is what the gallery shows.
type PhotoSrc struct {
	Original string `json:"original,omitempty"`
	Large    string `json:"large"`
	Medium   string `json:"medium,omitempty"`
}

// Photo is one search hit as Pexels returns it.
type Photo struct {
	ID           int      `json:"id,omitempty"`
	Width        int      `json:"width,omitempty"`
	Height       int      `json:"height,omitempty"`
	URL          string   `json:"url"`
	Alt          string   `json:"alt,omitempty"`
	Photographer string   `json:"photographer"`
	Src          PhotoSrc `json:"src"`
}

// SearchResult is the decoded body of a successful search response.
type SearchResult struct {
	TotalResults int     `json:"total_results"`
	Page         int     `json:"page"`
	PerPage      int     `json:"per_page"`
	Photos       []Photo `json:"photos"`
}

// UpstreamError represents a non-2xx response from the Pexels API.
// Body keeps the raw response bytes so callers can forward the upstream
// error payload verbatim when it was valid JSON.
type UpstreamError struct {
	StatusCode int
	Message    string
	Body       []byte
	BodyIsJSON bool
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// Client talks to the Pexels search endpoint with a server-side API key.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		baseURL:    baseURL,
	}
}

// Search queries Pexels for photos matching query.
// A non-2xx status comes back as *UpstreamError; anything transport-level
// (DNS, refused connection, timeout) comes back as a wrapped error.
func (c *Client) Search(ctx context.Context, query string, page, perPage int) (*SearchResult, error) {
	qParams := url.Values{}
	qParams.Set("query", query)
	qParams.Set("page", strconv.Itoa(page))
	qParams.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+qParams.Encode(), nil)
	if err != nil {
		return nil, serr.Wrap(err, "failed to create search request")
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serr.Wrap(err, "failed to reach image API", "query", query)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newUpstreamError(resp)
	}

	result := &SearchResult{}
	if err = json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, serr.Wrap(err, "failed to decode search response", "query", query)
	}
	return result, nil
}

// newUpstreamError classifies an error response body.
// The message comes from the body's "error" field when one exists; a JSON body
// without that field keeps the status code visible; a non-JSON body gets a
// fixed fallback.
func newUpstreamError(resp *http.Response) *UpstreamError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	upErr := &UpstreamError{StatusCode: resp.StatusCode, Body: body}

	errBody := struct {
		Error string `json:"error"`
	}{}
	if json.Unmarshal(body, &errBody) != nil {
		upErr.Message = "An unknown error occurred"
		return upErr
	}

	upErr.BodyIsJSON = true
	if errBody.Error != "" {
		upErr.Message = errBody.Error
	} else {
		upErr.Message = "HTTP error! Status: " + strconv.Itoa(resp.StatusCode)
	}
	return upErr
}
