package brave

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/custodia-labs/brave-mcp/internal/core/domain"
	"github.com/custodia-labs/brave-mcp/internal/core/ports/driven"
)

const (
	// DefaultBaseURL is the Brave Search API root.
	DefaultBaseURL = "https://api.search.brave.com/res/v1"

	// MaxCount is the API maximum for the count parameter. Larger
	// requested counts are clamped, not rejected.
	MaxCount = 20
)

// Ensure Client implements the driven port.
var _ driven.SearchAPI = (*Client)(nil)

// Client talks to the Brave Search API. One Client (and its one HTTP
// session) is shared across all concurrent tool invocations for the
// process lifetime and released once via Close.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *RateLimiter
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL overrides the API root. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithRateLimits overrides the advisory limiter caps.
func WithRateLimits(perSecond, perMonth int) Option {
	return func(c *Client) { c.limiter = NewRateLimiter(perSecond, perMonth) }
}

// New creates a Brave API client. It fails with ErrMissingAPIKey when
// the subscription token is empty.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		httpClient: &http.Client{},
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		limiter:    NewRateLimiter(DefaultRequestsPerSecond, DefaultRequestsPerMonth),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Close releases the underlying connection pool. Call exactly once at
// shutdown.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// WebSearch performs a general web search. Count is silently clamped
// to MaxCount before the request is sent.
func (c *Client) WebSearch(ctx context.Context, query string, count, offset int) ([]domain.WebResult, error) {
	if count > MaxCount {
		count = MaxCount
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(count))
	params.Set("offset", strconv.Itoa(offset))

	var resp webSearchResponse
	if err := c.get(ctx, "/web/search", params, &resp); err != nil {
		return nil, err
	}

	if resp.Web == nil {
		return nil, nil
	}

	results := make([]domain.WebResult, len(resp.Web.Results))
	for i, r := range resp.Web.Results {
		results[i] = domain.WebResult{
			Title:       r.Title,
			Description: r.Description,
			URL:         r.URL,
		}
	}
	return results, nil
}

// LocationIDs discovers location ids for a local query via the web
// search endpoint with a locations result filter. Empty ids are
// skipped; order is preserved.
func (c *Client) LocationIDs(ctx context.Context, query string, count int) ([]string, error) {
	if count > MaxCount {
		count = MaxCount
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("search_lang", "en")
	params.Set("result_filter", "locations")
	params.Set("count", strconv.Itoa(count))

	var resp webSearchResponse
	if err := c.get(ctx, "/web/search", params, &resp); err != nil {
		return nil, err
	}

	if resp.Locations == nil {
		return nil, nil
	}

	ids := make([]string, 0, len(resp.Locations.Results))
	for _, loc := range resp.Locations.Results {
		if loc.ID != "" {
			ids = append(ids, loc.ID)
		}
	}
	return ids, nil
}

// POIs fetches point-of-interest details for the given location ids.
func (c *Client) POIs(ctx context.Context, ids []string) ([]domain.POI, error) {
	var resp poisResponse
	if err := c.get(ctx, "/local/pois", idParams(ids), &resp); err != nil {
		return nil, err
	}

	pois := make([]domain.POI, len(resp.Results))
	for i, r := range resp.Results {
		pois[i] = toPOI(r)
	}
	return pois, nil
}

// Descriptions fetches POI descriptions keyed by location id.
func (c *Client) Descriptions(ctx context.Context, ids []string) (map[string]string, error) {
	var resp descriptionsResponse
	if err := c.get(ctx, "/local/descriptions", idParams(ids), &resp); err != nil {
		return nil, err
	}
	return resp.Descriptions, nil
}

// RateLimit reports the current local limiter counters.
func (c *Client) RateLimit() domain.RateLimitStatus {
	return c.limiter.Status()
}

// get issues one rate-limit-checked GET and decodes the JSON response.
// Any non-200 status becomes an *APIError carrying the raw body.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Allow(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("brave: build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("brave: request %s: %w", path, err)
	}
	defer resp.Body.Close()

	// Setting Accept-Encoding by hand disables the transport's
	// transparent decompression, so unwrap gzip bodies here.
	reader := io.Reader(resp.Body)
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return fmt.Errorf("brave: decompress %s response: %w", path, err)
		}
		defer gz.Close()
		reader = gz
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("brave: read %s response: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("brave: decode %s response: %w", path, err)
	}
	return nil
}

// idParams builds repeated ids query parameters, skipping empty ids.
func idParams(ids []string) url.Values {
	params := url.Values{}
	for _, id := range ids {
		if id != "" {
			params.Add("ids", id)
		}
	}
	return params
}

func toPOI(r poiResult) domain.POI {
	poi := domain.POI{
		ID:           r.ID,
		Name:         r.Name,
		Phone:        r.Phone,
		PriceRange:   r.PriceRange,
		OpeningHours: r.OpeningHours,
	}
	if r.Address != nil {
		poi.Address = domain.Address{
			Street:     r.Address.StreetAddress,
			Locality:   r.Address.AddressLocality,
			Region:     r.Address.AddressRegion,
			PostalCode: r.Address.PostalCode,
		}
	}
	if r.Rating != nil {
		poi.Rating = &domain.Rating{
			Value: r.Rating.RatingValue,
			Count: r.Rating.RatingCount,
		}
	}
	return poi
}
