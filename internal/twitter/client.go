package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/Dormanator/trending-sentiments/internal/domain"
	"github.com/Dormanator/trending-sentiments/internal/metrics"
)

const (
	// DefaultBaseURL is the v1.1 REST API root.
	DefaultBaseURL = "https://api.twitter.com/1.1"

	requestTimeout = 15 * time.Second

	// App-auth search allows 450 requests per 15-minute window. The local
	// limiter stays under that so a burst of dashboard queries does not
	// trade one 429 for the whole window.
	searchInterval = 2 * time.Second
	searchBurst    = 5
)

// Client calls the recent-search endpoint with app-only bearer auth.
// It returns raw statuses; decoding into posts happens in transform.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	bearerToken string
	limiter     *rate.Limiter
}

var _ domain.Searcher = (*Client)(nil)

// NewClient creates a search client. baseURL is overridable for tests;
// pass "" for the production API.
func NewClient(bearerToken, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient:  &http.Client{Timeout: requestTimeout},
		baseURL:     baseURL,
		bearerToken: bearerToken,
		limiter:     rate.NewLimiter(rate.Every(searchInterval), searchBurst),
	}
}

type searchResponse struct {
	Statuses []domain.RawRecord `json:"statuses"`
}

// SearchRecent fetches up to count recent posts matching the query, in the
// API's arrival order, with untruncated text.
func (c *Client) SearchRecent(ctx context.Context, query string, count int) ([]domain.RawRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(count))
	params.Set("tweet_mode", "extended")
	params.Set("result_type", "recent")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search/tweets.json?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.SearchAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SearchAPIRequestsTotal.WithLabelValues("network_error").Inc()
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.SearchAPIRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, domain.ErrSearchUnauthorized
	case http.StatusTooManyRequests:
		return nil, domain.ErrSearchRateLimited
	default:
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return body.Statuses, nil
}
