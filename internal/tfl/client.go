// Package tfl provides a read-only client for the Transport for London
// unified API.
package tfl

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the production TfL API endpoint.
const DefaultBaseURL = "https://api.tfl.gov.uk"

// requestTimeout bounds every upstream call.
const requestTimeout = 30 * time.Second

// Client issues authenticated GET requests against the TfL API.
//
// Client never returns an error: any transport failure, non-2xx status, or
// body that is not valid JSON is logged and reported as an absent result.
// Handlers treat that absence as the sole upstream failure signal. The
// underlying http.Client is shared across invocations for connection
// pooling only; it carries no other state.
type Client struct {
	baseURL    string
	appID      string
	appKey     string
	httpClient *http.Client
	tracer     trace.Tracer
}

// New creates a client for the given base URL and credential pair. Empty
// credentials are still sent; the upstream then applies anonymous rate
// limits.
func New(baseURL, appID, appKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		appID:      appID,
		appKey:     appKey,
		httpClient: &http.Client{Timeout: requestTimeout},
		tracer:     otel.Tracer("tfl"),
	}
}

// Get fetches <base>/<endpoint> with the credential query parameters merged
// into params. Explicit caller parameters win over the credentials. The
// second return value reports whether a JSON result was obtained.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (gjson.Result, bool) {
	ctx, span := c.tracer.Start(ctx, "tfl.get",
		trace.WithAttributes(attribute.String("tfl.endpoint", endpoint)),
	)
	defer span.End()

	query := url.Values{}
	query.Set("app_id", c.appID)
	query.Set("app_key", c.appKey)
	for key, values := range params {
		query[key] = values
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		log.Printf("tfl request %s: %v", endpoint, err)
		return gjson.Result{}, false
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("tfl request %s: %v", endpoint, err)
		return gjson.Result{}, false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("tfl request %s: read body: %v", endpoint, err)
		return gjson.Result{}, false
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("tfl request %s: status %d", endpoint, resp.StatusCode)
		return gjson.Result{}, false
	}
	if !gjson.ValidBytes(body) {
		log.Printf("tfl request %s: response is not valid JSON", endpoint)
		return gjson.Result{}, false
	}
	return gjson.ParseBytes(body), true
}
