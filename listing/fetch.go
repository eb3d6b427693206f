package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/swiftfix/swiftfix-go/applications"
)

// Fetcher loads the live application feed.
type Fetcher interface {
	FetchApplications(ctx context.Context) ([]applications.Summary, error)
}

// HTTPFetcher fetches the feed from the public listing endpoint.
type HTTPFetcher struct {
	baseURL string
	http    *http.Client
}

// NewHTTPFetcher builds a fetcher for the given server base URL. A nil
// httpClient falls back to http.DefaultClient.
func NewHTTPFetcher(baseURL string, httpClient *http.Client) *HTTPFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPFetcher{baseURL: baseURL, http: httpClient}
}

// FetchApplications gets /applications and decodes the redacted summaries.
func (f *HTTPFetcher) FetchApplications(ctx context.Context) ([]applications.Summary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/applications", nil)
	if err != nil {
		return nil, fmt.Errorf("building applications request: %w", err)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching applications: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching applications: unexpected status %d", resp.StatusCode)
	}

	var summaries []applications.Summary
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return nil, fmt.Errorf("decoding applications: %w", err)
	}
	return summaries, nil
}
