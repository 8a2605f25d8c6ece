package cprt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the production CPRT API root.
const DefaultBaseURL = "https://csrc.nist.gov/extensions/nudp/services/json/cprt"

// DefaultTimeout bounds a single API request. Exports for large frameworks
// run to a few megabytes, so this is generous.
const DefaultTimeout = 60 * time.Second

// Client fetches framework metadata and exports from the CPRT API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient returns a Client for the CPRT API.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Metadata fetches the list of framework versions available for export.
func (c *Client) Metadata(ctx context.Context) (*MetadataResponse, error) {
	var resp MetadataResponse
	if err := c.getJSON(ctx, c.baseURL+"/metadata", &resp); err != nil {
		return nil, fmt.Errorf("fetch metadata: %w", err)
	}
	return &resp, nil
}

// Version fetches metadata for a single framework version identifier.
func (c *Client) Version(ctx context.Context, frameworkVersionID string) (*MetadataVersion, error) {
	meta, err := c.Metadata(ctx)
	if err != nil {
		return nil, err
	}
	for i := range meta.Versions {
		if meta.Versions[i].FrameworkVersionIdentifier == frameworkVersionID {
			return &meta.Versions[i], nil
		}
	}
	return nil, fmt.Errorf("framework version %q not listed by CPRT", frameworkVersionID)
}

// ExportRaw fetches the raw export JSON for a framework version. Callers that
// want to cache the payload use this; Export parses it.
func (c *Client) ExportRaw(ctx context.Context, frameworkVersionID string) ([]byte, error) {
	u := c.baseURL + "/export/" + url.PathEscape(frameworkVersionID)
	data, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetch export %s: %w", frameworkVersionID, err)
	}
	return data, nil
}

// Export fetches and parses the export for a framework version.
func (c *Client) Export(ctx context.Context, frameworkVersionID string) (*Root, error) {
	data, err := c.ExportRaw(ctx, frameworkVersionID)
	if err != nil {
		return nil, err
	}
	return ParseExport(data)
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %s", u, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) getJSON(ctx context.Context, u string, out interface{}) error {
	data, err := c.get(ctx, u)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
