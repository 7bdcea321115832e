package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// IPAPIClient proxies the ip-api.com geolocation endpoint. An empty ip means
// "the caller's own address".
type IPAPIClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewIPAPIClient(baseURL string, timeout time.Duration) *IPAPIClient {
	return &IPAPIClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

func (c *IPAPIClient) Lookup(ctx context.Context, ip, fields, lang string) (map[string]any, error) {
	u := c.baseURL + ip

	params := url.Values{}
	if fields != "" {
		params.Set("fields", fields)
	}
	if lang != "" && lang != "en" {
		params.Set("lang", lang)
	}
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling ip-api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error calling ip-api: %s", resp.Status)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding ip-api response: %w", err)
	}

	return result, nil
}
