package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// PlayoClient proxies the public Playo activity search endpoint. It owns no
// state; it only forwards the search filters and hands the response back.
type PlayoClient struct {
	httpClient *http.Client
	url        string
}

func NewPlayoClient(url string, timeout time.Duration) *PlayoClient {
	return &PlayoClient{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
	}
}

type SearchActivitiesRequest struct {
	Lat        float64
	Lng        float64
	Date       string
	Sports     []string
	Timings    []int
	Skills     []int
	CityRadius int
	SortBy     string
	Page       int
}

func (c *PlayoClient) SearchActivities(ctx context.Context, req SearchActivitiesRequest) (map[string]any, error) {
	date := req.Date
	switch {
	case date == "":
		date = time.Now().UTC().Format("2006-01-02") + "T00:00:00.000Z"
	case !strings.Contains(date, "T"):
		date = date + "T00:00:00.000Z"
	}

	timings := req.Timings
	if len(timings) == 0 {
		timings = []int{0, 1, 2} // morning, day, evening
	}
	skills := req.Skills
	if len(skills) == 0 {
		skills = []int{1} // amateur
	}
	sports := req.Sports
	if sports == nil {
		sports = []string{}
	}

	payload := map[string]any{
		"booking":            false,
		"cityRadius":         req.CityRadius,
		"date":               []string{date},
		"gameTimeActivities": false,
		"lastId":             "",
		"lat":                req.Lat,
		"lng":                req.Lng,
		"page":               req.Page,
		"skill":              skills,
		"sportId":            sports,
		"timing":             timings,
	}

	if req.SortBy == "distance" || req.SortBy == "time_date" {
		payload["appliedFilters"] = map[string]any{
			"sortandfilter": map[string]any{
				"sort_by": req.SortBy,
			},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error searching activities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error searching activities: %s", resp.Status)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding activity search response: %w", err)
	}

	return result, nil
}
