// Package geo proxies free-text place search to the upstream geocoder so
// the wizard's map phase can resolve clicked or typed locations.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sony/gobreaker"

	"evora/globals"
	"evora/rdx"
	"evora/utils"
)

// Result is one geocoder candidate.
type Result struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type nominatimHit struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

const cacheTTL = 24 * time.Hour

// Client wraps the upstream geocoder behind a timeout and a circuit
// breaker; lookups are cached in redis keyed by the raw query.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewClient() *Client {
	return &Client{
		baseURL: globals.Getenv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		http:    &http.Client{Timeout: 5 * time.Second},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "geocoder",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

// Search resolves a free-text query to candidate places.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	cacheKey := fmt.Sprintf("geo:%d:%s", limit, query)
	if cached, _ := rdx.RdxGet(cacheKey); cached != "" {
		var results []Result
		if err := json.Unmarshal([]byte(cached), &results); err == nil {
			return results, nil
		}
	}

	body, err := c.breaker.Execute(func() (any, error) {
		return c.fetch(ctx, query, limit)
	})
	if err != nil {
		return nil, err
	}

	var hits []nominatimHit
	if err := json.Unmarshal(body.([]byte), &hits); err != nil {
		return nil, fmt.Errorf("geocoder returned malformed response: %w", err)
	}

	results := make([]Result, 0, len(hits))
	for _, hit := range hits {
		lat, latErr := strconv.ParseFloat(hit.Lat, 64)
		lng, lngErr := strconv.ParseFloat(hit.Lon, 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		results = append(results, Result{Name: hit.DisplayName, Lat: lat, Lng: lng})
	}

	if data, err := json.Marshal(results); err == nil {
		rdx.RdxSetTTL(cacheKey, string(data), cacheTTL)
	}
	return results, nil
}

func (c *Client) fetch(ctx context.Context, query string, limit int) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&q=%s&limit=%d", c.baseURL, url.QueryEscape(query), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "evora-trip-service")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

var defaultClient = NewClient()

// GET /api/geo/search?q=
func SearchHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query().Get("q")
	if query == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing search query")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 10 {
		limit = 5
	}

	results, err := defaultClient.Search(r.Context(), query, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Place search is unavailable")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"data":    results,
	})
}
