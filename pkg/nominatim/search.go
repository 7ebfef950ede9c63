package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Search geocodes a free-text query and returns the best match first.
//
// Returns ErrNotFound if the query matched nothing.
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("nominatim: empty query")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	var raw []rawPlace
	if err := c.get(ctx, "search", params, &raw); err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return nil, ErrNotFound
	}

	places := make([]Place, 0, len(raw))
	for _, r := range raw {
		p, err := r.toPlace()
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}

	return places, nil
}

// Reverse looks up the display address for a coordinate pair.
//
// Returns ErrNotFound if no address is known for the point (for example,
// open ocean).
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*Place, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "jsonv2")

	var raw rawPlace
	if err := c.get(ctx, "reverse", params, &raw); err != nil {
		return nil, err
	}

	if raw.Error != "" {
		c.logDebugf("nominatim: reverse returned error: %s", raw.Error)
		return nil, ErrNotFound
	}

	p, err := raw.toPlace()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// get performs a single GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := strings.TrimRight(c.baseURL, "/") + "/" + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}

	c.logDebugf("nominatim: GET /%s", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &Error{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
