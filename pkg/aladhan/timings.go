package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Timings fetches the prayer timetable for a single day.
//
// Returns an *Error if the API rejects the request (for example, coordinates
// out of range) or reports a non-200 code in its response envelope.
//
// Example:
//
//	resp, err := client.Timings(ctx, aladhan.TimingsRequest{
//	    Latitude:  21.4225,
//	    Longitude: 39.8262,
//	    Method:    aladhan.MethodID(aladhan.MethodMakkah),
//	})
func (c *Client) Timings(ctx context.Context, req TimingsRequest) (*TimingsResponse, error) {
	method := MethodISNA
	if req.Method != nil {
		method = *req.Method
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(req.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(req.Longitude, 'f', -1, 64))
	params.Set("method", strconv.Itoa(method))
	params.Set("date", date.Format(DateLayout))

	data, err := c.get(ctx, "timings", params)
	if err != nil {
		return nil, err
	}

	var resp TimingsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse timings: %w", err)
	}

	if len(resp.Timings) == 0 {
		return nil, fmt.Errorf("aladhan: response contained no timings")
	}

	return &resp, nil
}
