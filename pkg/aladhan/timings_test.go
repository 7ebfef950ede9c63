package aladhan

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const timingsOK = `{
	"code": 200,
	"status": "OK",
	"data": {
		"timings": {
			"Fajr": "05:00",
			"Sunrise": "06:30",
			"Dhuhr": "12:15",
			"Asr": "15:45",
			"Sunset": "18:20",
			"Maghrib": "18:20",
			"Isha": "19:50",
			"Imsak": "04:50",
			"Midnight": "00:05"
		},
		"date": {
			"readable": "19 Oct 2026",
			"timestamp": "1792396800",
			"gregorian": {"date": "19-10-2026", "day": "19", "year": "2026", "month": {"number": 10, "en": "October"}},
			"hijri": {"date": "08-05-1448", "day": "08", "year": "1448", "month": {"number": 5, "en": "Jumādá al-ūlá"}}
		},
		"meta": {
			"latitude": 51.5074,
			"longitude": -0.1278,
			"timezone": "Europe/London",
			"method": {"id": 2, "name": "Islamic Society of North America (ISNA)"}
		}
	}
}`

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	return NewClient(Config{
		BaseURL: url,
		Backoff: time.Millisecond,
	})
}

func TestClient_Timings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET request, got %s", r.Method)
		}
		if r.URL.Path != "/timings" {
			t.Errorf("expected path /timings, got %s", r.URL.Path)
		}

		q := r.URL.Query()
		if got := q.Get("latitude"); got != "51.5074" {
			t.Errorf("expected latitude 51.5074, got %s", got)
		}
		if got := q.Get("longitude"); got != "-0.1278" {
			t.Errorf("expected longitude -0.1278, got %s", got)
		}
		if got := q.Get("method"); got != "2" {
			t.Errorf("expected method 2, got %s", got)
		}
		if got := q.Get("date"); got != "19-10-2026" {
			t.Errorf("expected date 19-10-2026, got %s", got)
		}
		if ua := r.Header.Get("User-Agent"); ua != DefaultUserAgent {
			t.Errorf("expected User-Agent %q, got %q", DefaultUserAgent, ua)
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(timingsOK)); err != nil {
			t.Fatalf("failed to write response body: %v", err)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	resp, err := client.Timings(context.Background(), TimingsRequest{
		Latitude:  51.5074,
		Longitude: -0.1278,
		Date:      time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Timings["Dhuhr"] != "12:15" {
		t.Errorf("expected Dhuhr 12:15, got %q", resp.Timings["Dhuhr"])
	}
	if resp.Meta.Timezone != "Europe/London" {
		t.Errorf("expected timezone Europe/London, got %q", resp.Meta.Timezone)
	}
	if resp.Meta.Method.ID != MethodISNA {
		t.Errorf("expected method id %d, got %d", MethodISNA, resp.Meta.Method.ID)
	}
	if resp.Date.Hijri.Year != "1448" {
		t.Errorf("expected hijri year 1448, got %q", resp.Date.Hijri.Year)
	}
}

func TestClient_Timings_Errors(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		response    string
		wantCode    int
		errContains string
	}{
		{
			name:        "bad request",
			statusCode:  http.StatusBadRequest,
			response:    `{"code":400,"status":"BAD_REQUEST","data":"Please specify a valid latitude and longitude."}`,
			wantCode:    400,
			errContains: "valid latitude",
		},
		{
			name:        "envelope code not ok",
			statusCode:  http.StatusOK,
			response:    `{"code":404,"status":"NOT_FOUND","data":"Method not found."}`,
			wantCode:    404,
			errContains: "Method not found",
		},
		{
			name:        "plain text error body",
			statusCode:  http.StatusForbidden,
			response:    `forbidden`,
			wantCode:    403,
			errContains: "403",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempts := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				attempts++
				w.WriteHeader(tt.statusCode)
				if _, err := w.Write([]byte(tt.response)); err != nil {
					t.Fatalf("failed to write response body: %v", err)
				}
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			_, err := client.Timings(context.Background(), TimingsRequest{Latitude: 1, Longitude: 2})
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *Error, got %T: %v", err, err)
			}
			if apiErr.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, apiErr.Code)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error to contain %q, got %q", tt.errContains, err.Error())
			}
			if attempts != 1 {
				t.Errorf("expected 1 attempt for non-retryable error, got %d", attempts)
			}
		})
	}
}

// TestClient_Timings_Retry tests retry logic for HTTP 5xx errors.
func TestClient_Timings_Retry(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			if _, err := w.Write([]byte("Service Unavailable")); err != nil {
				t.Fatalf("failed to write response body: %v", err)
			}
			return
		}
		if _, err := w.Write([]byte(timingsOK)); err != nil {
			t.Fatalf("failed to write response body: %v", err)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	resp, err := client.Timings(context.Background(), TimingsRequest{Latitude: 1, Longitude: 2})
	if err != nil {
		t.Fatalf("expected success after retries, got error: %v", err)
	}
	if resp.Timings["Fajr"] != "05:00" {
		t.Errorf("expected Fajr 05:00, got %q", resp.Timings["Fajr"])
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestClient_Timings_RetriesExhausted(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Timings(context.Background(), TimingsRequest{Latitude: 1, Longitude: 2})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, &Error{Code: http.StatusBadGateway}) {
		t.Errorf("expected 502 error, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

// TestClient_Timings_ContextCancellation tests context cancellation.
func TestClient_Timings_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Simulate slow response
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(timingsOK))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Timings(ctx, TimingsRequest{Latitude: 1, Longitude: 2})
	if err == nil {
		t.Fatal("expected context deadline error, got nil")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context deadline error, got %v", err)
	}
}

func TestClient_Timings_Method(t *testing.T) {
	tests := []struct {
		name   string
		method *int
		want   string
	}{
		{"unset defaults to ISNA", nil, "2"},
		{"Jafari is id zero", MethodID(MethodJafari), "0"},
		{"Makkah", MethodID(MethodMakkah), "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.URL.Query().Get("method")
				_, _ = w.Write([]byte(timingsOK))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			if _, err := client.Timings(context.Background(), TimingsRequest{Method: tt.method}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected method %s, got %s", tt.want, got)
			}
		})
	}
}

func TestError_Temporary(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{400, false},
		{404, false},
		{429, true},
		{500, true},
		{503, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			e := &Error{Code: tt.code}
			if got := e.Temporary(); got != tt.want {
				t.Errorf("Temporary() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ExampleClient_Timings demonstrates fetching today's prayer times.
func ExampleClient_Timings() {
	client := NewClient(Config{})

	resp, err := client.Timings(context.Background(), TimingsRequest{
		Latitude:  51.5074,
		Longitude: -0.1278,
		Method:    MethodID(MethodISNA),
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, name := range []string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"} {
		fmt.Printf("%-8s %s\n", name, resp.Timings[name])
	}
}
