package location

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jfmyers9/homepod/pkg/nominatim"
)

func TestNominatimGeocoder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			if r.URL.Query().Get("q") == "Atlantis" {
				_, _ = w.Write([]byte(`[]`))
				return
			}
			_, _ = w.Write([]byte(`[{"lat":"30.0444","lon":"31.2357","display_name":"Cairo, Egypt"}]`))
		case "/reverse":
			_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	g := NewNominatimGeocoder(nominatim.NewClient(nominatim.Config{BaseURL: server.URL}))
	ctx := context.Background()

	loc, err := g.Geocode(ctx, "Cairo")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if loc.Latitude != 30.0444 || loc.Longitude != 31.2357 || loc.Address != "Cairo, Egypt" {
		t.Errorf("unexpected location %+v", loc)
	}

	if _, err := g.Geocode(ctx, "Atlantis"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if _, err := g.Reverse(ctx, 0, -30); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound from reverse, got %v", err)
	}
}

func TestNominatimGeocoder_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer server.Close()

	g := NewNominatimGeocoder(nominatim.NewClient(nominatim.Config{
		BaseURL:    server.URL,
		HTTPClient: &http.Client{Timeout: 10 * time.Millisecond},
	}))

	if _, err := g.Geocode(context.Background(), "Cairo"); !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}
