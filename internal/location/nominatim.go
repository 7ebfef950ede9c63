package location

import (
	"context"
	"errors"
	"fmt"

	"github.com/jfmyers9/homepod/pkg/nominatim"
)

// NominatimGeocoder implements Geocoder using OpenStreetMap Nominatim.
type NominatimGeocoder struct {
	client *nominatim.Client
}

// NewNominatimGeocoder wraps an SDK client.
func NewNominatimGeocoder(client *nominatim.Client) *NominatimGeocoder {
	return &NominatimGeocoder{client: client}
}

// Geocode returns the best match for query.
func (g *NominatimGeocoder) Geocode(ctx context.Context, query string) (Location, error) {
	places, err := g.client.Search(ctx, query)
	if err != nil {
		return Location{}, translate(err)
	}

	best := places[0]
	return Location{
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
		Address:   best.DisplayName,
	}, nil
}

// Reverse returns the display address for lat, lon.
func (g *NominatimGeocoder) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	place, err := g.client.Reverse(ctx, lat, lon)
	if err != nil {
		return "", translate(err)
	}
	return place.DisplayName, nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, nominatim.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, nominatim.ErrTimeout):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	default:
		return err
	}
}
