// Package location resolves user input (a place name or a coordinate pair)
// into an immutable Location.
package location

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Location is a resolved point on the globe. Address is optional.
type Location struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// String returns the address if known, otherwise the coordinates.
func (l Location) String() string {
	if l.Address != "" {
		return l.Address
	}
	return fmt.Sprintf("%.4f, %.4f", l.Latitude, l.Longitude)
}

var (
	// ErrNotFound is returned when a place name has no match.
	ErrNotFound = errors.New("location not found")

	// ErrTimeout is returned when the geocoding service does not answer.
	ErrTimeout = errors.New("geocoding timed out")

	// ErrInvalidCoordinates is returned for unparsable or out-of-range input.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// Geocoder resolves place names and coordinates. Implementations map their
// own failures onto ErrNotFound and ErrTimeout.
type Geocoder interface {
	// Geocode returns the best match for a free-text place name.
	Geocode(ctx context.Context, query string) (Location, error)

	// Reverse returns the display address for a coordinate pair.
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

// ParseCoordinates parses and range-checks a latitude/longitude pair.
func ParseCoordinates(lat, lon string) (float64, float64, error) {
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: latitude %q", ErrInvalidCoordinates, lat)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: longitude %q", ErrInvalidCoordinates, lon)
	}
	if err := CheckCoordinates(la, lo); err != nil {
		return 0, 0, err
	}
	return la, lo, nil
}

// CheckCoordinates validates that lat and lon are within range.
func CheckCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 || math.IsNaN(lat) {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinates, lat)
	}
	if lon < -180 || lon > 180 || math.IsNaN(lon) {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinates, lon)
	}
	return nil
}
