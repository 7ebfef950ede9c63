package nominatim

import (
	"fmt"
	"strconv"
)

// Place is a single geocoding result.
type Place struct {
	PlaceID     int64   `json:"place_id"`
	Latitude    float64 `json:"-"`
	Longitude   float64 `json:"-"`
	DisplayName string  `json:"display_name"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Importance  float64 `json:"importance"`
}

// rawPlace mirrors the jsonv2 wire format, where coordinates are strings.
type rawPlace struct {
	PlaceID     int64   `json:"place_id"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	DisplayName string  `json:"display_name"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Importance  float64 `json:"importance"`
	Error       string  `json:"error"`
}

func (r rawPlace) toPlace() (Place, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return Place{}, fmt.Errorf("nominatim: invalid latitude %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return Place{}, fmt.Errorf("nominatim: invalid longitude %q: %w", r.Lon, err)
	}
	return Place{
		PlaceID:     r.PlaceID,
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: r.DisplayName,
		Category:    r.Category,
		Type:        r.Type,
		Importance:  r.Importance,
	}, nil
}
