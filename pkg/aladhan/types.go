package aladhan

import (
	"encoding/json"
	"time"
)

// Calculation methods understood by the API. Only the commonly used ones
// are named here; any integer id accepted by Aladhan may be passed.
const (
	MethodJafari  = 0
	MethodKarachi = 1
	MethodISNA    = 2
	MethodMWL     = 3
	MethodMakkah  = 4
	MethodEgypt   = 5
)

// MethodID returns a pointer to id for TimingsRequest.Method.
func MethodID(id int) *int {
	return &id
}

// DateLayout is the date format expected by the timings endpoint.
const DateLayout = "02-01-2006"

// TimingsRequest describes a single timings lookup.
type TimingsRequest struct {
	Latitude  float64   // Required: latitude in degrees
	Longitude float64   // Required: longitude in degrees
	Method    *int      // Optional: calculation method (nil selects MethodISNA)
	Date      time.Time // Optional: day to compute (defaults to today)
}

// TimingsResponse is the data section of a successful timings response.
type TimingsResponse struct {
	// Timings maps prayer names (Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha)
	// and extra keys (Imsak, Midnight, ...) to "HH:MM" strings. Values may
	// carry a zone suffix such as "05:00 (BST)".
	Timings map[string]string `json:"timings"`
	Date    DateInfo          `json:"date"`
	Meta    Meta              `json:"meta"`
}

// DateInfo describes the day the timings were computed for.
type DateInfo struct {
	Readable  string       `json:"readable"`
	Timestamp string       `json:"timestamp"`
	Gregorian CalendarDate `json:"gregorian"`
	Hijri     CalendarDate `json:"hijri"`
}

// CalendarDate is a date in a particular calendar.
type CalendarDate struct {
	Date  string `json:"date"`
	Day   string `json:"day"`
	Year  string `json:"year"`
	Month struct {
		Number int    `json:"number"`
		En     string `json:"en"`
	} `json:"month"`
}

// Meta holds computation metadata.
type Meta struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timezone  string     `json:"timezone"`
	Method    MethodInfo `json:"method"`
}

// MethodInfo identifies the calculation method applied.
type MethodInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// envelope is the top-level JSON response shape.
type envelope struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}
