package prayer

import (
	"context"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // Zones reported by the API must resolve on minimal hosts

	"github.com/jfmyers9/homepod/pkg/aladhan"
)

// Day is a fetched timetable plus the metadata shown alongside it.
type Day struct {
	Times    Table
	Date     string // human readable, e.g. "19 Oct 2026"
	Hijri    string // e.g. "08 Jumādá al-ūlá 1448"
	Timezone string // IANA zone the times are expressed in
	Method   string // calculation method name
}

// Location returns the zone the timetable is expressed in, falling back to
// the machine's local zone when the API did not report one or it is unknown.
func (d *Day) Location() *time.Location {
	if d.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Fetcher retrieves the timetable for a coordinate pair on a given date.
type Fetcher interface {
	Fetch(ctx context.Context, lat, lon float64, date time.Time) (*Day, error)
}

// AladhanFetcher implements Fetcher on top of the Aladhan API.
type AladhanFetcher struct {
	client *aladhan.Client
	method int
}

// NewAladhanFetcher wraps client, requesting times with the given
// calculation method id. Every id is sent as given, including 0 (Jafari).
func NewAladhanFetcher(client *aladhan.Client, method int) *AladhanFetcher {
	return &AladhanFetcher{client: client, method: method}
}

// Fetch requests the day's timings and converts them into a Table.
func (f *AladhanFetcher) Fetch(ctx context.Context, lat, lon float64, date time.Time) (*Day, error) {
	resp, err := f.client.Timings(ctx, aladhan.TimingsRequest{
		Latitude:  lat,
		Longitude: lon,
		Method:    aladhan.MethodID(f.method),
		Date:      date,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prayer times: %w", err)
	}

	times, err := tableFromTimings(resp.Timings)
	if err != nil {
		return nil, err
	}

	return &Day{
		Times:    times,
		Date:     resp.Date.Readable,
		Hijri:    hijriString(resp.Date.Hijri),
		Timezone: resp.Meta.Timezone,
		Method:   resp.Meta.Method.Name,
	}, nil
}

// tableFromTimings keeps only the prayers in Order and strips any zone
// suffix such as "05:00 (BST)".
func tableFromTimings(raw map[string]string) (Table, error) {
	t := make(Table, len(Order))
	for _, name := range Order {
		v, ok := raw[string(name)]
		if !ok {
			return nil, fmt.Errorf("prayer: response is missing %s", name)
		}
		fields := strings.Fields(v)
		if len(fields) == 0 {
			return nil, fmt.Errorf("prayer: empty time for %s", name)
		}
		t[name] = fields[0]
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func hijriString(d aladhan.CalendarDate) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{d.Day, d.Month.En, d.Year} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
