// Package prayer evaluates a day's prayer timetable: which prayer window is
// currently active, and how the schedule is rendered for the console.
package prayer

import (
	"errors"
	"fmt"
	"time"
)

// Name identifies one of the daily prayer times.
type Name string

const (
	Fajr    Name = "Fajr"
	Sunrise Name = "Sunrise"
	Dhuhr   Name = "Dhuhr"
	Asr     Name = "Asr"
	Maghrib Name = "Maghrib"
	Isha    Name = "Isha"
)

// Order is the fixed display order. It also defines window adjacency: each
// prayer's window runs until the next entry, and Isha wraps to Fajr.
var Order = [6]Name{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}

// ClockLayout is the zero-padded 24-hour format all times use. Values in
// this layout order correctly under plain string comparison.
const ClockLayout = "15:04"

// Table maps each prayer to its time of day in ClockLayout.
type Table map[Name]string

var (
	// ErrMissingTimes is returned when there is no table to evaluate.
	ErrMissingTimes = errors.New("prayer: no timing table")

	// ErrNotMonotonic flags a table whose times do not increase through the
	// day. Window membership is still computed, but may mark zero or several
	// prayers as active.
	ErrNotMonotonic = errors.New("prayer: times are not in chronological order")
)

// Clock formats t as an evaluation time.
func Clock(t time.Time) string {
	return t.Format(ClockLayout)
}

// ValidClock reports whether s is a zero-padded HH:MM time.
func ValidClock(s string) bool {
	if len(s) != len(ClockLayout) || s[2] != ':' {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// Validate checks that every prayer in Order is present with a valid time.
// A table with extra keys is fine; they are never consulted.
func (t Table) Validate() error {
	if t == nil {
		return ErrMissingTimes
	}
	for _, name := range Order {
		v, ok := t[name]
		if !ok {
			return fmt.Errorf("prayer: missing time for %s", name)
		}
		if !ValidClock(v) {
			return fmt.Errorf("prayer: invalid time %q for %s", v, name)
		}
	}
	return nil
}

// Monotonic reports whether times are non-decreasing in Order.
func (t Table) Monotonic() bool {
	for i := 0; i < len(Order)-1; i++ {
		if t[Order[i]] > t[Order[i+1]] {
			return false
		}
	}
	return true
}
