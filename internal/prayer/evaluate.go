package prayer

import (
	"fmt"
)

// Entry is one rendered line of a schedule.
type Entry struct {
	Name   Name
	Time   string
	Active bool
}

// Schedule is a day's timetable in Order with the active window marked.
type Schedule struct {
	Now     string
	Entries []Entry
}

// IsActive reports whether now falls inside p's window.
//
// Every window is half-open, [t[p], t[next]). The last prayer's window wraps
// past midnight, so Isha is active from its own time until the next Fajr.
func IsActive(t Table, now string, p Name) bool {
	last := len(Order) - 1
	for i, name := range Order {
		if name != p {
			continue
		}
		if i == last {
			return now >= t[name] || now < t[Order[0]]
		}
		return t[name] <= now && now < t[Order[i+1]]
	}
	return false
}

// Active returns the prayer whose window contains now. For a monotonic table
// exactly one prayer matches every minute of the day.
func Active(t Table, now string) (Name, bool) {
	for _, name := range Order {
		if IsActive(t, now, name) {
			return name, true
		}
	}
	return "", false
}

// Evaluate builds the schedule for t as seen at now.
//
// If the table is out of order the schedule is still returned, together with
// ErrNotMonotonic, so callers can warn instead of trusting the marker.
func Evaluate(t Table, now string) (Schedule, error) {
	if err := t.Validate(); err != nil {
		return Schedule{}, err
	}
	if !ValidClock(now) {
		return Schedule{}, fmt.Errorf("prayer: invalid current time %q", now)
	}

	s := Schedule{
		Now:     now,
		Entries: make([]Entry, 0, len(Order)),
	}
	for _, name := range Order {
		s.Entries = append(s.Entries, Entry{
			Name:   name,
			Time:   t[name],
			Active: IsActive(t, now, name),
		})
	}

	if !t.Monotonic() {
		return s, ErrNotMonotonic
	}
	return s, nil
}

// Current returns the active entry, if any.
func (s Schedule) Current() (Entry, bool) {
	for _, e := range s.Entries {
		if e.Active {
			return e, true
		}
	}
	return Entry{}, false
}
