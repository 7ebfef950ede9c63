package prayer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	// ActiveMarker prefixes the line of the active prayer.
	ActiveMarker = "→ "
	// InactiveMarker keeps other lines aligned with the active one.
	InactiveMarker = "  "

	header    = "Prayer Times:"
	nameWidth = 10
)

var separator = strings.Repeat("=", 30)

// Styles decorates rendered output. A nil *Styles renders plain text.
type Styles struct {
	Header lipgloss.Style
	Active lipgloss.Style
}

// NewStyles builds terminal styles bound to r, which decides whether the
// destination supports color.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header: r.NewStyle().Bold(true),
		Active: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")),
	}
}

// Render writes the schedule as a header, a separator, and one line per
// prayer in Order.
func Render(w io.Writer, s Schedule) error {
	return RenderStyled(w, s, nil)
}

// RenderStyled is Render with optional styling of the header and active line.
func RenderStyled(w io.Writer, s Schedule, st *Styles) error {
	title := header
	if st != nil {
		title = st.Header.Render(title)
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", title, separator); err != nil {
		return err
	}

	for _, e := range s.Entries {
		line := FormatEntry(e)
		if e.Active && st != nil {
			line = st.Active.Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatEntry formats a single schedule line without styling.
func FormatEntry(e Entry) string {
	marker := InactiveMarker
	if e.Active {
		marker = ActiveMarker
	}
	return marker + runewidth.FillRight(string(e.Name), nameWidth) + " : " + e.Time
}
