package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jfmyers9/homepod/internal/config"
	"github.com/jfmyers9/homepod/internal/location"
	"github.com/jfmyers9/homepod/internal/prayer"
	"github.com/jfmyers9/homepod/pkg/aladhan"
	"github.com/jfmyers9/homepod/pkg/nominatim"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	timesCity         string
	timesLat          float64
	timesLon          float64
	timesMethod       int
	timesAt           string
	timesDate         string
	timesLocationTime bool
	timesNoColor      bool
)

// timesCmd represents the times command
var timesCmd = &cobra.Command{
	Use:   "times",
	Short: "Show today's prayer times with the current prayer marked",
	Long: `Look up today's prayer times for a location and print them in order,
marking the prayer whose window is currently open with '→'.

The location comes from --city or --lat/--lon. Without either, you are
asked for one interactively.

Exit codes:
  0 - Schedule printed
  1 - Location could not be resolved or times could not be fetched`,
	Example: `  homepod times --city "London, UK"
  homepod times --lat 21.4225 --lon 39.8262 --location-time
  homepod times --city Cairo --method 5 --at 13:00`,
	Args: cobra.NoArgs,
	RunE: runTimes,
}

func init() {
	rootCmd.AddCommand(timesCmd)

	timesCmd.Flags().StringVar(&timesCity, "city", "", "City name to geocode (e.g. \"London, UK\")")
	timesCmd.Flags().Float64Var(&timesLat, "lat", 0, "Latitude in decimal degrees")
	timesCmd.Flags().Float64Var(&timesLon, "lon", 0, "Longitude in decimal degrees")
	timesCmd.Flags().IntVar(&timesMethod, "method", 0, "Calculation method id (default from config; 2 = ISNA, 0 = Jafari)")
	timesCmd.Flags().StringVar(&timesAt, "at", "", "Evaluate the schedule at this HH:MM instead of now")
	timesCmd.Flags().StringVar(&timesDate, "date", "", "Fetch times for this date (DD-MM-YYYY) instead of today")
	timesCmd.Flags().BoolVar(&timesLocationTime, "location-time", false, "Use the location's timezone for the current time")
	timesCmd.Flags().BoolVar(&timesNoColor, "no-color", false, "Disable colored output")

	timesCmd.MarkFlagsRequiredTogether("lat", "lon")
	timesCmd.MarkFlagsMutuallyExclusive("city", "lat")
	timesCmd.MarkFlagsMutuallyExclusive("city", "lon")
}

// timesOptions carries everything one run of the times command needs.
type timesOptions struct {
	City         string
	Coordinates  *[2]float64 // nil when not given on the command line
	At           string
	Date         time.Time
	LocationTime bool
	Styles       *prayer.Styles

	Resolver *location.Resolver
	Fetcher  prayer.Fetcher
	Now      func() time.Time
	Logger   zerolog.Logger
}

func runTimes(cmd *cobra.Command, args []string) error {
	if timesAt != "" && !prayer.ValidClock(timesAt) {
		return fmt.Errorf("invalid --at value %q: expected HH:MM", timesAt)
	}

	date := time.Now()
	if timesDate != "" {
		d, err := time.ParseInLocation(aladhan.DateLayout, timesDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date value %q: expected DD-MM-YYYY", timesDate)
		}
		date = d
	}

	method := cfg.Aladhan.Method
	if cmd.Flags().Changed("method") {
		method = timesMethod
	}

	opts := &timesOptions{
		City:         timesCity,
		At:           timesAt,
		Date:         date,
		LocationTime: timesLocationTime,
		Resolver:     newResolver(cfg, logger),
		Fetcher:      prayer.NewAladhanFetcher(newAladhanClient(cfg, logger), method),
		Now:          time.Now,
		Logger:       logger,
	}
	if cmd.Flags().Changed("lat") {
		opts.Coordinates = &[2]float64{timesLat, timesLon}
	}

	out := cmd.OutOrStdout()
	if !timesNoColor && out == os.Stdout && term.IsTerminal(int(os.Stdout.Fd())) {
		opts.Styles = prayer.NewStyles(lipgloss.NewRenderer(os.Stdout))
	}

	return opts.run(cmd.Context(), cmd.InOrStdin(), out)
}

func (o *timesOptions) run(ctx context.Context, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	loc, err := o.resolve(ctx, in, out)
	if err != nil {
		return err
	}

	day, err := o.Fetcher.Fetch(ctx, loc.Latitude, loc.Longitude, o.Date)
	if err != nil {
		return fmt.Errorf("error fetching prayer times: %w", err)
	}

	now := o.At
	if now == "" {
		t := o.Now()
		if o.LocationTime {
			t = t.In(day.Location())
		}
		now = prayer.Clock(t)
	}

	schedule, err := prayer.Evaluate(day.Times, now)
	notMonotonic := errors.Is(err, prayer.ErrNotMonotonic)
	if err != nil && !notMonotonic {
		return fmt.Errorf("invalid timetable: %w", err)
	}

	fmt.Fprintf(out, "\nLocation: %s\n", loc)
	if day.Date != "" {
		fmt.Fprintf(out, "Date: %s", day.Date)
		if day.Hijri != "" {
			fmt.Fprintf(out, " (%s)", day.Hijri)
		}
		fmt.Fprintln(out)
	}
	if day.Method != "" {
		fmt.Fprintf(out, "Method: %s\n", day.Method)
	}
	fmt.Fprintln(out)

	if err := prayer.RenderStyled(out, schedule, o.Styles); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nNote: '%s' indicates the current prayer time\n", strings.TrimSpace(prayer.ActiveMarker))
	if notMonotonic {
		o.Logger.Warn().Str("now", now).Msg("Timetable is out of order")
		fmt.Fprintln(out, "Warning: the timetable is not in chronological order; the marked prayer may be wrong")
	}

	return nil
}

// resolve picks the location from flags, or asks for one.
func (o *timesOptions) resolve(ctx context.Context, in io.Reader, out io.Writer) (location.Location, error) {
	switch {
	case o.City != "":
		loc, err := o.Resolver.ResolveCity(ctx, o.City)
		if err != nil {
			return location.Location{}, fmt.Errorf("failed to resolve %q: %w", o.City, err)
		}
		return loc, nil

	case o.Coordinates != nil:
		lat, lon := o.Coordinates[0], o.Coordinates[1]
		loc, err := o.Resolver.ResolveCoordinates(ctx, lat, lon)
		if errors.Is(err, location.ErrInvalidCoordinates) {
			return location.Location{}, err
		}
		if err != nil {
			// The coordinates alone are enough to fetch times.
			o.Logger.Warn().Err(err).Msg("Reverse geocoding failed, continuing without an address")
			return location.Location{Latitude: lat, Longitude: lon}, nil
		}
		return loc, nil

	default:
		fmt.Fprintln(out, "Welcome to Prayer Times App!")
		fmt.Fprintln(out, "===========================")
		return o.Resolver.Prompt(ctx, in, out)
	}
}

func newHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.HTTPTimeout}
}

func newAladhanClient(cfg *config.Config, l zerolog.Logger) *aladhan.Client {
	return aladhan.NewClient(aladhan.Config{
		HTTPClient: newHTTPClient(cfg),
		BaseURL:    cfg.Aladhan.BaseURL,
		Logger:     debugLogger{l.With().Str("component", "aladhan").Logger()},
	})
}

func newResolver(cfg *config.Config, l zerolog.Logger) *location.Resolver {
	client := nominatim.NewClient(nominatim.Config{
		UserAgent:  cfg.Nominatim.UserAgent,
		HTTPClient: newHTTPClient(cfg),
		BaseURL:    cfg.Nominatim.BaseURL,
		Language:   cfg.Nominatim.Language,
		Logger:     debugLogger{l.With().Str("component", "nominatim").Logger()},
	})
	return location.NewResolver(location.NewNominatimGeocoder(client), cfg.MaxAttempts, l)
}
