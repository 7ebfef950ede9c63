package location

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultMaxAttempts bounds the interactive prompt.
const DefaultMaxAttempts = 3

// ErrAttemptsExhausted is returned by Prompt after MaxAttempts failures.
var ErrAttemptsExhausted = errors.New("too many failed attempts to set location")

// Resolver turns user input into a Location using a Geocoder.
type Resolver struct {
	geocoder    Geocoder
	maxAttempts int
	logger      zerolog.Logger
}

// NewResolver creates a Resolver. maxAttempts <= 0 selects DefaultMaxAttempts.
func NewResolver(geocoder Geocoder, maxAttempts int, logger zerolog.Logger) *Resolver {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Resolver{
		geocoder:    geocoder,
		maxAttempts: maxAttempts,
		logger:      logger.With().Str("component", "resolver").Logger(),
	}
}

// ResolveCity geocodes a place name such as "London, UK".
func (r *Resolver) ResolveCity(ctx context.Context, city string) (Location, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return Location{}, fmt.Errorf("%w: empty city name", ErrNotFound)
	}

	loc, err := r.geocoder.Geocode(ctx, city)
	if err != nil {
		return Location{}, err
	}

	r.logger.Debug().
		Str("query", city).
		Float64("lat", loc.Latitude).
		Float64("lon", loc.Longitude).
		Msg("Geocoded city")
	return loc, nil
}

// ResolveCoordinates validates lat, lon and looks up a display address.
// A point without a known address still resolves; only the address is left
// empty.
func (r *Resolver) ResolveCoordinates(ctx context.Context, lat, lon float64) (Location, error) {
	if err := CheckCoordinates(lat, lon); err != nil {
		return Location{}, err
	}

	loc := Location{Latitude: lat, Longitude: lon}

	addr, err := r.geocoder.Reverse(ctx, lat, lon)
	switch {
	case errors.Is(err, ErrNotFound):
		r.logger.Debug().Float64("lat", lat).Float64("lon", lon).Msg("No address for coordinates")
	case err != nil:
		return Location{}, err
	default:
		loc.Address = addr
	}

	return loc, nil
}

// Prompt asks on out for a city name or a coordinate pair and reads the
// answers from in. Failed attempts are reported and the prompt repeats, up
// to the configured limit.
func (r *Resolver) Prompt(ctx context.Context, in io.Reader, out io.Writer) (Location, error) {
	p := &prompter{reader: bufio.NewReader(in), out: out}

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Location{}, err
		}

		loc, err := r.promptOnce(ctx, p)
		if err == nil {
			fmt.Fprintf(out, "\nLocation found: %s\n", loc)
			return loc, nil
		}

		// Input ended or the caller gave up; retrying cannot help.
		if errors.Is(err, io.ErrUnexpectedEOF) || ctx.Err() != nil {
			return Location{}, err
		}

		r.logger.Debug().Err(err).Int("attempt", attempt).Msg("Location attempt failed")
		fmt.Fprintln(out, failureMessage(err))
	}

	return Location{}, fmt.Errorf("%w (%d attempts)", ErrAttemptsExhausted, r.maxAttempts)
}

// errInvalidChoice marks a menu answer other than 1 or 2.
var errInvalidChoice = errors.New("invalid choice")

func (r *Resolver) promptOnce(ctx context.Context, p *prompter) (Location, error) {
	choice, err := p.ask("Enter '1' to input city name or '2' to use coordinates: ")
	if err != nil {
		return Location{}, err
	}

	switch choice {
	case "1":
		city, err := p.ask("Enter city name (e.g., London, UK): ")
		if err != nil {
			return Location{}, err
		}
		return r.ResolveCity(ctx, city)

	case "2":
		latStr, err := p.ask("Enter latitude (e.g., 51.5074): ")
		if err != nil {
			return Location{}, err
		}
		lonStr, err := p.ask("Enter longitude (e.g., -0.1278): ")
		if err != nil {
			return Location{}, err
		}
		lat, lon, err := ParseCoordinates(latStr, lonStr)
		if err != nil {
			return Location{}, err
		}
		return r.ResolveCoordinates(ctx, lat, lon)

	default:
		return Location{}, errInvalidChoice
	}
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, errInvalidChoice):
		return "Invalid choice. Please try again."
	case errors.Is(err, ErrInvalidCoordinates):
		return "Invalid coordinates. Please try again."
	case errors.Is(err, ErrNotFound):
		return "Location not found. Please try again."
	case errors.Is(err, ErrTimeout):
		return "Timeout error. Please try again."
	default:
		return fmt.Sprintf("Error: %v. Please try again.", err)
	}
}

// prompter writes a question and reads one trimmed line in reply.
type prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
