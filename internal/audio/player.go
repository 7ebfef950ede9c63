package audio

import (
	"context"
)

// Track is a playable audio file.
type Track struct {
	Path string // Absolute or relative file path
	Name string // File name shown in logs
}

// PlayState represents the current state of a Player.
type PlayState int

const (
	StateStopped PlayState = iota // Nothing loaded or playback finished
	StatePlaying                  // A track is playing
)

// String returns a human-readable representation of the PlayState
func (s PlayState) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Player plays one track at a time.
type Player interface {
	// Start loads path and begins playback without waiting for it to finish.
	Start(ctx context.Context, path string) error

	// State reports whether the last started track is still playing.
	State(ctx context.Context) (PlayState, error)

	// Stop ends playback of the current track, if any.
	Stop() error
}
