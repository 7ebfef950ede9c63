package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// DefaultPollInterval matches a 10 Hz busy check.
const DefaultPollInterval = 100 * time.Millisecond

// Summary reports the outcome of a Loop run.
type Summary struct {
	Played int // Tracks that played to completion
	Failed int // Tracks that could not be started or exited with an error
}

// Loop plays tracks sequentially, waiting for each to finish before
// starting the next.
type Loop struct {
	player   Player
	interval time.Duration
	logger   zerolog.Logger
}

// NewLoop creates a Loop that polls player every interval.
func NewLoop(player Player, interval time.Duration, logger zerolog.Logger) *Loop {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Loop{
		player:   player,
		interval: interval,
		logger:   logger.With().Str("component", "playback").Logger(),
	}
}

// Run plays every track in order. It blocks until the last track ends or
// ctx is cancelled, in which case the current track is stopped and ctx.Err()
// is returned. A track that fails is logged and skipped; Run only fails if
// no track played at all.
func (l *Loop) Run(ctx context.Context, tracks []Track) (Summary, error) {
	var summary Summary

	if len(tracks) == 0 {
		return summary, ErrNoTracks
	}

	l.logger.Info().
		Int("tracks", len(tracks)).
		Dur("interval", l.interval).
		Msg("Starting playback")

	var lastErr error
	for i, track := range tracks {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		l.logger.Info().
			Str("track", track.Name).
			Int("position", i+1).
			Int("total", len(tracks)).
			Msg("Playing")

		if err := l.play(ctx, track); err != nil {
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
			l.logger.Warn().Err(err).Str("track", track.Name).Msg("Track failed")
			summary.Failed++
			lastErr = err
			continue
		}
		summary.Played++
	}

	l.logger.Info().
		Int("played", summary.Played).
		Int("failed", summary.Failed).
		Msg("Playback finished")

	if summary.Played == 0 {
		return summary, fmt.Errorf("no track could be played: %w", lastErr)
	}
	return summary, nil
}

// play starts a track and polls until the player reports it stopped.
func (l *Loop) play(ctx context.Context, track Track) error {
	if err := l.player.Start(ctx, track.Path); err != nil {
		return err
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := l.player.Stop(); err != nil {
				l.logger.Debug().Err(err).Msg("Error stopping player")
			}
			return ctx.Err()
		case <-ticker.C:
			state, err := l.player.State(ctx)
			if err != nil {
				return err
			}
			if state != StatePlaying {
				l.logger.Debug().Str("track", track.Name).Msg("Track finished")
				return nil
			}
		}
	}
}
