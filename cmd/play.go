package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jfmyers9/homepod/internal/audio"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	playPlayer       string
	playExtensions   []string
	playPollInterval time.Duration
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play [dir]",
	Short: "Play every audio file in a directory, one after another",
	Long: `Play the audio files in a directory in name order. Each track plays to
completion before the next one starts.

Playback uses an external command line player (ffplay by default). Use
--player to pick another one, e.g. "mpg123 -q" or "afplay". The directory
defaults to audio.dir from the config file.

Press Ctrl+C to stop. A second Ctrl+C exits immediately.

Exit codes:
  0 - All tracks played, or playback was interrupted
  1 - No playable files, or every track failed to play`,
	Example: `  homepod play ~/Music/recitations
  homepod play ./adhan --player "mpg123 -q" --ext .mp3 --ext .ogg`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringVar(&playPlayer, "player", "", "Player command line (default from config)")
	playCmd.Flags().StringSliceVar(&playExtensions, "ext", nil, "File extensions to play (default .mp3)")
	playCmd.Flags().DurationVar(&playPollInterval, "poll-interval", 0, "How often to check whether a track finished")
}

// playOptions carries everything one run of the play command needs.
type playOptions struct {
	Dir          string
	Extensions   []string
	PollInterval time.Duration
	Player       audio.Player
	Logger       zerolog.Logger
}

func runPlay(cmd *cobra.Command, args []string) error {
	dir := cfg.Audio.Dir
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		return errors.New("no directory given: pass one as an argument or set audio.dir in the config")
	}

	player := cfg.Audio.Player
	if playPlayer != "" {
		player = playPlayer
	}
	exts := cfg.Audio.Extensions
	if len(playExtensions) > 0 {
		exts = playExtensions
	}
	interval := cfg.Audio.PollInterval
	if playPollInterval > 0 {
		interval = playPollInterval
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	// Handle first signal gracefully, second signal forces exit
	go func() {
		select {
		case <-sigChan:
		case <-ctx.Done():
			return
		}
		logger.Info().Msg("Stop signal received, stopping playback")
		cancel()

		select {
		case <-sigChan:
		case <-time.After(5 * time.Second):
			return
		}
		logger.Warn().Msg("Second stop signal received, forcing exit")
		os.Exit(1)
	}()

	opts := &playOptions{
		Dir:          dir,
		Extensions:   exts,
		PollInterval: interval,
		Player:       audio.NewExecPlayer(player),
		Logger:       logger,
	}
	return opts.run(ctx, cmd.OutOrStdout())
}

func (o *playOptions) run(ctx context.Context, out io.Writer) error {
	tracks, err := audio.Scan(o.Dir, o.Extensions)
	if err != nil {
		if errors.Is(err, audio.ErrNoTracks) {
			return fmt.Errorf("nothing to play in %s: %w", o.Dir, err)
		}
		return fmt.Errorf("failed to read %s: %w", o.Dir, err)
	}

	fmt.Fprintf(out, "Playing %d track(s) from %s\n", len(tracks), o.Dir)

	loop := audio.NewLoop(o.Player, o.PollInterval, o.Logger)
	summary, err := loop.Run(ctx, tracks)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(out, "Stopped after %d of %d track(s)\n", summary.Played, len(tracks))
		return nil
	}
	if err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}

	fmt.Fprintf(out, "Played %d of %d track(s)", summary.Played, len(tracks))
	if summary.Failed > 0 {
		fmt.Fprintf(out, ", %d failed", summary.Failed)
	}
	fmt.Fprintln(out)
	return nil
}
