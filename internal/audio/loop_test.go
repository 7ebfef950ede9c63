package audio

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fakePlayer reports each track as playing for a fixed number of polls.
type fakePlayer struct {
	mu        sync.Mutex
	polls     int
	remaining int
	started   []string
	stopped   int
	startErr  map[string]error
	stateErr  map[string]error
	current   string
}

func (f *fakePlayer) Start(ctx context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.startErr[path]; err != nil {
		return err
	}
	f.started = append(f.started, path)
	f.current = path
	f.remaining = f.polls
	return nil
}

func (f *fakePlayer) State(ctx context.Context) (PlayState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.remaining > 0 {
		f.remaining--
		return StatePlaying, nil
	}
	if err := f.stateErr[f.current]; err != nil {
		return StateStopped, err
	}
	return StateStopped, nil
}

func (f *fakePlayer) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped++
	f.remaining = 0
	return nil
}

func tracksFor(names ...string) []Track {
	out := make([]Track, len(names))
	for i, n := range names {
		out[i] = Track{Path: "/q/" + n, Name: n}
	}
	return out
}

func TestLoop_PlaysInOrder(t *testing.T) {
	p := &fakePlayer{polls: 3}
	loop := NewLoop(p, time.Millisecond, zerolog.Nop())

	summary, err := loop.Run(context.Background(), tracksFor("1.mp3", "2.mp3", "3.mp3"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Played != 3 || summary.Failed != 0 {
		t.Errorf("unexpected summary %+v", summary)
	}

	want := []string{"/q/1.mp3", "/q/2.mp3", "/q/3.mp3"}
	if len(p.started) != len(want) {
		t.Fatalf("started %v, want %v", p.started, want)
	}
	for i := range want {
		if p.started[i] != want[i] {
			t.Errorf("start %d: got %s, want %s", i, p.started[i], want[i])
		}
	}
}

func TestLoop_NoTracks(t *testing.T) {
	loop := NewLoop(&fakePlayer{}, time.Millisecond, zerolog.Nop())
	if _, err := loop.Run(context.Background(), nil); !errors.Is(err, ErrNoTracks) {
		t.Errorf("expected ErrNoTracks, got %v", err)
	}
}

func TestLoop_SkipsFailedTracks(t *testing.T) {
	p := &fakePlayer{
		polls:    1,
		startErr: map[string]error{"/q/bad.mp3": errors.New("decoder error")},
		stateErr: map[string]error{"/q/crash.mp3": errors.New("exit status 1")},
	}
	loop := NewLoop(p, time.Millisecond, zerolog.Nop())

	summary, err := loop.Run(context.Background(), tracksFor("bad.mp3", "crash.mp3", "good.mp3"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Played != 1 || summary.Failed != 2 {
		t.Errorf("unexpected summary %+v", summary)
	}
}

func TestLoop_AllTracksFail(t *testing.T) {
	boom := errors.New("no such device")
	p := &fakePlayer{startErr: map[string]error{"/q/a.mp3": boom, "/q/b.mp3": boom}}
	loop := NewLoop(p, time.Millisecond, zerolog.Nop())

	summary, err := loop.Run(context.Background(), tracksFor("a.mp3", "b.mp3"))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped start error, got %v", err)
	}
	if summary.Failed != 2 {
		t.Errorf("expected 2 failures, got %+v", summary)
	}
}

func TestLoop_Cancel(t *testing.T) {
	p := &fakePlayer{polls: 1 << 30}
	loop := NewLoop(p, time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	summary, err := loop.Run(ctx, tracksFor("long.mp3", "next.mp3"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
	if summary.Played != 0 {
		t.Errorf("expected nothing played, got %+v", summary)
	}
	if p.stopped != 1 {
		t.Errorf("expected player to be stopped once, got %d", p.stopped)
	}
	if len(p.started) != 1 {
		t.Errorf("next track should not start after cancellation, started %v", p.started)
	}
}

func TestPlayState_String(t *testing.T) {
	if StatePlaying.String() != "playing" || StateStopped.String() != "stopped" {
		t.Error("unexpected PlayState strings")
	}
	if PlayState(42).String() != "unknown" {
		t.Error("expected unknown for invalid state")
	}
}
