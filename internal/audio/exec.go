package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// DefaultCommand plays a file without a window and exits when it ends.
var DefaultCommand = []string{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"}

// ExecPlayer implements Player by running an external command-line player,
// one process per track, with the file path appended as the last argument.
type ExecPlayer struct {
	command []string

	mu     sync.Mutex
	cmd    *exec.Cmd
	done   chan struct{}
	err    error
	stderr bytes.Buffer
}

// NewExecPlayer creates a player that runs command (for example
// "mpg123 -q" or "afplay"). An empty command selects DefaultCommand.
func NewExecPlayer(command string) *ExecPlayer {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		fields = DefaultCommand
	}
	return &ExecPlayer{command: fields}
}

// Command returns the program and arguments used for each track.
func (p *ExecPlayer) Command() []string {
	return append([]string(nil), p.command...)
}

// Start launches the player process for path.
func (p *ExecPlayer) Start(ctx context.Context, path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running() {
		return errors.New("audio: a track is already playing")
	}

	args := append(p.command[1:len(p.command):len(p.command)], path)
	cmd := exec.CommandContext(ctx, p.command[0], args...)
	p.stderr.Reset()
	cmd.Stderr = &p.stderr
	setProcessGroup(cmd)
	cmd.Cancel = func() error { return killProcess(cmd) }

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", p.command[0], err)
	}

	done := make(chan struct{})
	p.cmd = cmd
	p.done = done
	p.err = nil

	go func() {
		err := cmd.Wait()
		p.mu.Lock()
		p.err = err
		p.mu.Unlock()
		close(done)
	}()

	return nil
}

// State reports StatePlaying while the process runs. Once it exits, a
// non-zero exit status is returned as an error.
func (p *ExecPlayer) State(ctx context.Context) (PlayState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd == nil {
		return StateStopped, nil
	}
	if p.running() {
		return StatePlaying, nil
	}
	if p.err != nil {
		msg := strings.TrimSpace(p.stderr.String())
		if msg != "" {
			return StateStopped, fmt.Errorf("%s: %w: %s", p.command[0], p.err, msg)
		}
		return StateStopped, fmt.Errorf("%s: %w", p.command[0], p.err)
	}
	return StateStopped, nil
}

// Stop kills the current player process, along with anything it started,
// and waits for it to exit.
func (p *ExecPlayer) Stop() error {
	p.mu.Lock()
	cmd, done := p.cmd, p.done
	p.mu.Unlock()

	if cmd == nil || cmd.Process == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	default:
	}

	if err := killProcess(cmd); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("failed to stop player: %w", err)
	}
	<-done
	return nil
}

// running must be called with mu held.
func (p *ExecPlayer) running() bool {
	if p.done == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}
