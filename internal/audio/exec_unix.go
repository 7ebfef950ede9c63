//go:build unix

package audio

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// setProcessGroup starts the player in its own process group so that
// wrapper scripts and their children can be stopped together.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcess kills the player's whole process group.
func killProcess(cmd *exec.Cmd) error {
	err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	if errors.Is(err, syscall.ESRCH) {
		return os.ErrProcessDone
	}
	return err
}
