//go:build unix

package execshell

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// configureProcessAttributes places the child in its own process group so cancellation reaches its descendants.
func configureProcessAttributes(command *exec.Cmd, _ Invocation) {
	command.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	command.Cancel = func() error {
		if command.Process == nil {
			return nil
		}
		killError := syscall.Kill(-command.Process.Pid, syscall.SIGKILL)
		if errors.Is(killError, syscall.ESRCH) {
			return os.ErrProcessDone
		}
		return killError
	}
}
