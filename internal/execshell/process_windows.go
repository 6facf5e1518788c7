//go:build windows

package execshell

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// configureProcessAttributes hands the raw argument line to CreateProcess and suppresses the console window.
func configureProcessAttributes(command *exec.Cmd, invocation Invocation) {
	commandLine := syscall.EscapeArg(invocation.Executable)
	if len(invocation.ArgumentLine) > 0 {
		commandLine += " " + invocation.ArgumentLine
	}

	command.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
		CmdLine:       commandLine,
	}
}
