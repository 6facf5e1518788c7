//go:build !unix && !windows

package execshell

import "os/exec"

func configureProcessAttributes(*exec.Cmd, Invocation) {}
