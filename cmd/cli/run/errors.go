package run

import "fmt"

const exitCodeErrorTemplateConstant = "command exited with code %d"

// ExitCodeError carries a non-zero child exit code up to the process entrypoint.
type ExitCodeError struct {
	ExitCode int
}

// Error describes the exit code.
func (exitCodeError ExitCodeError) Error() string {
	return fmt.Sprintf(exitCodeErrorTemplateConstant, exitCodeError.ExitCode)
}
