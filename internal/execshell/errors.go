package execshell

import (
	"errors"
	"fmt"
	"strings"
)

const (
	workingDirectoryNotFoundTemplateConstant  = "working directory %q does not exist"
	shellNotFoundTemplateConstant             = "failed to find bash.exe; install Git Bash or add it to PATH (checked: %s)"
	shellNotFoundNoCandidatesMessageConstant  = "failed to find bash.exe; no candidate paths were available"
	checkedPathsSeparatorConstant             = ", "
	argumentLineErrorTemplateConstant         = "cannot pass %q as literal arguments: %s"
	commandCancelledTemplateConstant          = "command %q cancelled: %v"
	loggerNotConfiguredMessageConstant        = "shell executor logger not configured"
	resolverNotConfiguredMessageConstant      = "shell executor interpreter resolver not configured"
	processRunnerNotConfiguredMessageConstant = "shell executor process runner not configured"
	platformNotConfiguredMessageConstant      = "interpreter resolver platform not configured"
)

var (
	// ErrLoggerNotConfigured indicates a nil logger was supplied.
	ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)
	// ErrResolverNotConfigured indicates a nil interpreter resolver was supplied.
	ErrResolverNotConfigured = errors.New(resolverNotConfiguredMessageConstant)
	// ErrProcessRunnerNotConfigured indicates a nil process runner was supplied.
	ErrProcessRunnerNotConfigured = errors.New(processRunnerNotConfiguredMessageConstant)
	// ErrPlatformNotConfigured indicates a nil platform was supplied.
	ErrPlatformNotConfigured = errors.New(platformNotConfiguredMessageConstant)
)

// WorkingDirectoryNotFoundError reports a working directory that is missing at spawn time.
type WorkingDirectoryNotFoundError struct {
	WorkingDirectory string
}

// Error describes the missing directory.
func (notFoundError WorkingDirectoryNotFoundError) Error() string {
	return fmt.Sprintf(workingDirectoryNotFoundTemplateConstant, notFoundError.WorkingDirectory)
}

// ShellNotFoundError reports that no bash-compatible binary exists at any candidate path.
type ShellNotFoundError struct {
	CheckedPaths []string
}

// Error lists every path that was checked.
func (notFoundError ShellNotFoundError) Error() string {
	if len(notFoundError.CheckedPaths) == 0 {
		return shellNotFoundNoCandidatesMessageConstant
	}
	return fmt.Sprintf(shellNotFoundTemplateConstant, strings.Join(notFoundError.CheckedPaths, checkedPathsSeparatorConstant))
}

// ArgumentLineError reports an override argument line that cannot be split into words, such as one with an unterminated quote.
type ArgumentLineError struct {
	ArgumentLine string
	Reason       string
}

// Error describes why the argument line was rejected.
func (argumentError ArgumentLineError) Error() string {
	return fmt.Sprintf(argumentLineErrorTemplateConstant, argumentError.ArgumentLine, argumentError.Reason)
}

// CommandCancelledError reports that the context finished before the process exited.
type CommandCancelledError struct {
	Command string
	Cause   error
}

// Error describes the cancelled command.
func (cancelledError CommandCancelledError) Error() string {
	return fmt.Sprintf(commandCancelledTemplateConstant, cancelledError.Command, cancelledError.Cause)
}

// Unwrap exposes the context cause so errors.Is(err, context.Canceled) holds.
func (cancelledError CommandCancelledError) Unwrap() error {
	return cancelledError.Cause
}
