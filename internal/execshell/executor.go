package execshell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	lineChannelCapacityConstant            = 64
	defaultCancellationGracePeriodConstant = 2 * time.Second
	lineDelimiterConstant                  = '\n'
	carriageReturnConstant                 = "\r"
	outputReadErrorTemplateConstant        = "failed to read output of %s: %w"
)

// ProcessRunner launches a resolved invocation and waits for it to exit.
type ProcessRunner interface {
	Run(executionContext context.Context, invocation Invocation, workingDirectory string) (ShellCommandResult, error)
}

// ProcessExecutor spawns interpreters with redirected output streams.
type ProcessExecutor struct {
	platform                Platform
	cancellationGracePeriod time.Duration
}

// ProcessExecutorOption adjusts a ProcessExecutor.
type ProcessExecutorOption func(executor *ProcessExecutor)

// WithCancellationGracePeriod bounds how long output pipes stay open after cancellation kills the process.
func WithCancellationGracePeriod(gracePeriod time.Duration) ProcessExecutorOption {
	return func(executor *ProcessExecutor) {
		if gracePeriod >= 0 {
			executor.cancellationGracePeriod = gracePeriod
		}
	}
}

// NewProcessExecutor constructs an executor that validates working directories against the platform.
func NewProcessExecutor(platform Platform, options ...ProcessExecutorOption) (*ProcessExecutor, error) {
	if platform == nil {
		return nil, ErrPlatformNotConfigured
	}

	executor := &ProcessExecutor{
		platform:                platform,
		cancellationGracePeriod: defaultCancellationGracePeriodConstant,
	}
	for _, option := range options {
		if option != nil {
			option(executor)
		}
	}
	return executor, nil
}

// Run spawns the invocation, collects both output streams line by line, and blocks until the process exits.
// Launch failures from the operating system are returned unmodified.
func (executor *ProcessExecutor) Run(executionContext context.Context, invocation Invocation, workingDirectory string) (ShellCommandResult, error) {
	if len(workingDirectory) > 0 && !executor.platform.DirectoryExists(workingDirectory) {
		return ShellCommandResult{}, WorkingDirectoryNotFoundError{WorkingDirectory: workingDirectory}
	}

	if executionContext == nil {
		executionContext = context.Background()
	}

	command := exec.CommandContext(executionContext, invocation.Executable, invocation.Arguments...)
	if len(workingDirectory) > 0 {
		command.Dir = workingDirectory
	}
	configureProcessAttributes(command, invocation)

	standardOutput, standardOutputError := command.StdoutPipe()
	if standardOutputError != nil {
		return ShellCommandResult{}, standardOutputError
	}
	standardError, standardErrorError := command.StderrPipe()
	if standardErrorError != nil {
		return ShellCommandResult{}, standardErrorError
	}

	if startError := command.Start(); startError != nil {
		return ShellCommandResult{}, startError
	}

	aggregator := NewOutputAggregator()
	lineChannel := make(chan string, lineChannelCapacityConstant)
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		for line := range lineChannel {
			aggregator.AppendLine(line)
		}
	}()

	watcherDone := make(chan struct{})
	go executor.closePipesOnCancellation(executionContext, watcherDone, standardOutput, standardError)

	var readerGroup errgroup.Group
	readerGroup.Go(func() error {
		return forwardLines(standardOutput, lineChannel)
	})
	readerGroup.Go(func() error {
		return forwardLines(standardError, lineChannel)
	})
	readError := readerGroup.Wait()
	close(lineChannel)
	<-consumerDone
	close(watcherDone)

	waitError := command.Wait()

	if executionContext.Err() != nil {
		return ShellCommandResult{}, CommandCancelledError{Command: invocation.ArgumentLine, Cause: context.Cause(executionContext)}
	}

	if readError != nil {
		return ShellCommandResult{}, fmt.Errorf(outputReadErrorTemplateConstant, invocation.Executable, readError)
	}

	exitCode := 0
	if waitError != nil {
		exitError := &exec.ExitError{}
		if !errors.As(waitError, &exitError) {
			return ShellCommandResult{}, waitError
		}
		exitCode = exitError.ExitCode()
	}

	return ShellCommandResult{
		ExitCode: exitCode,
		Output:   aggregator.String(),
	}, nil
}

// closePipesOnCancellation unblocks the readers when descendants keep the pipes open after the process is killed.
func (executor *ProcessExecutor) closePipesOnCancellation(executionContext context.Context, watcherDone <-chan struct{}, pipes ...io.Closer) {
	select {
	case <-watcherDone:
		return
	case <-executionContext.Done():
	}

	graceTimer := time.NewTimer(executor.cancellationGracePeriod)
	defer graceTimer.Stop()

	select {
	case <-watcherDone:
	case <-graceTimer.C:
		for _, pipe := range pipes {
			_ = pipe.Close()
		}
	}
}

func forwardLines(stream io.Reader, lineChannel chan<- string) error {
	lineReader := bufio.NewReader(stream)
	for {
		line, readError := lineReader.ReadString(lineDelimiterConstant)
		if len(line) > 0 {
			lineChannel <- trimLineTerminator(line)
		}
		if readError != nil {
			if errors.Is(readError, io.EOF) || errors.Is(readError, os.ErrClosed) {
				return nil
			}
			return readError
		}
	}
}

func trimLineTerminator(line string) string {
	trimmedLine := strings.TrimSuffix(line, string(lineDelimiterConstant))
	return strings.TrimSuffix(trimmedLine, carriageReturnConstant)
}
