package execshell

import (
	"context"

	"go.uber.org/zap"
)

const (
	logMessageResolutionFailedConstant = "interpreter resolution failed"
	logMessageCommandStartedConstant   = "running shell command"
	logMessageCommandCompletedConstant = "shell command completed"
	logMessageCommandFailedConstant    = "shell command failed"
	logFieldCommandConstant            = "command"
	logFieldExecutableConstant         = "executable"
	logFieldArgumentLineConstant       = "argument_line"
	logFieldWorkingDirectoryConstant   = "working_directory"
	logFieldExitCodeConstant           = "exit_code"
	logFieldOutputBytesConstant        = "output_bytes"
)

// ShellExecutor resolves interpreters and runs commands with logging and lifecycle notifications.
type ShellExecutor struct {
	logger        *zap.Logger
	resolver      *InterpreterResolver
	processRunner ProcessRunner
	eventObserver CommandEventObserver
}

// NewShellExecutor validates collaborators and constructs a ShellExecutor.
func NewShellExecutor(logger *zap.Logger, resolver *InterpreterResolver, processRunner ProcessRunner) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if resolver == nil {
		return nil, ErrResolverNotConfigured
	}
	if processRunner == nil {
		return nil, ErrProcessRunnerNotConfigured
	}

	return &ShellExecutor{
		logger:        logger,
		resolver:      resolver,
		processRunner: processRunner,
		eventObserver: noopCommandEventObserver{},
	}, nil
}

// NewOSShellExecutor wires a ShellExecutor against the running operating system.
func NewOSShellExecutor(logger *zap.Logger) (*ShellExecutor, error) {
	platform := NewOSPlatform()

	resolver, resolverError := NewInterpreterResolver(platform)
	if resolverError != nil {
		return nil, resolverError
	}

	processExecutor, executorError := NewProcessExecutor(platform)
	if executorError != nil {
		return nil, executorError
	}

	return NewShellExecutor(logger, resolver, processExecutor)
}

// WithObserver replaces the lifecycle observer; nil restores the no-op observer.
func (executor *ShellExecutor) WithObserver(observer CommandEventObserver) *ShellExecutor {
	if observer == nil {
		executor.eventObserver = noopCommandEventObserver{}
		return executor
	}
	executor.eventObserver = observer
	return executor
}

// Execute resolves the interpreter for the request, runs it, and waits for the process to exit.
func (executor *ShellExecutor) Execute(executionContext context.Context, request ShellCommandRequest) (ShellCommandResult, error) {
	invocation, resolveError := executor.resolver.Resolve(request)
	if resolveError != nil {
		executor.logger.Debug(logMessageResolutionFailedConstant,
			zap.String(logFieldCommandConstant, request.Command),
			zap.Error(resolveError),
		)
		executor.eventObserver.CommandExecutionFailed(request, resolveError)
		return ShellCommandResult{}, resolveError
	}

	executor.logger.Debug(logMessageCommandStartedConstant,
		zap.String(logFieldExecutableConstant, invocation.Executable),
		zap.String(logFieldArgumentLineConstant, invocation.ArgumentLine),
		zap.String(logFieldWorkingDirectoryConstant, request.WorkingDirectory),
	)
	executor.eventObserver.CommandStarted(request, invocation)

	result, runError := executor.processRunner.Run(executionContext, invocation, request.WorkingDirectory)
	if runError != nil {
		executor.logger.Debug(logMessageCommandFailedConstant,
			zap.String(logFieldExecutableConstant, invocation.Executable),
			zap.Error(runError),
		)
		executor.eventObserver.CommandExecutionFailed(request, runError)
		return ShellCommandResult{}, runError
	}

	executor.logger.Debug(logMessageCommandCompletedConstant,
		zap.String(logFieldExecutableConstant, invocation.Executable),
		zap.Int(logFieldExitCodeConstant, result.ExitCode),
		zap.Int(logFieldOutputBytesConstant, len(result.Output)),
	)
	executor.eventObserver.CommandCompleted(request, result)

	return result, nil
}

// Run executes the request on the host operating system without logging.
func Run(executionContext context.Context, request ShellCommandRequest) (ShellCommandResult, error) {
	executor, creationError := NewOSShellExecutor(zap.NewNop())
	if creationError != nil {
		return ShellCommandResult{}, creationError
	}
	return executor.Execute(executionContext, request)
}
