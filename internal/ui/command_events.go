package ui

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/shellrun/internal/execshell"
)

const (
	commandStartedMessageTemplateConstant          = "Running %s"
	commandCompletedMessageTemplateConstant        = "Completed %s"
	commandFailedExitCodeMessageTemplateConstant   = "%s exited with code %d"
	commandExecutionFailureMessageTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant                   = "%s%s"
	interpreterSuffixTemplateConstant              = " via %s"
	workingDirectorySuffixTemplateConstant         = " (in %s)"
	unknownFailureMessageConstant                  = "unknown error"
	emptyStringConstant                            = ""
)

// CommandEventFormatter builds human-readable messages for command lifecycle events.
type CommandEventFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandEventFormatter) BuildStartedMessage(request execshell.ShellCommandRequest, invocation execshell.Invocation) string {
	commandLabel := formatter.formatCommandLabel(request) + fmt.Sprintf(interpreterSuffixTemplateConstant, invocation.Executable)
	return fmt.Sprintf(commandStartedMessageTemplateConstant, commandLabel)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandEventFormatter) BuildSuccessMessage(request execshell.ShellCommandRequest) string {
	return fmt.Sprintf(commandCompletedMessageTemplateConstant, formatter.formatCommandLabel(request))
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandEventFormatter) BuildFailureMessage(request execshell.ShellCommandRequest, result execshell.ShellCommandResult) string {
	return fmt.Sprintf(commandFailedExitCodeMessageTemplateConstant, formatter.formatCommandLabel(request), result.ExitCode)
}

// BuildExecutionFailureMessage formats the message describing a failure that produced no result.
func (formatter CommandEventFormatter) BuildExecutionFailureMessage(request execshell.ShellCommandRequest, failure error) string {
	failureMessage := unknownFailureMessageConstant
	if failure != nil {
		failureMessage = failure.Error()
	}
	return fmt.Sprintf(commandExecutionFailureMessageTemplateConstant, formatter.formatCommandLabel(request), failureMessage)
}

func (formatter CommandEventFormatter) formatCommandLabel(request execshell.ShellCommandRequest) string {
	commandLabel := strings.TrimSpace(request.Command)
	if len(request.InterpreterOverride) > 0 {
		commandLabel = strings.TrimSpace(request.InterpreterOverride + " " + commandLabel)
	}
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, formatter.formatWorkingDirectorySuffix(request))
}

func (formatter CommandEventFormatter) formatWorkingDirectorySuffix(request execshell.ShellCommandRequest) string {
	trimmedWorkingDirectory := strings.TrimSpace(request.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

// ConsoleCommandEventLogger renders command lifecycle events using a zap logger configured for human-readable output.
type ConsoleCommandEventLogger struct {
	logger    *zap.Logger
	formatter CommandEventFormatter
}

// NewConsoleCommandEventLogger constructs a console event logger backed by the provided zap logger.
func NewConsoleCommandEventLogger(logger *zap.Logger) *ConsoleCommandEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleCommandEventLogger{logger: logger, formatter: CommandEventFormatter{}}
}

// CommandStarted implements execshell.CommandEventObserver by logging command start notifications.
func (eventLogger *ConsoleCommandEventLogger) CommandStarted(request execshell.ShellCommandRequest, invocation execshell.Invocation) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Info(eventLogger.formatter.BuildStartedMessage(request, invocation))
}

// CommandCompleted implements execshell.CommandEventObserver by logging command completion notifications.
func (eventLogger *ConsoleCommandEventLogger) CommandCompleted(request execshell.ShellCommandRequest, result execshell.ShellCommandResult) {
	if eventLogger == nil {
		return
	}
	if result.ExitCode == 0 {
		eventLogger.logger.Info(eventLogger.formatter.BuildSuccessMessage(request))
		return
	}
	eventLogger.logger.Warn(eventLogger.formatter.BuildFailureMessage(request, result))
}

// CommandExecutionFailed implements execshell.CommandEventObserver by logging failures that produced no result.
func (eventLogger *ConsoleCommandEventLogger) CommandExecutionFailed(request execshell.ShellCommandRequest, failure error) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Error(eventLogger.formatter.BuildExecutionFailureMessage(request, failure))
}
