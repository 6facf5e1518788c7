package run

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/shellrun/internal/execshell"
	"github.com/temirov/shellrun/internal/tools"
	"github.com/temirov/shellrun/internal/ui"
)

const (
	commandUseConstant                    = "run [flags] -- <command words>"
	commandShortDescriptionConstant       = "Run a shell command and report its output and exit code"
	commandLongDescriptionConstant        = "run executes the command through bash, PowerShell, or an explicit interpreter, waits for it to exit, and prints the combined standard output and standard error."
	workingDirectoryFlagNameConstant      = "working-directory"
	workingDirectoryFlagUsageConstant     = "Directory to run the command from (must exist)"
	interpreterFlagNameConstant           = "interpreter"
	interpreterFlagUsageConstant          = "Executable that receives the command words as literal arguments"
	preferPowerShellFlagNameConstant      = "prefer-powershell"
	preferPowerShellFlagUsageConstant     = "Use PowerShell instead of Git Bash on Windows"
	profileFlagNameConstant               = "profile"
	profileFlagUsageConstant              = "Named configuration profile to apply"
	outputFlagNameConstant                = "output"
	outputFlagUsageConstant               = "Output format: text or yaml"
	executorCreationErrorTemplateConstant = "unable to construct shell executor: %w"
	exitCodeSeverityErrorTemplateConstant = "invalid exit code severity: %w"
	commandExecutionErrorTemplateConstant = "command execution failed: %w"
	logMessageCommandFinishedConstant     = "run completed"
	logMessageCommandFailedConstant       = "run failed"
	logFieldCommandConstant               = "command"
	logFieldExitCodeConstant              = "exit_code"
	logFieldSuccessConstant               = "success"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandExecutor runs a single shell request.
type CommandExecutor interface {
	Execute(executionContext context.Context, request execshell.ShellCommandRequest) (execshell.ShellCommandResult, error)
}

// CommandBuilder assembles the run Cobra command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	Executor                     CommandExecutor
	Sanitizer                    tools.InputSanitizer[UnsanitizedCommandInput, CommandInput]
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

type commandOptions struct {
	unsanitizedInput UnsanitizedCommandInput
	outputFormat     OutputFormat
	failureSeverity  tools.Severity
}

// Build constructs the run command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.MinimumNArgs(1),
		RunE:          builder.run,
	}

	command.Flags().String(workingDirectoryFlagNameConstant, "", workingDirectoryFlagUsageConstant)
	command.Flags().String(interpreterFlagNameConstant, "", interpreterFlagUsageConstant)
	command.Flags().Bool(preferPowerShellFlagNameConstant, true, preferPowerShellFlagUsageConstant)
	command.Flags().String(profileFlagNameConstant, "", profileFlagUsageConstant)
	command.Flags().String(outputFlagNameConstant, string(OutputFormatText), outputFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()

	commandInput, sanitizeError := builder.resolveSanitizer().Sanitize(options.unsanitizedInput)
	if sanitizeError != nil {
		return sanitizeError
	}

	executor, executorError := builder.resolveExecutor(logger)
	if executorError != nil {
		return executorError
	}

	result, executionError := executor.Execute(command.Context(), commandInput.Request)
	if executionError != nil {
		logger.Error(logMessageCommandFailedConstant,
			zap.String(logFieldCommandConstant, commandInput.Request.Command),
			zap.Error(executionError),
		)
		return fmt.Errorf(commandExecutionErrorTemplateConstant, executionError)
	}

	toolOutput := tools.NewOutput(&commandInput)
	toolOutput.Complete(BuildDiagnostics(result, options.failureSeverity))

	logger.Info(logMessageCommandFinishedConstant,
		zap.String(logFieldCommandConstant, commandInput.Request.Command),
		zap.Int(logFieldExitCodeConstant, result.ExitCode),
		zap.Bool(logFieldSuccessConstant, toolOutput.IsSuccess()),
	)

	if writeError := WriteReport(command.OutOrStdout(), options.outputFormat, NewCommandReport(toolOutput, result)); writeError != nil {
		return writeError
	}

	if result.ExitCode != 0 {
		return ExitCodeError{ExitCode: result.ExitCode}
	}
	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (commandOptions, error) {
	configuration := builder.resolveConfiguration()

	profileName, _ := command.Flags().GetString(profileFlagNameConstant)
	if len(strings.TrimSpace(profileName)) > 0 {
		profile, profileError := configuration.Profile(profileName)
		if profileError != nil {
			return commandOptions{}, profileError
		}
		configuration = configuration.ApplyProfile(profile)
	}

	unsanitizedInput := UnsanitizedCommandInput{
		UnsanitizedInput:          tools.UnsanitizedInput{WorkingDirectory: configuration.WorkingDirectory},
		CommandWords:              append([]string(nil), arguments...),
		Interpreter:               configuration.Interpreter,
		PreferPowerShellOnWindows: configuration.PreferPowerShellOnWindows,
	}

	if command.Flags().Changed(workingDirectoryFlagNameConstant) {
		unsanitizedInput.WorkingDirectory, _ = command.Flags().GetString(workingDirectoryFlagNameConstant)
	}
	if command.Flags().Changed(interpreterFlagNameConstant) {
		unsanitizedInput.Interpreter, _ = command.Flags().GetString(interpreterFlagNameConstant)
	}
	if command.Flags().Changed(preferPowerShellFlagNameConstant) {
		unsanitizedInput.PreferPowerShellOnWindows, _ = command.Flags().GetBool(preferPowerShellFlagNameConstant)
	}

	outputFlagValue, _ := command.Flags().GetString(outputFlagNameConstant)
	outputFormat, formatError := ParseOutputFormat(outputFlagValue)
	if formatError != nil {
		return commandOptions{}, formatError
	}

	failureSeverity, severityError := tools.ParseSeverity(configuration.ExitCodeSeverity)
	if severityError != nil {
		return commandOptions{}, fmt.Errorf(exitCodeSeverityErrorTemplateConstant, severityError)
	}

	return commandOptions{
		unsanitizedInput: unsanitizedInput,
		outputFormat:     outputFormat,
		failureSeverity:  failureSeverity,
	}, nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	configuration := builder.ConfigurationProvider()
	if len(strings.TrimSpace(configuration.ExitCodeSeverity)) == 0 {
		configuration.ExitCodeSeverity = defaultExitCodeSeverityConstant
	}
	return configuration
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	var logger *zap.Logger
	if builder.LoggerProvider != nil {
		logger = builder.LoggerProvider()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveSanitizer() tools.InputSanitizer[UnsanitizedCommandInput, CommandInput] {
	if builder.Sanitizer != nil {
		return builder.Sanitizer
	}
	return NewCommandInputSanitizer(nil)
}

func (builder *CommandBuilder) resolveExecutor(logger *zap.Logger) (CommandExecutor, error) {
	if builder.Executor != nil {
		return builder.Executor, nil
	}

	shellExecutor, creationError := execshell.NewOSShellExecutor(logger)
	if creationError != nil {
		return nil, fmt.Errorf(executorCreationErrorTemplateConstant, creationError)
	}

	if builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider() {
		shellExecutor.WithObserver(ui.NewConsoleCommandEventLogger(logger))
	}

	return shellExecutor, nil
}
