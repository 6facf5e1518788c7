package execshell

// ShellCommandRequest describes a single command invocation.
type ShellCommandRequest struct {
	Command                   string
	WorkingDirectory          string
	InterpreterOverride       string
	PreferPowerShellOnWindows bool
}

// ShellCommandResult captures the observable outcome of an exited process.
type ShellCommandResult struct {
	ExitCode int
	Output   string
}

// RequestOption adjusts a ShellCommandRequest during construction.
type RequestOption func(request *ShellCommandRequest)

// NewShellCommandRequest builds a request for the command. PowerShell is preferred on Windows unless an option says otherwise.
func NewShellCommandRequest(command string, options ...RequestOption) ShellCommandRequest {
	request := ShellCommandRequest{
		Command:                   command,
		PreferPowerShellOnWindows: true,
	}
	for _, option := range options {
		if option != nil {
			option(&request)
		}
	}
	return request
}

// WithWorkingDirectory sets the directory the command runs from.
func WithWorkingDirectory(workingDirectory string) RequestOption {
	return func(request *ShellCommandRequest) {
		request.WorkingDirectory = workingDirectory
	}
}

// WithInterpreterOverride runs the command text as literal arguments to the supplied executable.
func WithInterpreterOverride(interpreterPath string) RequestOption {
	return func(request *ShellCommandRequest) {
		request.InterpreterOverride = interpreterPath
	}
}

// WithPowerShellPreference toggles PowerShell versus Git Bash on Windows.
func WithPowerShellPreference(preferPowerShell bool) RequestOption {
	return func(request *ShellCommandRequest) {
		request.PreferPowerShellOnWindows = preferPowerShell
	}
}
