package execshell

// CommandEventObserver receives lifecycle notifications for shell command execution.
type CommandEventObserver interface {
	// CommandStarted notifies observers that the resolved invocation is about to be spawned.
	CommandStarted(request ShellCommandRequest, invocation Invocation)
	// CommandCompleted notifies observers that the process exited and supplies the result.
	CommandCompleted(request ShellCommandRequest, result ShellCommandResult)
	// CommandExecutionFailed reports failures that prevented a result from being produced.
	CommandExecutionFailed(request ShellCommandRequest, failure error)
}

type noopCommandEventObserver struct{}

func (noopCommandEventObserver) CommandStarted(ShellCommandRequest, Invocation) {}

func (noopCommandEventObserver) CommandCompleted(ShellCommandRequest, ShellCommandResult) {}

func (noopCommandEventObserver) CommandExecutionFailed(ShellCommandRequest, error) {}
