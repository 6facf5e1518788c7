// Package execshell runs shell commands synchronously and captures their merged output.
//
// InterpreterResolver picks the executable and argument line for a request,
// ProcessExecutor spawns the child with redirected stdout/stderr and funnels both
// streams through a single consumer into an OutputAggregator, and ShellExecutor
// ties the two together with zap logging and lifecycle notifications. Platform
// isolates filesystem and environment probing so resolution can be tested with
// deterministic fakes.
package execshell
