package execshell

import (
	"fmt"
	"strings"
)

const (
	posixShellExecutableConstant        = "bash"
	powerShellExecutableConstant        = "powershell.exe"
	windowsBashExecutableNameConstant   = "bash.exe"
	gitInstallDirectoryNameConstant     = "Git"
	gitBinaryDirectoryNameConstant      = "bin"
	commandFlagConstant                 = "-c"
	doubleQuoteConstant                 = `"`
	escapedDoubleQuoteConstant          = `\"`
	wrappedArgumentLineTemplateConstant = commandFlagConstant + ` "%s"`
)

// Invocation is the resolved interpreter call for a request.
type Invocation struct {
	// Executable is the program handed to the OS launcher.
	Executable string
	// ArgumentLine is the raw argument string exactly as a command-line launcher receives it.
	ArgumentLine string
	// Arguments is the argv ArgumentLine decodes to, for launchers that take an argument vector.
	Arguments []string
}

// InterpreterResolver picks the interpreter and argument convention for a request.
type InterpreterResolver struct {
	platform Platform
}

// NewInterpreterResolver constructs a resolver backed by the supplied platform.
func NewInterpreterResolver(platform Platform) (*InterpreterResolver, error) {
	if platform == nil {
		return nil, ErrPlatformNotConfigured
	}
	return &InterpreterResolver{platform: platform}, nil
}

// Resolve computes the invocation for the request. It never caches or retries.
func (resolver *InterpreterResolver) Resolve(request ShellCommandRequest) (Invocation, error) {
	isWindows := resolver.platform.OperatingSystem() == operatingSystemWindowsConstant

	if len(request.InterpreterOverride) > 0 {
		invocation := Invocation{
			Executable:   request.InterpreterOverride,
			ArgumentLine: request.Command,
		}
		// Windows hands ArgumentLine to CreateProcess unchanged.
		if isWindows {
			return invocation, nil
		}
		decodedArguments, decodeError := decodeArgumentLine(request.Command)
		if decodeError != nil {
			return Invocation{}, decodeError
		}
		invocation.Arguments = decodedArguments
		return invocation, nil
	}

	if !isWindows {
		return wrapCommand(posixShellExecutableConstant, request.Command), nil
	}

	if request.PreferPowerShellOnWindows {
		return wrapCommand(powerShellExecutableConstant, request.Command), nil
	}

	bashPath, discoveryError := resolver.discoverWindowsBash()
	if discoveryError != nil {
		return Invocation{}, discoveryError
	}
	return wrapCommand(bashPath, request.Command), nil
}

// CandidateBashPaths lists the Windows bash locations in search order.
func (resolver *InterpreterResolver) CandidateBashPaths() []string {
	programFilesDirectory, programFilesX86Directory := resolver.platform.ProgramFilesDirectories()

	candidatePaths := make([]string, 0)
	for _, installRoot := range []string{programFilesDirectory, programFilesX86Directory} {
		if len(installRoot) == 0 {
			continue
		}
		candidatePaths = append(candidatePaths, resolver.platform.JoinPath(installRoot, gitInstallDirectoryNameConstant, gitBinaryDirectoryNameConstant, windowsBashExecutableNameConstant))
	}

	for _, searchDirectory := range resolver.platform.SearchPathDirectories() {
		if len(searchDirectory) == 0 {
			continue
		}
		candidatePaths = append(candidatePaths, resolver.platform.JoinPath(searchDirectory, windowsBashExecutableNameConstant))
	}

	return candidatePaths
}

func (resolver *InterpreterResolver) discoverWindowsBash() (string, error) {
	candidatePaths := resolver.CandidateBashPaths()
	for _, candidatePath := range candidatePaths {
		if resolver.platform.FileExists(candidatePath) {
			return candidatePath, nil
		}
	}
	return "", ShellNotFoundError{CheckedPaths: candidatePaths}
}

// EscapeDoubleQuotes prefixes every double quote with a backslash.
func EscapeDoubleQuotes(command string) string {
	return strings.ReplaceAll(command, doubleQuoteConstant, escapedDoubleQuoteConstant)
}

func wrapCommand(executable string, command string) Invocation {
	return Invocation{
		Executable:   executable,
		ArgumentLine: fmt.Sprintf(wrappedArgumentLineTemplateConstant, EscapeDoubleQuotes(command)),
		Arguments:    []string{commandFlagConstant, command},
	}
}
