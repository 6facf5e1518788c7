package run

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/temirov/shellrun/internal/execshell"
	"github.com/temirov/shellrun/internal/tools"
	pathutils "github.com/temirov/shellrun/internal/utils/path"
)

const (
	commandWordSeparatorConstant          = " "
	missingCommandMessageConstant         = "a command is required after --"
	commandWordQuoteErrorTemplateConstant = "cannot quote command word %q: %w"
	windowsOperatingSystemConstant        = "windows"
	overrideQuoteCharactersConstant       = " \t\n\r\v\f'\"\\"
	windowsQuoteCharactersConstant        = " \t\n\v\""
)

// ErrMissingCommand indicates that no command words were supplied.
var ErrMissingCommand = errors.New(missingCommandMessageConstant)

// UnsanitizedCommandInput carries raw run options gathered from flags and configuration.
type UnsanitizedCommandInput struct {
	tools.UnsanitizedInput
	CommandWords              []string
	Interpreter               string
	PreferPowerShellOnWindows bool
}

// CommandInput is the validated request handed to the shell executor.
type CommandInput struct {
	Request execshell.ShellCommandRequest
}

// CommandInputSanitizer trims raw options and expands home shortcuts in the working directory.
type CommandInputSanitizer struct {
	homeExpander    *pathutils.HomeExpander
	operatingSystem string
}

var _ tools.InputSanitizer[UnsanitizedCommandInput, CommandInput] = (*CommandInputSanitizer)(nil)

// NewCommandInputSanitizer constructs a sanitizer; a nil expander uses the operating system home directory.
func NewCommandInputSanitizer(homeExpander *pathutils.HomeExpander) *CommandInputSanitizer {
	return NewCommandInputSanitizerForOperatingSystem(homeExpander, runtime.GOOS)
}

// NewCommandInputSanitizerForOperatingSystem constructs a sanitizer that quotes interpreter override
// arguments for the named operating system.
func NewCommandInputSanitizerForOperatingSystem(homeExpander *pathutils.HomeExpander, operatingSystem string) *CommandInputSanitizer {
	if homeExpander == nil {
		homeExpander = pathutils.NewHomeExpander()
	}
	return &CommandInputSanitizer{homeExpander: homeExpander, operatingSystem: operatingSystem}
}

// Sanitize joins the command words into a single command line and builds the shell request.
// A single word is used verbatim as the script; several words are quoted so each reaches the
// interpreter as one argument.
func (sanitizer *CommandInputSanitizer) Sanitize(unsanitizedInput UnsanitizedCommandInput) (CommandInput, error) {
	if len(strings.TrimSpace(strings.Join(unsanitizedInput.CommandWords, commandWordSeparatorConstant))) == 0 {
		return CommandInput{}, ErrMissingCommand
	}

	interpreter := strings.TrimSpace(unsanitizedInput.Interpreter)
	commandLine, joinError := sanitizer.joinCommandWords(unsanitizedInput.CommandWords, len(interpreter) > 0)
	if joinError != nil {
		return CommandInput{}, joinError
	}

	workingDirectory := sanitizer.homeExpander.Expand(strings.TrimSpace(unsanitizedInput.WorkingDirectory))

	request := execshell.NewShellCommandRequest(
		commandLine,
		execshell.WithWorkingDirectory(workingDirectory),
		execshell.WithInterpreterOverride(interpreter),
		execshell.WithPowerShellPreference(unsanitizedInput.PreferPowerShellOnWindows),
	)

	return CommandInput{Request: request}, nil
}

func (sanitizer *CommandInputSanitizer) joinCommandWords(commandWords []string, interpreterOverridden bool) (string, error) {
	if len(commandWords) == 1 {
		return strings.TrimSpace(commandWords[0]), nil
	}

	quotedWords := make([]string, 0, len(commandWords))
	for _, commandWord := range commandWords {
		switch {
		case !interpreterOverridden:
			quotedWord, quoteError := syntax.Quote(commandWord, syntax.LangBash)
			if quoteError != nil {
				return "", fmt.Errorf(commandWordQuoteErrorTemplateConstant, commandWord, quoteError)
			}
			quotedWords = append(quotedWords, quotedWord)
		case sanitizer.operatingSystem == windowsOperatingSystemConstant:
			quotedWords = append(quotedWords, quoteWindowsArgument(commandWord))
		default:
			quotedWords = append(quotedWords, quoteOverrideArgument(commandWord))
		}
	}

	return strings.Join(quotedWords, commandWordSeparatorConstant), nil
}

// quoteOverrideArgument single-quotes a word for the override argument line splitter, which
// treats every character other than whitespace, quotes and backslashes literally.
func quoteOverrideArgument(commandWord string) string {
	if len(commandWord) > 0 && !strings.ContainsAny(commandWord, overrideQuoteCharactersConstant) {
		return commandWord
	}
	return "'" + strings.ReplaceAll(commandWord, "'", `'\''`) + "'"
}

// quoteWindowsArgument follows the CommandLineToArgvW rules used by syscall.EscapeArg.
func quoteWindowsArgument(commandWord string) string {
	if len(commandWord) == 0 {
		return `""`
	}
	if !strings.ContainsAny(commandWord, windowsQuoteCharactersConstant) {
		return commandWord
	}

	var quotedWord strings.Builder
	quotedWord.WriteByte('"')
	pendingBackslashes := 0
	for index := 0; index < len(commandWord); index++ {
		character := commandWord[index]
		switch character {
		case '\\':
			pendingBackslashes++
		case '"':
			quotedWord.WriteString(strings.Repeat(`\`, pendingBackslashes*2+1))
			quotedWord.WriteByte(character)
			pendingBackslashes = 0
		default:
			quotedWord.WriteString(strings.Repeat(`\`, pendingBackslashes))
			quotedWord.WriteByte(character)
			pendingBackslashes = 0
		}
	}
	quotedWord.WriteString(strings.Repeat(`\`, pendingBackslashes*2))
	quotedWord.WriteByte('"')

	return quotedWord.String()
}
