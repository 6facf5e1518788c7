package run

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/temirov/shellrun/internal/execshell"
	"github.com/temirov/shellrun/internal/tools"
)

const (
	outputFormatTextConstant                = "text"
	outputFormatYAMLConstant                = "yaml"
	exitCodeSummaryTemplateConstant         = "command exited with code %d"
	unsupportedOutputFormatTemplateConstant = "unsupported output format %q (expected text or yaml)"
	reportEncodingErrorTemplateConstant     = "unable to encode report: %w"
	reportWriteErrorTemplateConstant        = "unable to write output: %w"
	yamlIndentationConstant                 = 2
)

// OutputFormat selects how run results are written.
type OutputFormat string

// Supported output formats.
const (
	OutputFormatText OutputFormat = OutputFormat(outputFormatTextConstant)
	OutputFormatYAML OutputFormat = OutputFormat(outputFormatYAMLConstant)
)

// ParseOutputFormat normalizes a textual output format.
func ParseOutputFormat(value string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(value))) {
	case OutputFormatText, "":
		return OutputFormatText, nil
	case OutputFormatYAML:
		return OutputFormatYAML, nil
	default:
		return "", fmt.Errorf(unsupportedOutputFormatTemplateConstant, value)
	}
}

// CommandReport is the rendered view of one run.
type CommandReport struct {
	Command          string             `yaml:"command"`
	WorkingDirectory string             `yaml:"working_directory,omitempty"`
	ExitCode         int                `yaml:"exit_code"`
	Success          bool               `yaml:"success"`
	Output           string             `yaml:"output"`
	Diagnostics      []tools.Diagnostic `yaml:"diagnostics,omitempty"`
}

// BuildDiagnostics reports the exit code; non-zero codes use failureSeverity.
func BuildDiagnostics(result execshell.ShellCommandResult, failureSeverity tools.Severity) []tools.Diagnostic {
	severity := tools.SeverityInfo
	if result.ExitCode != 0 {
		severity = failureSeverity
	}
	return []tools.Diagnostic{{
		Severity: severity,
		Summary:  fmt.Sprintf(exitCodeSummaryTemplateConstant, result.ExitCode),
	}}
}

// NewCommandReport assembles a report from a completed tool output and the process result.
func NewCommandReport(output *tools.Output[CommandInput], result execshell.ShellCommandResult) CommandReport {
	report := CommandReport{
		ExitCode:    result.ExitCode,
		Success:     output.IsSuccess(),
		Output:      result.Output,
		Diagnostics: output.Diagnostics(),
	}
	if input := output.Input(); input != nil {
		report.Command = input.Request.Command
		report.WorkingDirectory = input.Request.WorkingDirectory
	}
	return report
}

// WriteReport renders the report in the requested format.
func WriteReport(writer io.Writer, format OutputFormat, report CommandReport) error {
	switch format {
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(yamlIndentationConstant)
		if encodeError := encoder.Encode(report); encodeError != nil {
			return fmt.Errorf(reportEncodingErrorTemplateConstant, encodeError)
		}
		if closeError := encoder.Close(); closeError != nil {
			return fmt.Errorf(reportEncodingErrorTemplateConstant, closeError)
		}
		return nil
	default:
		if _, writeError := io.WriteString(writer, report.Output); writeError != nil {
			return fmt.Errorf(reportWriteErrorTemplateConstant, writeError)
		}
		return nil
	}
}
