package tools

import (
	"fmt"
	"strings"
)

const (
	severityInfoStringConstant          = "info"
	severityWarningStringConstant       = "warning"
	severityErrorStringConstant         = "error"
	severityPanicStringConstant         = "panic"
	unsupportedSeverityTemplateConstant = "unsupported diagnostic severity: %s"
	diagnosticStringTemplateConstant    = "%s: %s"
)

// Severity classifies a diagnostic.
type Severity string

// Supported severities.
const (
	SeverityInfo    Severity = Severity(severityInfoStringConstant)
	SeverityWarning Severity = Severity(severityWarningStringConstant)
	SeverityError   Severity = Severity(severityErrorStringConstant)
	SeverityPanic   Severity = Severity(severityPanicStringConstant)
)

var supportedSeverities = map[Severity]struct{}{
	SeverityInfo:    {},
	SeverityWarning: {},
	SeverityError:   {},
	SeverityPanic:   {},
}

// ParseSeverity normalizes a textual severity.
func ParseSeverity(value string) (Severity, error) {
	candidate := Severity(strings.ToLower(strings.TrimSpace(value)))
	if _, supported := supportedSeverities[candidate]; !supported {
		return "", fmt.Errorf(unsupportedSeverityTemplateConstant, value)
	}
	return candidate, nil
}

// IsFailure reports whether the severity prevents a tool run from succeeding.
func (severity Severity) IsFailure() bool {
	return severity == SeverityError || severity == SeverityPanic
}

// Diagnostic is a single message produced while running a tool.
type Diagnostic struct {
	Severity Severity `yaml:"severity"`
	Summary  string   `yaml:"summary"`
}

// String renders the diagnostic as "severity: summary".
func (diagnostic Diagnostic) String() string {
	return fmt.Sprintf(diagnosticStringTemplateConstant, diagnostic.Severity, diagnostic.Summary)
}
