package tools

// Output holds a tool's sanitized input, its diagnostics, and the derived success flag.
type Output[TInput any] struct {
	input       *TInput
	diagnostics []Diagnostic
	isSuccess   bool
	completed   bool
}

// NewOutput creates an output for the given input; nil means the input never sanitized.
func NewOutput[TInput any](input *TInput) *Output[TInput] {
	return &Output[TInput]{input: input}
}

// Complete records diagnostics and derives success: false without input,
// false when any diagnostic is an error or panic, true otherwise.
func (output *Output[TInput]) Complete(diagnostics []Diagnostic) {
	output.diagnostics = append([]Diagnostic(nil), diagnostics...)
	output.completed = true

	if output.input == nil {
		output.isSuccess = false
		return
	}

	output.isSuccess = true
	for _, diagnostic := range output.diagnostics {
		if diagnostic.Severity.IsFailure() {
			output.isSuccess = false
			return
		}
	}
}

// Input returns the sanitized input, or nil.
func (output *Output[TInput]) Input() *TInput {
	return output.input
}

// Diagnostics returns a copy of the recorded diagnostics.
func (output *Output[TInput]) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), output.diagnostics...)
}

// IsSuccess reports the derived success flag; false until Complete runs.
func (output *Output[TInput]) IsSuccess() bool {
	return output.completed && output.isSuccess
}
