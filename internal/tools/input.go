package tools

// UnsanitizedInput carries the raw options shared by every tool.
type UnsanitizedInput struct {
	// WorkingDirectory is the directory the tool runs from; empty means the current directory.
	WorkingDirectory string
}

// InputSanitizer converts raw options into validated input.
type InputSanitizer[TUnsanitizedInput any, TInput any] interface {
	Sanitize(unsanitizedInput TUnsanitizedInput) (TInput, error)
}
