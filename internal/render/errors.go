package render

import "fmt"

// RenderError represents a failure while producing one artifact.
type RenderError struct {
	Format  string // "pdf", "docx", "preview"
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s: %s", e.Format, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
