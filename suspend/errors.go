package suspend

import "fmt"

// EditorError wraps a failure surfaced by the line editor, such as a
// terminal read error or undecodable input.
type EditorError struct {
	Err error
}

func (e *EditorError) Error() string {
	return fmt.Sprintf("editor error: %v", e.Err)
}

func (e *EditorError) Unwrap() error {
	return e.Err
}

// SuspendError wraps a failure to stop the process.
type SuspendError struct {
	Err error
}

func (e *SuspendError) Error() string {
	return fmt.Sprintf("failed during suspend operation: %v", e.Err)
}

func (e *SuspendError) Unwrap() error {
	return e.Err
}
