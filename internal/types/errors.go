package types

import "fmt"

// FormatError is returned when a spectrum file violates the text format.
//
// FormatError is a hard failure: the decode is aborted and no partial
// spectrum is returned.
type FormatError struct {
	Err    error  // underlying parse error, if any
	Path   string // file path, empty when decoding an anonymous stream
	Field  string // header key or "signature"
	Reason string
	Line   int // 1-based line number, 0 if unknown
}

func (e *FormatError) Error() string {
	path := e.Path
	if path == "" {
		path = "<stream>"
	}
	msg := fmt.Sprintf("%s: line %d: %s", path, e.Line, e.Reason)
	if e.Field != "" {
		msg = fmt.Sprintf("%s: line %d: %s: %s", path, e.Line, e.Field, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying parse error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError is returned when no registered decoder recognises the input.
//
// When the input looked like it might be an Esprit export, Err holds the
// *FormatError describing which signature line failed.
type UnsupportedFormatError struct {
	Err    error
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	msg := fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the signature error, if any.
func (e *UnsupportedFormatError) Unwrap() error {
	return e.Err
}

// Warning represents a non-fatal issue encountered during decoding.
//
// Warnings never change the outcome of a decode. Examples include:
//   - A data row whose count is not a number
//   - A data row with no count column
//   - A data section shorter than the declared channel count
type Warning struct {
	// Stage where the warning occurred
	Stage string // "header", "channels"

	// Warning message
	Message string

	// Line where the issue occurred (0 if not applicable)
	Line int
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s (at line %d): %s", w.Stage, w.Line, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
