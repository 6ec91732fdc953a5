// Package text provides line-oriented reading primitives with position tracking
package text

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineReader wraps an io.Reader with line-number tracking and helpful error messages.
//
// LineReader never closes the underlying reader.
type LineReader struct {
	r    *bufio.Reader
	path string
	line int
}

// NewLineReader creates a new LineReader. path is used only in error messages.
func NewLineReader(r io.Reader, path string) *LineReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &LineReader{
		r:    br,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (lr *LineReader) Path() string {
	return lr.path
}

// Line returns the 1-based number of the last line returned by ReadLine.
func (lr *LineReader) Line() int {
	return lr.line
}

// ReadLine returns the next line without its "\n" or "\r\n" terminator.
//
// A final line without a terminator is returned normally; the following
// call returns io.EOF. Other read errors are wrapped with the path and
// line number.
func (lr *LineReader) ReadLine() (string, error) {
	s, err := lr.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%s: failed to read line %d: %w", lr.path, lr.line+1, err)
		}
		if s == "" {
			return "", io.EOF
		}
	}
	lr.line++
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}
