// Package registry manages format-specific decoders for spectrum file types.
package registry

import (
	"io"

	"github.com/simonhull/spectxt/internal/types"
)

// FormatParser is the interface all format decoders implement.
type FormatParser interface {
	// Parse decodes a spectrum from r. It must not close r.
	// Returns a partially initialized File (Path and Format set by caller).
	Parse(r io.Reader, path string, opts types.ParseOptions) (*types.File, error)
}

// Sniffer is implemented by decoders that can recognise their format
// from the start of a stream.
type Sniffer interface {
	// Sniff reports whether r starts with this format. It may consume r.
	Sniff(r io.Reader) bool
}

type entry struct {
	parser FormatParser
	format types.Format
}

// parsers holds the registered decoders in registration order.
var parsers []entry

// Register registers a parser for a format.
// This is called by format packages during initialization (init functions).
// Registering a format again replaces the earlier parser in place.
func Register(format types.Format, parser FormatParser) {
	for i := range parsers {
		if parsers[i].format == format {
			parsers[i].parser = parser
			return
		}
	}
	parsers = append(parsers, entry{format: format, parser: parser})
}

// Get returns the parser for a given format.
// Returns nil if no parser is registered for the format.
func Get(format types.Format) FormatParser {
	for _, e := range parsers {
		if e.format == format {
			return e.parser
		}
	}
	return nil
}

// Detect asks each registered Sniffer, in registration order, whether r
// holds its format. r is rewound before every attempt and once more before
// returning.
func Detect(r io.ReadSeeker) (types.Format, error) {
	defer r.Seek(0, io.SeekStart) //nolint:errcheck // Best effort rewind, the caller re-seeks on use

	for _, e := range parsers {
		s, ok := e.parser.(Sniffer)
		if !ok {
			continue
		}
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return types.FormatUnknown, err
		}
		if s.Sniff(r) {
			return e.format, nil
		}
	}
	return types.FormatUnknown, nil
}
