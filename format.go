package spectxt

import (
	"io"

	"github.com/simonhull/spectxt/internal/bruker"
	"github.com/simonhull/spectxt/internal/registry"
	"github.com/simonhull/spectxt/internal/types"
)

// Format is an alias to types.Format.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown    = types.FormatUnknown
	FormatBrukerText = types.FormatBrukerText
)

// Sniff reports whether r starts with the Bruker Esprit signature lines.
//
// Sniff never returns an error. It consumes only the bytes it compares
// and does not rewind r; use DetectFormat to sniff a seekable source
// without losing its position.
func Sniff(r io.Reader) bool {
	return bruker.Sniff(r)
}

// DetectFormat determines the spectrum format of r by sniffing its first
// lines. r is rewound to its start before returning.
//
// When nothing matches, the returned *UnsupportedFormatError wraps the
// *FormatError naming the signature line that failed, so errors.As finds
// either type.
func DetectFormat(r io.ReadSeeker, path string) (Format, error) {
	format, err := registry.Detect(r)
	if err != nil {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read file header: " + err.Error(),
		}
	}
	if format == FormatUnknown {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "unrecognised file signature",
			Err:    signatureCause(r, path),
		}
	}
	return format, nil
}

// signatureCause re-reads the start of r to explain a failed sniff.
// r is rewound afterwards.
func signatureCause(r io.ReadSeeker, path string) error {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil
	}
	defer r.Seek(0, io.SeekStart) //nolint:errcheck
	return bruker.CheckSignature(r, path)
}
