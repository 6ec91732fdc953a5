package bruker

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/spectxt/internal/text"
)

// Signature lines that open every Esprit text export.
const (
	vendorSignature = "Bruker Nano GmbH Berlin, Germany"
	productPrefix   = "Esprit"
)

// Sniff reports whether r starts with the Esprit signature lines.
//
// Sniff never fails: read errors, a short stream and mismatches all
// report false. It reads r one byte at a time and consumes only what it
// compares: the vendor line with its terminator and the first
// len("Esprit") bytes of the product line. r is not rewound.
func Sniff(r io.Reader) bool {
	var b [1]byte
	vendor := make([]byte, 0, len(vendorSignature)+1)
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return false
		}
		if b[0] == '\n' {
			break
		}
		if len(vendor) == cap(vendor) {
			return false
		}
		vendor = append(vendor, b[0])
	}
	if string(bytes.TrimSuffix(vendor, []byte{'\r'})) != vendorSignature {
		return false
	}

	product := make([]byte, len(productPrefix))
	if _, err := io.ReadFull(r, product); err != nil {
		return false
	}
	return string(product) == productPrefix
}

// CheckSignature reads the signature lines from r and returns a
// *types.FormatError describing the first one that is missing or wrong.
// It returns nil when r opens with a valid signature.
func CheckSignature(r io.Reader, path string) error {
	return readSignature(text.NewLineReader(r, path))
}

// readSignature consumes the two signature lines, failing with a
// FormatError when either is missing or wrong.
func readSignature(lr *text.LineReader) error {
	vendor, err := lr.ReadLine()
	if err != nil {
		return signatureError(lr.Path(), 1, "missing vendor line", err)
	}
	if vendor != vendorSignature {
		return signatureError(lr.Path(), 1, fmt.Sprintf("expected %q, got %q", vendorSignature, vendor), nil)
	}
	product, err := lr.ReadLine()
	if err != nil {
		return signatureError(lr.Path(), 2, "missing product line", err)
	}
	if !strings.HasPrefix(product, productPrefix) {
		return signatureError(lr.Path(), 2, fmt.Sprintf("expected prefix %q, got %q", productPrefix, product), nil)
	}
	return nil
}
