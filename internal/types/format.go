package types

// Format represents a detected spectrum file format.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatBrukerText represents the Bruker Esprit text export.
	FormatBrukerText
)

// String returns the display name of the format.
func (f Format) String() string {
	switch f {
	case FormatBrukerText:
		return "Bruker Esprit TXT"
	case FormatUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatBrukerText:
		return []string{".txt"}
	case FormatUnknown:
		return nil
	default:
		return nil
	}
}
