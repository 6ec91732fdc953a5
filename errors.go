package spectxt

import (
	"github.com/simonhull/spectxt/internal/types"
)

// FormatError is an alias to types.FormatError.
// Re-exporting from internal/types to maintain public API.
type FormatError = types.FormatError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exporting from internal/types to maintain public API.
type UnsupportedFormatError = types.UnsupportedFormatError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning
