package spectxt

import (
	"log/slog"

	"github.com/simonhull/spectxt/internal/types"
)

// Option configures behavior when decoding spectrum files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := spectxt.Open("sample.txt",
//	    spectxt.WithLogger(slog.Default()),
//	    spectxt.WithMaxChannels(16384),
//	)
type Option func(*openOptions)

// openOptions holds configuration for decoding files.
type openOptions struct {
	logger         *slog.Logger // Receives soft-failure diagnostics
	ignoreWarnings bool         // Suppress all warnings
	maxChannels    int          // Maximum declared channel count
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		logger:         nil, // Discard
		ignoreWarnings: false,
		maxChannels:    types.DefaultMaxChannels,
	}
}

func applyOptions(opts []Option) *openOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func (o *openOptions) parseOptions() types.ParseOptions {
	return types.ParseOptions{
		Logger:      o.logger,
		MaxChannels: o.maxChannels,
	}
}

// WithLogger routes decode diagnostics to logger.
//
// Malformed data rows and a short data section are logged at Warn level,
// decode completion at Debug. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		o.logger = logger
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default, warnings about non-fatal issues (unparsable counts, a data
// section shorter than the channel count) are collected in File.Warnings.
// This option discards them. They are still logged.
//
// Example:
//
//	file, err := spectxt.Open("sample.txt", spectxt.WithIgnoreWarnings())
//	// file.Warnings will always be empty
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithMaxChannels rejects files declaring more than n channels.
//
// The channel array is allocated from the header's "Channels:" value
// before any data is read. Exceeding the limit is a *FormatError.
//
// Default is DefaultMaxChannels. n <= 0 restores the default; values above
// HardMaxChannels are clamped to it.
func WithMaxChannels(n int) Option {
	return func(o *openOptions) {
		o.maxChannels = n
	}
}

// Channel count limits, see WithMaxChannels.
const (
	DefaultMaxChannels = types.DefaultMaxChannels
	HardMaxChannels    = types.HardMaxChannels
)
