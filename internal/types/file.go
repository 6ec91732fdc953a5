// Package types provides the core data structures shared by the spectrum
// decoders.
//
// This package defines the File, Spectrum, Properties and error types that
// represent a decoded spectrum independent of its on-disk format.
package types

import (
	"log/slog"
)

// File represents a decoded spectrum file.
type File struct {
	Spectrum *Spectrum
	Path     string
	Warnings []Warning
	Format   Format
}

// ParseOptions carries caller configuration into a format decoder.
type ParseOptions struct {
	// Logger receives soft-failure diagnostics. Nil discards them.
	Logger *slog.Logger

	// MaxChannels rejects files declaring more channels.
	// Zero or negative selects DefaultMaxChannels.
	MaxChannels int
}

// Channel count limits. The channel array is allocated from the header
// before any data row is read.
const (
	DefaultMaxChannels = 1 << 20
	HardMaxChannels    = 1 << 26
)

// ChannelLimit returns the effective channel count limit for a requested
// maximum, never above HardMaxChannels.
func ChannelLimit(max int) int {
	switch {
	case max <= 0:
		return DefaultMaxChannels
	case max > HardMaxChannels:
		return HardMaxChannels
	default:
		return max
	}
}

// Log returns the configured logger, or a discarding one.
func (o ParseOptions) Log() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
