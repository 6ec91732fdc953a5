// Package bruker decodes the Bruker Esprit EDS spectrum text export.
//
// A file opens with two signature lines, continues with "Key: value"
// header lines up to an "Energy Counts" line, and ends with one
// "<channel> <count>" row per channel.
package bruker

import (
	"io"
	"log/slog"

	"github.com/simonhull/spectxt/internal/registry"
	"github.com/simonhull/spectxt/internal/text"
	"github.com/simonhull/spectxt/internal/types"
)

func init() {
	registry.Register(types.FormatBrukerText, &parser{})
}

// parser implements registry.FormatParser and registry.Sniffer.
type parser struct{}

func (p *parser) Sniff(r io.Reader) bool {
	return Sniff(r)
}

func (p *parser) Parse(r io.Reader, path string, opts types.ParseOptions) (*types.File, error) {
	return Decode(r, path, opts)
}

// Decode reads one spectrum from r. It does not close r.
//
// Header problems abort with a *types.FormatError. Problems in the channel
// table are returned as warnings alongside a complete spectrum.
func Decode(r io.Reader, path string, opts types.ParseOptions) (*types.File, error) {
	log := opts.Log().With(slog.String("path", path))
	lr := text.NewLineReader(r, path)

	h, err := parseHeader(lr, opts.MaxChannels)
	if err != nil {
		return nil, err
	}

	file := &types.File{
		Path:   path,
		Format: types.FormatBrukerText,
	}
	if !h.sawSentinel {
		log.Warn("header has no data section", slog.String("sentinel", dataSentinel))
		file.Warnings = append(file.Warnings, types.Warning{
			Stage:   "header",
			Message: "no \"" + dataSentinel + "\" line before end of file",
		})
	}

	counts, warnings := readChannels(lr, h.channels, log)
	file.Warnings = append(file.Warnings, warnings...)
	file.Spectrum = types.NewSpectrum(h.props, counts)

	log.Debug("decoded spectrum",
		slog.Int("channels", len(counts)),
		slog.Int("properties", h.props.Len()),
		slog.Int("warnings", len(file.Warnings)))
	return file, nil
}
