package cmd

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/simonhull/spectxt"
)

// report is the printable view of one decoded file.
type report struct {
	Path        string            `yaml:"path"`
	Format      string            `yaml:"format"`
	Properties  map[string]string `yaml:"properties"`
	Channels    int               `yaml:"channels"`
	TotalCounts float64           `yaml:"total_counts"`
	PeakChannel int               `yaml:"peak_channel"`
	PeakCount   float64           `yaml:"peak_count"`
	PeakEnergy  *float64          `yaml:"peak_energy_ev,omitempty"`
	Warnings    []string          `yaml:"warnings,omitempty"`
	Counts      []float64         `yaml:"counts,omitempty,flow"`

	order []string
}

func newReport(f *spectxt.File, withCounts bool) report {
	s := f.Spectrum
	r := report{
		Path:        f.Path,
		Format:      f.Format.String(),
		Properties:  make(map[string]string),
		Channels:    s.NumChannels(),
		TotalCounts: s.TotalCounts(),
	}
	for p, v := range s.Properties().All() {
		r.Properties[p.String()] = v.String()
		r.order = append(r.order, p.String())
	}
	r.PeakChannel, r.PeakCount = s.Peak()
	if e, ok := s.Energy(r.PeakChannel); ok && r.PeakChannel >= 0 {
		r.PeakEnergy = &e
	}
	for _, w := range f.Warnings {
		r.Warnings = append(r.Warnings, w.String())
	}
	if withCounts {
		r.Counts = s.Counts()
	}
	return r
}

type writeFunc func(w io.Writer, reports []report) error

func writerFor(format string) (writeFunc, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return writeText, nil
	case "yaml", "yml":
		return writeYAML, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

func writeYAML(w io.Writer, reports []report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(reports)
}

func writeText(w io.Writer, reports []report) error {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "File:        %s\n", r.Path)
		fmt.Fprintf(w, "Format:      %s\n", r.Format)
		for _, name := range r.order {
			fmt.Fprintf(w, "%-20s %s\n", name+":", r.Properties[name])
		}
		fmt.Fprintf(w, "Channels:    %d\n", r.Channels)
		fmt.Fprintf(w, "Total:       %g\n", r.TotalCounts)
		if r.PeakChannel >= 0 {
			fmt.Fprintf(w, "Peak:        channel %d (%g counts)", r.PeakChannel, r.PeakCount)
			if r.PeakEnergy != nil {
				fmt.Fprintf(w, " at %.1f eV", *r.PeakEnergy)
			}
			fmt.Fprintln(w)
		}
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "Warning:     %s\n", warn)
		}
		if len(r.Counts) > 0 {
			fmt.Fprintln(w, "Counts:")
			for ch, c := range r.Counts {
				fmt.Fprintf(w, "  %5d %g\n", ch, c)
			}
		}
	}
	return nil
}
