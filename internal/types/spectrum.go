package types

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Spectrum is a decoded EDS spectrum: header metadata plus one count per
// channel.
//
// A Spectrum is immutable once constructed. Accessors return copies.
type Spectrum struct {
	props  Properties
	counts []float64
}

// NewSpectrum builds a Spectrum that takes ownership of props and counts.
// Callers must not modify either afterwards.
func NewSpectrum(props Properties, counts []float64) *Spectrum {
	if counts == nil {
		counts = []float64{}
	}
	return &Spectrum{props: props, counts: counts}
}

// Properties returns a copy of the header metadata.
func (s *Spectrum) Properties() Properties {
	return s.props.Clone()
}

// Property returns a single metadata value.
func (s *Spectrum) Property(p Property) (Value, bool) {
	return s.props.Get(p)
}

// NumChannels returns the declared channel count.
func (s *Spectrum) NumChannels() int {
	return len(s.counts)
}

// Counts returns a copy of the channel array.
func (s *Spectrum) Counts() []float64 {
	return slices.Clone(s.counts)
}

// Count returns the count in channel ch, or 0 when ch is out of range.
func (s *Spectrum) Count(ch int) float64 {
	if ch < 0 || ch >= len(s.counts) {
		return 0
	}
	return s.counts[ch]
}

// TotalCounts returns the sum over all channels.
func (s *Spectrum) TotalCounts() float64 {
	if len(s.counts) == 0 {
		return 0
	}
	return floats.Sum(s.counts)
}

// Peak returns the channel holding the largest count and that count.
// ch is -1 for a spectrum with no channels.
func (s *Spectrum) Peak() (ch int, count float64) {
	if len(s.counts) == 0 {
		return -1, 0
	}
	ch = floats.MaxIdx(s.counts)
	return ch, s.counts[ch]
}

// Energy returns the energy in eV at the lower edge of channel ch.
// ok is false when the file carried no energy calibration.
func (s *Spectrum) Energy(ch int) (float64, bool) {
	scale, offset, ok := s.calibration()
	if !ok {
		return 0, false
	}
	return offset + float64(ch)*scale, true
}

// Channel returns the channel containing energy (eV).
// ok is false when the file carried no usable energy calibration.
func (s *Spectrum) Channel(energy float64) (int, bool) {
	scale, offset, ok := s.calibration()
	if !ok || scale == 0 {
		return 0, false
	}
	return int(math.Floor((energy - offset) / scale)), true
}

func (s *Spectrum) calibration() (scale, offset float64, ok bool) {
	scale, ok = s.props.Number(EnergyScale)
	if !ok {
		return 0, 0, false
	}
	offset, _ = s.props.Number(EnergyOffset)
	return scale, offset, true
}
