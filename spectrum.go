package spectxt

import "github.com/simonhull/spectxt/internal/types"

// Spectrum is the decoded metadata and channel array. It is immutable.
type Spectrum = types.Spectrum

// Property identifies a recognized metadata key.
type Property = types.Property

// Properties maps recognized keys to values.
type Properties = types.Properties

// Value is a numeric or text property value.
type Value = types.Value

// Re-export all property keys.
const (
	RealTime            = types.RealTime
	LiveTime            = types.LiveTime
	BeamEnergy          = types.BeamEnergy
	TakeOffAngle        = types.TakeOffAngle
	DetectorTilt        = types.DetectorTilt
	DetectorDescription = types.DetectorDescription
	DetectorThickness   = types.DetectorThickness
	DeadLayer           = types.DeadLayer
	EnergyScale         = types.EnergyScale
	EnergyOffset        = types.EnergyOffset
	Resolution          = types.Resolution
	ResolutionLine      = types.ResolutionLine
)

// MnKaEnergy is the Mn Kα energy in eV recorded as ResolutionLine.
const MnKaEnergy = types.MnKaEnergy
