package types

import (
	"iter"
	"strconv"
)

// Property identifies one recognized spectrum metadata key.
type Property int

// Recognized properties, in display order.
const (
	RealTime            Property = iota // seconds
	LiveTime                            // seconds
	BeamEnergy                          // keV
	TakeOffAngle                        // degrees
	DetectorTilt                        // degrees
	DetectorDescription                 // text
	DetectorThickness                   // mm
	DeadLayer                           // µm
	EnergyScale                         // eV per channel
	EnergyOffset                        // eV
	Resolution                          // eV FWHM at ResolutionLine
	ResolutionLine                      // eV

	propertyCount
)

// MnKaEnergy is the Mn Kα line energy in eV, the reference for Resolution.
const MnKaEnergy = 5898.7

var propertyNames = [propertyCount]string{
	RealTime:            "RealTime",
	LiveTime:            "LiveTime",
	BeamEnergy:          "BeamEnergy",
	TakeOffAngle:        "TakeOffAngle",
	DetectorTilt:        "DetectorTilt",
	DetectorDescription: "DetectorDescription",
	DetectorThickness:   "DetectorThickness",
	DeadLayer:           "DeadLayer",
	EnergyScale:         "EnergyScale",
	EnergyOffset:        "EnergyOffset",
	Resolution:          "Resolution",
	ResolutionLine:      "ResolutionLine",
}

func (p Property) String() string {
	if p < 0 || p >= propertyCount {
		return "Property(" + strconv.Itoa(int(p)) + ")"
	}
	return propertyNames[p]
}

// Value is a numeric or text property value.
type Value struct {
	text   string
	num    float64
	isText bool
}

// Number returns a numeric value.
func Number(v float64) Value { return Value{num: v} }

// Text returns a text value.
func Text(s string) Value { return Value{text: s, isText: true} }

// IsText reports whether v holds text.
func (v Value) IsText() bool { return v.isText }

// Float returns the numeric value. It is 0 for text values.
func (v Value) Float() float64 { return v.num }

// String formats v for display.
func (v Value) String() string {
	if v.isText {
		return v.text
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// Properties maps recognized keys to values. The zero value is empty and
// ready to use.
type Properties struct {
	values map[Property]Value
}

// Set stores v under p, replacing any earlier value.
func (ps *Properties) Set(p Property, v Value) {
	if ps.values == nil {
		ps.values = make(map[Property]Value)
	}
	ps.values[p] = v
}

// Get returns the value stored under p.
func (ps Properties) Get(p Property) (Value, bool) {
	v, ok := ps.values[p]
	return v, ok
}

// Number returns the numeric value stored under p. ok is false when p is
// absent or holds text.
func (ps Properties) Number(p Property) (float64, bool) {
	v, ok := ps.values[p]
	if !ok || v.isText {
		return 0, false
	}
	return v.num, true
}

// Text returns the text value stored under p.
func (ps Properties) Text(p Property) (string, bool) {
	v, ok := ps.values[p]
	if !ok || !v.isText {
		return "", false
	}
	return v.text, true
}

// Len returns the number of stored properties.
func (ps Properties) Len() int {
	return len(ps.values)
}

// All yields the stored properties in declaration order.
func (ps Properties) All() iter.Seq2[Property, Value] {
	return func(yield func(Property, Value) bool) {
		for p := Property(0); p < propertyCount; p++ {
			v, ok := ps.values[p]
			if !ok {
				continue
			}
			if !yield(p, v) {
				return
			}
		}
	}
}

// Clone returns an independent copy.
func (ps Properties) Clone() Properties {
	out := Properties{}
	for p, v := range ps.values {
		out.Set(p, v)
	}
	return out
}
