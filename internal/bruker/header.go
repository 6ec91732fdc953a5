package bruker

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/simonhull/spectxt/internal/text"
	"github.com/simonhull/spectxt/internal/types"
)

// dataSentinel marks the boundary between header and channel table.
const dataSentinel = "Energy Counts"

// header accumulates the header section.
type header struct {
	props       types.Properties
	channels    int
	maxChannels int
	sawSentinel bool
}

// headerField pairs a key prefix with the handler for its value.
// A nil apply marks a key that is recognised and deliberately ignored.
type headerField struct {
	apply  func(h *header, value string) error
	prefix string
}

// headerFields is matched top to bottom; the first prefix that matches wins.
var headerFields = []headerField{
	{prefix: "Real time:", apply: millis(types.RealTime)},
	{prefix: "Life time:", apply: millis(types.LiveTime)},
	{prefix: "Primary energy:", apply: number(types.BeamEnergy)},
	{prefix: "Take off angle:", apply: number(types.TakeOffAngle)},
	{prefix: "Tilt angle:", apply: number(types.DetectorTilt)},
	{prefix: "Detector type:", apply: textValue(types.DetectorDescription)},
	{prefix: "Detector thickness:", apply: number(types.DetectorThickness)},
	{prefix: "Si dead layer:", apply: number(types.DeadLayer)},
	{prefix: "Calibration, lin.:", apply: number(types.EnergyScale)},
	{prefix: "Calibration, abs.:", apply: number(types.EnergyOffset)},
	{prefix: "Mn FWHM:", apply: resolution},
	{prefix: "Channels:", apply: channelCount},
	{prefix: "Date:"},
	{prefix: "Pulse density:"},
	{prefix: "Azimut angle:"},
	{prefix: "Window type:"},
	{prefix: "Fano factor:"},
}

// matchField returns the first field whose prefix starts line.
func matchField(line string) (headerField, bool) {
	for _, f := range headerFields {
		if strings.HasPrefix(line, f.prefix) {
			return f, true
		}
	}
	return headerField{}, false
}

func number(p types.Property) func(*header, string) error {
	return func(h *header, value string) error {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		h.props.Set(p, types.Number(v))
		return nil
	}
}

// millis stores a millisecond value in seconds.
func millis(p types.Property) func(*header, string) error {
	return func(h *header, value string) error {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		h.props.Set(p, types.Number(v/1000))
		return nil
	}
}

func textValue(p types.Property) func(*header, string) error {
	return func(h *header, value string) error {
		h.props.Set(p, types.Text(value))
		return nil
	}
}

// resolution stores the FWHM together with the line it was measured on.
func resolution(h *header, value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	h.props.Set(types.Resolution, types.Number(v))
	h.props.Set(types.ResolutionLine, types.Number(types.MnKaEnergy))
	return nil
}

var errNegativeChannels = errors.New("channel count must not be negative")

func channelCount(h *header, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(value, "-") {
			return fmt.Errorf("channel count exceeds limit %d", h.maxChannels)
		}
		return err
	}
	if n < 0 {
		return errNegativeChannels
	}
	if n > h.maxChannels {
		return fmt.Errorf("channel count %d exceeds limit %d", n, h.maxChannels)
	}
	h.channels = n
	return nil
}

// parseHeader verifies the signature and reads key lines up to the data
// sentinel or end of stream. The declared channel count is bounded by
// types.ChannelLimit(maxChannels).
func parseHeader(lr *text.LineReader, maxChannels int) (*header, error) {
	if err := readSignature(lr); err != nil {
		return nil, err
	}

	h := &header{maxChannels: types.ChannelLimit(maxChannels)}
	for {
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			return h, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}

		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, dataSentinel) {
			h.sawSentinel = true
			return h, nil
		}

		f, ok := matchField(line)
		if !ok || f.apply == nil {
			continue
		}
		value := strings.TrimSpace(line[len(f.prefix):])
		if err := f.apply(h, value); err != nil {
			return nil, &types.FormatError{
				Path:   lr.Path(),
				Line:   lr.Line(),
				Field:  strings.TrimSuffix(f.prefix, ":"),
				Reason: fmt.Sprintf("invalid value %q", value),
				Err:    err,
			}
		}
	}
}

func signatureError(path string, line int, reason string, err error) error {
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return &types.FormatError{
		Path:   path,
		Line:   line,
		Field:  "signature",
		Reason: reason,
		Err:    err,
	}
}
