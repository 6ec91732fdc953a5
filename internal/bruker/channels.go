package bruker

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/simonhull/spectxt/internal/text"
	"github.com/simonhull/spectxt/internal/types"
)

// rowOutcome classifies one data row.
type rowOutcome int

const (
	rowStored  rowOutcome = iota // count parsed
	rowSkipped                   // fewer than two fields
	rowInvalid                   // count field is not a number
)

// rowResult is the outcome of parsing a single data row.
type rowResult struct {
	err     error
	count   float64
	outcome rowOutcome
}

// parseRow reads the count column of a trimmed, non-blank data row.
// Fields after the second are ignored. Any value strconv.ParseFloat
// accepts is stored, including negatives, NaN and infinities.
func parseRow(line string) rowResult {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return rowResult{outcome: rowSkipped}
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return rowResult{outcome: rowInvalid, err: err}
	}
	return rowResult{outcome: rowStored, count: v}
}

// readChannels fills an n-channel array from the data rows.
//
// It stops after n rows or at the first blank line. Channel i is taken
// from the i-th row regardless of what earlier rows held. Problems are
// reported as warnings; channels that were not written stay zero.
func readChannels(lr *text.LineReader, n int, log *slog.Logger) ([]float64, []types.Warning) {
	counts := make([]float64, n)
	var warnings []types.Warning
	warn := func(line int, msg string) {
		log.Warn("channel data", slog.Int("line", line), slog.String("problem", msg))
		warnings = append(warnings, types.Warning{Stage: "channels", Line: line, Message: msg})
	}

	row := 0
	for ; row < n; row++ {
		line, err := lr.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				warn(lr.Line()+1, err.Error())
			}
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}

		res := parseRow(line)
		switch res.outcome {
		case rowStored:
			counts[row] = res.count
		case rowSkipped:
			log.Debug("row without count", slog.Int("line", lr.Line()), slog.Int("channel", row))
		case rowInvalid:
			warn(lr.Line(), fmt.Sprintf("channel %d: %v", row, res.err))
		}
	}

	if row < n {
		warn(0, fmt.Sprintf("data ended after %d of %d channels", row, n))
	}
	return counts, warnings
}
