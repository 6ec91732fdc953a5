package bruker

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/simonhull/spectxt/internal/text"
	"github.com/simonhull/spectxt/internal/types"
)

var discard = slog.New(slog.DiscardHandler)

func TestParseRow(t *testing.T) {
	tests := []struct {
		line  string
		want  rowOutcome
		count float64
	}{
		{"0 12", rowStored, 12},
		{"-0.4750 1204", rowStored, 1204},
		{"1\t\t7.5", rowStored, 7.5},
		{"3 1e3", rowStored, 1000},
		{"4 5 99 extra", rowStored, 5},
		{"5 -3", rowStored, -3},
		{"6 +Inf", rowStored, math.Inf(1)},
		{"7 -inf", rowStored, math.Inf(-1)},
		{"12", rowSkipped, 0},
		{"12 NaNtext", rowInvalid, 0},
		{"12 1,5", rowInvalid, 0},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			res := parseRow(tt.line)
			if res.outcome != tt.want {
				t.Errorf("outcome = %v, want %v", res.outcome, tt.want)
			}
			if res.count != tt.count {
				t.Errorf("count = %v, want %v", res.count, tt.count)
			}
			if (res.err != nil) != (tt.want == rowInvalid) {
				t.Errorf("err = %v for outcome %v", res.err, tt.want)
			}
		})
	}
}

func TestParseRow_NaNStored(t *testing.T) {
	res := parseRow("12 NaN")
	if res.outcome != rowStored || res.err != nil {
		t.Fatalf("parseRow() = %+v, want stored", res)
	}
	if !math.IsNaN(res.count) {
		t.Errorf("count = %v, want NaN", res.count)
	}
}

func TestReadChannels_BlankLineEndsData(t *testing.T) {
	counts, warnings := readChannels(lineReader("0 5\n1 6\n\n2 99\n"), 3, discard)

	if want := []float64{5, 6, 0}; !slices.Equal(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if warnings[0].Stage != "channels" || !strings.Contains(warnings[0].Message, "2 of 3") {
		t.Errorf("warning = %v", warnings[0])
	}
}

func TestReadChannels_IndexOnlyRowAdvances(t *testing.T) {
	counts, warnings := readChannels(lineReader("0 5\n1\n2 7\n"), 3, discard)

	if want := []float64{5, 0, 7}; !slices.Equal(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestReadChannels_InvalidCountIsSoft(t *testing.T) {
	counts, warnings := readChannels(lineReader("0 1\n12 NaNtext\n2 3\n"), 3, discard)

	if want := []float64{1, 0, 3}; !slices.Equal(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if warnings[0].Line != 2 || !strings.Contains(warnings[0].Message, "channel 1") {
		t.Errorf("warning = %v", warnings[0])
	}
}

func TestReadChannels_NonFiniteCountsStored(t *testing.T) {
	counts, warnings := readChannels(lineReader("0 -4\n1 NaN\n2 Inf\n"), 3, discard)

	if counts[0] != -4 || !math.IsNaN(counts[1]) || !math.IsInf(counts[2], 1) {
		t.Errorf("counts = %v, want [-4 NaN +Inf]", counts)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestReadChannels_StopsAtChannelCount(t *testing.T) {
	lr := lineReader("0 1\n1 2\n2 3\ntrailer\n")
	counts, warnings := readChannels(lr, 2, discard)

	if want := []float64{1, 2}; !slices.Equal(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	next, err := lr.ReadLine()
	if err != nil {
		t.Fatal(err)
	}
	if next != "2 3" {
		t.Errorf("next line = %q, want %q", next, "2 3")
	}
}

func TestReadChannels_EndOfStream(t *testing.T) {
	counts, warnings := readChannels(lineReader("0 4"), 4, discard)

	if want := []float64{4, 0, 0, 0}; !slices.Equal(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0].Message, "1 of 4") {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestReadChannels_ReadErrorIsSoft(t *testing.T) {
	r := io.MultiReader(strings.NewReader("0 4\n"), iotest.ErrReader(errors.New("cable pulled")))
	counts, warnings := readChannels(text.NewLineReader(r, "test.txt"), 2, discard)

	if want := []float64{4, 0}; !slices.Equal(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2", len(warnings))
	}
	if !strings.Contains(warnings[0].Message, "cable pulled") {
		t.Errorf("warning = %v", warnings[0])
	}
}

func TestReadChannels_Empty(t *testing.T) {
	counts, warnings := readChannels(lineReader(""), 0, discard)

	if counts == nil || len(counts) != 0 {
		t.Errorf("counts = %#v, want empty non-nil", counts)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestReadChannels_LogsWarnings(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	_, warnings := readChannels(lineReader("0 bogus\n"), 1, log)
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if want := (types.Warning{Stage: "channels", Line: 1, Message: warnings[0].Message}); warnings[0] != want {
		t.Errorf("warning = %+v, want %+v", warnings[0], want)
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "line=1") {
		t.Errorf("log output = %q", out)
	}
}
