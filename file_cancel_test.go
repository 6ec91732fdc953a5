package spectxt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/simonhull/spectxt"
)

func TestOpenMany(t *testing.T) {
	paths := []string{
		writeSpectrum(t, header+"Channels: 1\nEnergy Counts\n0 1\n"),
		"testdata/sample.txt",
		writeSpectrum(t, header+"Channels: 2\nEnergy Counts\n0 3\n1 4\n"),
	}

	files, err := spectxt.OpenMany(context.Background(), paths...)
	if err != nil {
		t.Fatalf("OpenMany failed: %v", err)
	}
	if len(files) != len(paths) {
		t.Fatalf("got %d files, want %d", len(files), len(paths))
	}

	// Results keep input order.
	want := []int{1, 8, 2}
	for i, f := range files {
		if f.Path != paths[i] {
			t.Errorf("files[%d].Path = %q, want %q", i, f.Path, paths[i])
		}
		if f.Spectrum.NumChannels() != want[i] {
			t.Errorf("files[%d] has %d channels, want %d", i, f.Spectrum.NumChannels(), want[i])
		}
	}
}

func TestOpenMany_Empty(t *testing.T) {
	files, err := spectxt.OpenMany(context.Background())
	if err != nil || files != nil {
		t.Errorf("OpenMany() = %v, %v; want nil, nil", files, err)
	}
}

// TestOpenMany_Cancellation verifies that a cancelled context stops the batch
func TestOpenMany_Cancellation(t *testing.T) {
	paths := make([]string, 5)
	for i := range paths {
		paths[i] = "testdata/sample.txt"
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files, err := spectxt.OpenMany(ctx, paths...)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if files != nil {
		t.Errorf("expected nil files, got %d", len(files))
	}
}

func TestOpenAll_FailureReturnsNoFiles(t *testing.T) {
	paths := []string{
		"testdata/sample.txt",
		writeSpectrum(t, header+"Channels: -4\n"),
	}

	files, err := spectxt.OpenAll(context.Background(), paths)
	if err == nil {
		t.Fatal("expected error")
	}
	var fe *spectxt.FormatError
	if !errors.As(err, &fe) {
		t.Errorf("expected FormatError in chain, got %v", err)
	}
	if files != nil {
		t.Errorf("expected nil files, got %d", len(files))
	}
}

func TestOpenAll_Options(t *testing.T) {
	files, err := spectxt.OpenAll(context.Background(), []string{"testdata/sample.txt"}, spectxt.WithMaxChannels(4))
	if err == nil {
		t.Fatalf("expected channel limit error, got %d files", len(files))
	}
	var fe *spectxt.FormatError
	if !errors.As(err, &fe) || fe.Field != "Channels" {
		t.Errorf("expected Channels FormatError, got %v", err)
	}
}

func TestOpenContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := spectxt.OpenContext(ctx, "testdata/sample.txt"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	file, err := spectxt.OpenContext(context.Background(), "testdata/sample.txt")
	if err != nil {
		t.Fatalf("OpenContext failed: %v", err)
	}
	if file.Spectrum.NumChannels() != 8 {
		t.Errorf("NumChannels() = %d, want 8", file.Spectrum.NumChannels())
	}
}
