package spectxt

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/spectxt/internal/bruker"
	"github.com/simonhull/spectxt/internal/registry"
	"github.com/simonhull/spectxt/internal/types"
)

// File represents a decoded spectrum file.
//
// A File holds no open resources; the underlying file is closed before
// Open returns.
type File struct {
	// Decoded metadata and channel array
	Spectrum *Spectrum

	// Path to the spectrum file (empty for Decode)
	Path string

	// Warnings encountered while reading the channel table (non-fatal issues)
	Warnings []Warning

	// Detected format
	Format Format
}

// Open opens a spectrum file, decodes it and closes it.
//
// The file is closed on every path, including decode failures.
//
// A malformed header returns a *FormatError. Problems in the channel table
// do not fail Open; they are reported in File.Warnings and the affected
// channels are zero.
//
// Example:
//
//	file, err := spectxt.Open("sample.txt")
//	if err != nil {
//		return err
//	}
//	fmt.Println(file.Spectrum.NumChannels())
func Open(path string, opts ...Option) (*File, error) {
	options := applyOptions(opts)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return openReader(f, path, options)
}

// openReader detects and decodes from a seekable reader (internal, for testing)
func openReader(r io.ReadSeeker, path string, options *openOptions) (*File, error) {
	format, err := DetectFormat(r, path)
	if err != nil {
		return nil, err
	}

	parser := registry.Get(format)
	if parser == nil {
		return nil, &UnsupportedFormatError{
			Path:   path,
			Reason: fmt.Sprintf("no decoder available for format %s", format),
		}
	}

	tf, err := parser.Parse(r, path, options.parseOptions())
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", format, err)
	}

	return finish(tf, format, options), nil
}

// Decode reads a Bruker Esprit text spectrum from r.
//
// Decode does not close r. The signature lines are verified whether or
// not the caller sniffed r first.
func Decode(r io.Reader, opts ...Option) (*File, error) {
	options := applyOptions(opts)

	tf, err := bruker.Decode(r, "", options.parseOptions())
	if err != nil {
		return nil, err
	}
	return finish(tf, FormatBrukerText, options), nil
}

func finish(tf *types.File, format Format, options *openOptions) *File {
	file := &File{
		Spectrum: tf.Spectrum,
		Path:     tf.Path,
		Warnings: tf.Warnings,
		Format:   format,
	}
	if options.ignoreWarnings {
		file.Warnings = nil
	}
	return file
}

// OpenContext opens a file with context support for cancellation.
//
// The context is checked before the file is opened; a decode in progress
// runs to completion.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple spectrum files concurrently with default options.
//
// See OpenAll.
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	return OpenAll(ctx, paths)
}

// OpenAll opens multiple spectrum files concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths.
//
// If any file fails, the first error is returned and no files are.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	files, err := spectxt.OpenAll(ctx, paths, spectxt.WithIgnoreWarnings())
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		fmt.Printf("%s: %d channels\n", f.Path, f.Spectrum.NumChannels())
//	}
func OpenAll(ctx context.Context, paths []string, opts ...Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
