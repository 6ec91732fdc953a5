// Package spectxt decodes EDS spectra exported as text by Bruker Esprit.
//
// An Esprit export opens with a vendor and a product line, carries a
// "Key: value" header (acquisition times, beam energy, detector geometry,
// energy calibration, resolution) and ends with a two-column table of
// channel counts.
//
// # Quick Start
//
//	file, err := spectxt.Open("sample.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	live, _ := file.Spectrum.Properties().Number(spectxt.LiveTime)
//	fmt.Printf("%d channels, live time %.1f s\n", file.Spectrum.NumChannels(), live)
//
// # Metadata
//
// Recognized header keys map to a fixed set of properties. Keys absent from
// the file are absent from the result; there are no defaults. Times are
// converted from milliseconds to seconds. A "Mn FWHM:" line records both
// Resolution and ResolutionLine (the Mn Kα energy, MnKaEnergy).
//
// # Error Handling
//
// Decoding distinguishes two severities:
//
//   - Header problems (wrong signature, unparsable number, bad channel count)
//     fail with a *FormatError and no spectrum.
//   - Channel table problems (unparsable count, short table) are reported in
//     File.Warnings; the affected channels stay zero and decoding succeeds.
//
// Inspect errors with errors.As:
//
//	var fe *spectxt.FormatError
//	if errors.As(err, &fe) {
//		log.Printf("line %d: %s", fe.Line, fe.Reason)
//	}
//
// # Streams
//
// Open owns the file it opens and always closes it. Decode and Sniff read
// from a caller-owned io.Reader and never close it. Sniff reads unbuffered
// and consumes only the first line and the first six bytes of the second;
// use DetectFormat on an io.ReadSeeker to sniff without losing the position.
//
// # Concurrency
//
// A single decode is one sequential pass. OpenMany and OpenAll decode many
// files in parallel.
package spectxt
