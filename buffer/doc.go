// SPDX-License-Identifier: EPL-2.0

// Package buffer provides the in-memory sample buffer every other part of
// the editor consumes and produces.
//
// # Buffer
//
// A Buffer holds one float32 slice per channel plus a sample rate. All
// transforms in this module follow a copy discipline: operations that
// change audio content allocate a fresh Buffer and leave the input alone,
// so a Buffer captured elsewhere (an undo snapshot, an export in flight)
// can never change underneath its holder.
//
//	b, _ := buffer.Tone(44100, 2, 440, 1.0, 0.8)
//	cut, err := b.ExtractRange(0.25, 0.75)
//	rest, err := b.SpliceOut(0.25, 0.75)
//
// Ranges are validated before any allocation; an inverted or negative
// range fails with ErrInvalidRange.
//
// # Streaming
//
// The Source interface is the import-side streaming unit:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Format decoders (see the formats subpackages) return Sources; the
// Resampler and Downmixer wrap Sources; FromSource collects a Source into
// a Buffer, and Buffer.Source turns a Buffer back into a stream.
//
//	src, _ := wav.Decoder{}.Decode(file)
//	resampled := buffer.NewResampler(src, 44100)
//	b, err := buffer.FromSource(resampled, 4096)
//
// # Sample format
//
// Samples are float32 in [-1.0, 1.0]: 0.0 is silence, ±1.0 full scale.
// Effects that can exceed the range clamp it where their contract says so;
// the buffer itself never clamps.
package buffer
