// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding and encoding.
//
// Decoding is backed by github.com/go-audio/wav and supports PCM at
// 8, 16, 24 and 32 bits, any channel count and sample rate. The
// decoder returns a buffer.Source streaming normalized float32
// samples in [-1.0, 1.0]:
//
//	decoder := wav.Decoder{}
//	source, err := decoder.Decode(file)
//
// Encoding writes canonical 16-bit PCM with a fixed 44-byte header:
//
//	err := wav.WritePCM16(file, 44100, 2, samples)
//
// The header layout is byte-exact and stable, so callers can rely on
// it when embedding WAV data inside other containers.
//
// Error handling:
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: compressed or float encodings
//   - ErrUnsupportedWavLayout: missing or invalid format chunk
package wav
