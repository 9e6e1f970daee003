// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio via
// github.com/jfreymuth/oggvorbis.
//
// The decoder returns a buffer.Source streaming interleaved float32
// samples in [-1.0, 1.0] at the file's native sample rate and channel
// count. Encoding is not supported.
package vorbis
