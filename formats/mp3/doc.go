// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio via github.com/hajimehoshi/go-mp3.
//
// The decoder returns a buffer.Source streaming float32 samples in
// [-1.0, 1.0]. Output is always stereo at the file's sample rate; use
// buffer.NewDownmixer to fold to mono and buffer.NewResampler to change
// the rate. Encoding is not supported.
package mp3
