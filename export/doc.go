// SPDX-License-Identifier: EPL-2.0

// Package export renders buffers into downloadable containers.
//
//	res, err := export.Export(buf, export.FormatWAV)
//	// res.Data is a complete file, res.MIME its media type
//
// The allow-list is wav, mp3, ogg and flac. WAV is encoded natively as
// 16-bit PCM with a fixed 44-byte header; the other formats default to
// a placeholder that emits the WAV container under the requested label,
// and Register swaps in a real encoder without changing the call
// contract.
//
// Export with a nil buffer returns (nil, nil): nothing to encode is
// not an error. Formats outside the allow-list return
// ErrUnsupportedFormat.
package export
