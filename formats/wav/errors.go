// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a valid RIFF/WAVE file.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrOnlyPCMSupported indicates a non-PCM encoding (e.g. float or
	// ADPCM) that the decoder does not handle.
	ErrOnlyPCMSupported = errors.New("only PCM WAV is supported")

	// ErrUnsupportedWavLayout indicates a WAV file with a missing or
	// nonsensical format chunk.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrInvalidChannelCount indicates a channel count below 1.
	ErrInvalidChannelCount = errors.New("invalid channel count")

	// ErrPartialFrame indicates sample data whose length is not a
	// multiple of the channel count.
	ErrPartialFrame = errors.New("sample count is not a multiple of channel count")
)
