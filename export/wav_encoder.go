// SPDX-License-Identifier: EPL-2.0

package export

import (
	"bytes"
	"fmt"

	"github.com/waveedit/waveedit/buffer"
	"github.com/waveedit/waveedit/formats/wav"
	"github.com/waveedit/waveedit/utils"
)

// WAVEncoder renders a buffer as canonical 16-bit PCM WAV.
type WAVEncoder struct{}

func (WAVEncoder) Encode(b *buffer.Buffer) ([]byte, error) {
	samples := interleave(b)

	out := new(bytes.Buffer)
	out.Grow(44 + len(samples)*2)

	if err := wav.WritePCM16(out, b.SampleRate, b.ChannelCount(), samples); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return out.Bytes(), nil
}

// placeholderEncoder stands in for formats without a real encoder yet.
// It emits the WAV container so exported data is always playable; the
// Result still carries the requested label and media type.
type placeholderEncoder struct{}

func (placeholderEncoder) Encode(b *buffer.Buffer) ([]byte, error) {
	return WAVEncoder{}.Encode(b)
}

// interleave flattens planar channels into frame-interleaved int16
// with round-half-away-from-zero quantization.
func interleave(b *buffer.Buffer) []int16 {
	channels := b.ChannelCount()
	frames := b.FrameCount()

	samples := make([]int16, frames*channels)
	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			samples[f*channels+c] = utils.Float32ToInt16Round(b.Channels[c][f])
		}
	}

	return samples
}
