// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"io"

	"github.com/ebitengine/oto/v3"
)

// Voice is one playable output stream. *oto.Player satisfies it; tests
// substitute a manually clocked fake.
type Voice interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(float64)
	Close() error
}

// Sink opens Voices over a PCM byte stream (interleaved signed 16-bit
// little-endian at the given rate and channel count).
type Sink interface {
	Open(sampleRate, channels int, src io.Reader) (Voice, error)
}

// OtoSink plays through the system audio device via oto. One sink owns
// one oto context; contexts are process-wide in oto, so create a single
// OtoSink and reuse it.
type OtoSink struct {
	ctx        *oto.Context
	sampleRate int
	channels   int
}

func NewOtoSink(sampleRate, channels int) (*OtoSink, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready

	return &OtoSink{ctx: ctx, sampleRate: sampleRate, channels: channels}, nil
}

func (s *OtoSink) Open(sampleRate, channels int, src io.Reader) (Voice, error) {
	// The oto context is fixed-format; resample buffers at other rates
	// (buffer.NewResampler) before scheduling them.
	if sampleRate != s.sampleRate || channels != s.channels {
		return nil, fmt.Errorf("%w: device %d Hz/%d ch, buffer %d Hz/%d ch",
			ErrDeviceFormat, s.sampleRate, s.channels, sampleRate, channels)
	}

	return s.ctx.NewPlayer(src), nil
}
