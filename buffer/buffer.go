// SPDX-License-Identifier: EPL-2.0

package buffer

import "math"

// Buffer is in-memory multi-channel audio: one float32 slice per channel,
// all the same length, with samples nominally in [-1, 1].
//
// A Buffer is exclusively owned by whoever holds it. Nothing in this
// package mutates a Buffer it did not allocate; every transform returns a
// fresh Buffer so previous holders (undo snapshots in particular) stay
// valid.
type Buffer struct {
	SampleRate int
	Channels   [][]float32
}

// New allocates a zeroed buffer of frames samples per channel.
func New(sampleRate, channels, frames int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels < 1 {
		return nil, ErrInvalidChannelCount
	}
	if frames < 0 {
		return nil, ErrInvalidFrameCount
	}

	b := &Buffer{
		SampleRate: sampleRate,
		Channels:   make([][]float32, channels),
	}
	for c := range b.Channels {
		b.Channels[c] = make([]float32, frames)
	}

	return b, nil
}

// ChannelCount returns the number of channels.
func (b *Buffer) ChannelCount() int { return len(b.Channels) }

// FrameCount returns the number of samples per channel.
func (b *Buffer) FrameCount() int {
	if len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(b.FrameCount()) / float64(b.SampleRate)
}

// Validate checks the buffer invariants: at least one channel, equal
// channel lengths, a positive sample rate and finite sample values.
func (b *Buffer) Validate() error {
	if b.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if len(b.Channels) < 1 {
		return ErrInvalidChannelCount
	}

	frames := len(b.Channels[0])
	for _, ch := range b.Channels {
		if len(ch) != frames {
			return ErrChannelLengthMismatch
		}
		for _, s := range ch {
			if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
				return ErrNonFiniteSample
			}
		}
	}

	return nil
}

// Copy duplicates the buffer element for element. The result shares no
// memory with b; mutating one never changes the other. This is the sole
// primitive the rest of the system relies on for non-destructive editing.
func (b *Buffer) Copy() *Buffer {
	out := &Buffer{
		SampleRate: b.SampleRate,
		Channels:   make([][]float32, len(b.Channels)),
	}
	for c, ch := range b.Channels {
		out.Channels[c] = make([]float32, len(ch))
		copy(out.Channels[c], ch)
	}

	return out
}

// Peak returns the largest absolute sample value across all channels.
func (b *Buffer) Peak() float32 {
	var peak float32
	for _, ch := range b.Channels {
		for _, s := range ch {
			if s < 0 {
				s = -s
			}
			if s > peak {
				peak = s
			}
		}
	}

	return peak
}

// frameAt converts a time in seconds to a frame index, truncated to the
// buffer length.
func (b *Buffer) frameAt(sec float64) int {
	frame := int(sec * float64(b.SampleRate))
	if frames := b.FrameCount(); frame > frames {
		frame = frames
	}
	return frame
}
