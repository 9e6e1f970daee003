// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic in-memory sources for
// tests. The mocks satisfy buffer.Source without importing it, so any
// package in the tree can use them.
package audiotest

import (
	"io"
	"math"
)

// MockSource streams generated frames. The waveform callback receives
// the frame index and channel, so tests can produce any deterministic
// signal.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	read       int
	waveform   func(frame, channel int) float32
}

func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSilentSource generates all-zero frames.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return 0
	})
}

// NewSineSource generates a full-scale sine at frequency Hz, identical
// on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource generates the same value in every sample.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the stream so it can be read again.
func (m *MockSource) Reset() { m.read = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.read >= m.frames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if remain := m.frames - m.read; frames > remain {
		frames = remain
	}

	for f := 0; f < frames; f++ {
		for c := 0; c < m.channels; c++ {
			dst[f*m.channels+c] = m.waveform(m.read+f, c)
		}
	}
	m.read += frames

	n := frames * m.channels
	if m.read >= m.frames {
		return n, io.EOF
	}
	return n, nil
}
