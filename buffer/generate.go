// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"math"
	"math/rand"
)

// Silence generates a zeroed buffer of the given duration.
func Silence(sampleRate, channels int, seconds float64) (*Buffer, error) {
	return New(sampleRate, channels, int(seconds*float64(sampleRate)))
}

// Tone generates a sine wave at frequency Hz with the given peak
// amplitude, identical on every channel.
func Tone(sampleRate, channels int, frequency, seconds float64, amplitude float32) (*Buffer, error) {
	b, err := New(sampleRate, channels, int(seconds*float64(sampleRate)))
	if err != nil {
		return nil, err
	}

	step := 2 * math.Pi * frequency / float64(sampleRate)
	for i := 0; i < b.FrameCount(); i++ {
		s := amplitude * float32(math.Sin(step*float64(i)))
		for c := range b.Channels {
			b.Channels[c][i] = s
		}
	}

	return b, nil
}

// Noise generates uniform white noise with the given peak amplitude.
// Channels are independent.
func Noise(sampleRate, channels int, seconds float64, amplitude float32) (*Buffer, error) {
	b, err := New(sampleRate, channels, int(seconds*float64(sampleRate)))
	if err != nil {
		return nil, err
	}

	for c := range b.Channels {
		for i := range b.Channels[c] {
			b.Channels[c][i] = amplitude * (rand.Float32()*2 - 1)
		}
	}

	return b, nil
}
