// SPDX-License-Identifier: EPL-2.0

package effects

import "github.com/waveedit/waveedit/buffer"

// FadeIn applies a linear ramp from 0 to full amplitude over Duration
// seconds. A duration longer than the buffer ramps over the whole buffer.
type FadeIn struct {
	Duration float64
}

func (FadeIn) Kind() Kind { return KindFadeIn }

func (f FadeIn) Apply(src *buffer.Buffer) (*buffer.Buffer, error) {
	if err := checkRange(KindFadeIn, "duration", f.Duration); err != nil {
		return nil, err
	}

	out := src.Copy()
	n := rampLength(out, f.Duration)
	for _, ch := range out.Channels {
		for i := 0; i < n; i++ {
			ch[i] *= float32(i) / float32(n)
		}
	}

	return out, nil
}

// FadeOut applies a linear ramp from full amplitude to 0 over the final
// Duration seconds.
type FadeOut struct {
	Duration float64
}

func (FadeOut) Kind() Kind { return KindFadeOut }

func (f FadeOut) Apply(src *buffer.Buffer) (*buffer.Buffer, error) {
	if err := checkRange(KindFadeOut, "duration", f.Duration); err != nil {
		return nil, err
	}

	out := src.Copy()
	n := rampLength(out, f.Duration)
	frames := out.FrameCount()
	for _, ch := range out.Channels {
		for i := 0; i < n; i++ {
			ch[frames-1-i] *= float32(i) / float32(n)
		}
	}

	return out, nil
}

// rampLength clamps a fade duration to the buffer length, in frames.
func rampLength(b *buffer.Buffer, duration float64) int {
	n := int(duration * float64(b.SampleRate))
	if frames := b.FrameCount(); n > frames {
		n = frames
	}
	return n
}
