// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/waveedit/waveedit/buffer"
)

const (
	pitchFrame = 1024
	pitchHop   = pitchFrame / 4
)

// PitchChange shifts pitch by Ratio while keeping the original duration,
// using windowed overlap-add: each analysis frame is resampled by Ratio,
// weighted by a Hann window and accumulated into the output, which is then
// normalized by the accumulated window weight.
//
// This is a best-effort time-domain approximation. Frame seams at
// non-unity ratios are not phase-locked; a phase vocoder would be needed
// for artifact-free reconstruction. Ratio 1 returns the input unchanged.
type PitchChange struct {
	Ratio float64
}

func (PitchChange) Kind() Kind { return KindPitchChange }

func (p PitchChange) Apply(src *buffer.Buffer) (*buffer.Buffer, error) {
	if err := checkRange(KindPitchChange, "ratio", p.Ratio); err != nil {
		return nil, err
	}

	if p.Ratio == 1 {
		return src, nil
	}

	frames := src.FrameCount()
	out, err := buffer.New(src.SampleRate, src.ChannelCount(), frames)
	if err != nil {
		return nil, err
	}

	window := hannWindow(pitchFrame)
	weight := make([]float32, frames)

	for c, ch := range src.Channels {
		dst := out.Channels[c]
		for i := range weight {
			weight[i] = 0
		}

		for start := 0; start < frames; start += pitchHop {
			for j := 0; j < pitchFrame && start+j < frames; j++ {
				// Read the source at a Ratio-scaled offset within the frame.
				pos := float64(start) + float64(j)*p.Ratio
				idx := int(pos)
				if idx >= frames {
					break
				}

				var s float32
				if idx >= frames-1 {
					s = ch[frames-1]
				} else {
					frac := float32(pos - float64(idx))
					s = ch[idx]*(1-frac) + ch[idx+1]*frac
				}

				w := window[j]
				dst[start+j] += s * w
				weight[start+j] += w
			}
		}

		for i := range dst {
			if weight[i] > 1e-6 {
				dst[i] /= weight[i]
			}
		}
	}

	return out, nil
}

func hannWindow(n int) []float32 {
	w := make([]float32, n)
	for i := range w {
		w[i] = float32(0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1))))
	}
	return w
}
