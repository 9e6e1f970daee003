// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"github.com/viterin/vek/vek32"

	"github.com/waveedit/waveedit/buffer"
)

// Amplify multiplies every sample by Gain and clamps the result to
// [-1, 1]. Gain 0 produces silence.
type Amplify struct {
	Gain float64
}

func (Amplify) Kind() Kind { return KindAmplify }

func (a Amplify) Apply(src *buffer.Buffer) (*buffer.Buffer, error) {
	if err := checkRange(KindAmplify, "gain", a.Gain); err != nil {
		return nil, err
	}

	out := src.Copy()
	for _, ch := range out.Channels {
		if len(ch) == 0 {
			continue
		}
		vek32.MulNumber_Inplace(ch, float32(a.Gain))
		clampUnit(ch)
	}

	return out, nil
}

// Normalize scales the whole buffer so its peak absolute sample equals
// TargetPeak. Silent input is returned as an unchanged copy; there is no
// divide by zero.
type Normalize struct {
	TargetPeak float64
}

func (Normalize) Kind() Kind { return KindNormalize }

func (n Normalize) Apply(src *buffer.Buffer) (*buffer.Buffer, error) {
	if err := checkRange(KindNormalize, "targetPeak", n.TargetPeak); err != nil {
		return nil, err
	}

	peak := peakOf(src)
	if peak == 0 {
		return src.Copy(), nil
	}

	gain := float32(n.TargetPeak) / peak
	out := src.Copy()
	for _, ch := range out.Channels {
		if len(ch) == 0 {
			continue
		}
		vek32.MulNumber_Inplace(ch, gain)
		clampUnit(ch)
	}

	return out, nil
}

// peakOf finds the largest absolute sample across all channels.
func peakOf(b *buffer.Buffer) float32 {
	var peak float32
	tmp := make([]float32, b.FrameCount())
	for _, ch := range b.Channels {
		if len(ch) == 0 {
			continue
		}
		vek32.Abs_Into(tmp[:len(ch)], ch)
		if p := vek32.Max(tmp[:len(ch)]); p > peak {
			peak = p
		}
	}
	return peak
}

func clampUnit(samples []float32) {
	for i, s := range samples {
		if s > 1 {
			samples[i] = 1
		} else if s < -1 {
			samples[i] = -1
		}
	}
}
