// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/waveedit/waveedit/buffer"
)

// LowPass is a single-pole IIR low-pass filter. alpha is derived from
// RC = 1/(2π·cutoff) and the sample period; the declared cutoff bounds
// keep alpha inside (0, 1) so the recursion stays stable.
type LowPass struct {
	Cutoff float64 // Hz
}

func (LowPass) Kind() Kind { return KindLowPass }

func (f LowPass) Apply(src *buffer.Buffer) (*buffer.Buffer, error) {
	if err := checkRange(KindLowPass, "cutoff", f.Cutoff); err != nil {
		return nil, err
	}

	rc := 1 / (2 * math.Pi * f.Cutoff)
	dt := 1 / float64(src.SampleRate)
	alpha := float32(dt / (rc + dt))

	out := src.Copy()
	for _, ch := range out.Channels {
		var prev float32
		for i, s := range ch {
			prev += alpha * (s - prev)
			ch[i] = prev
		}
	}

	return out, nil
}

// HighPass is the complementary single-pole IIR high-pass filter.
type HighPass struct {
	Cutoff float64 // Hz
}

func (HighPass) Kind() Kind { return KindHighPass }

func (f HighPass) Apply(src *buffer.Buffer) (*buffer.Buffer, error) {
	if err := checkRange(KindHighPass, "cutoff", f.Cutoff); err != nil {
		return nil, err
	}

	rc := 1 / (2 * math.Pi * f.Cutoff)
	dt := 1 / float64(src.SampleRate)
	alpha := float32(rc / (rc + dt))

	out := src.Copy()
	for _, ch := range out.Channels {
		var prevIn, prevOut float32
		for i, s := range ch {
			prevOut = alpha * (prevOut + s - prevIn)
			prevIn = s
			ch[i] = prevOut
		}
	}

	return out, nil
}
