// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/waveedit/waveedit/buffer"
)

// Compressor reduces dynamics above Threshold by Ratio. Gain reduction is
// computed from a smoothed envelope, not the instantaneous sample, with
// separate Attack and Release time constants so gain changes don't pump.
type Compressor struct {
	Threshold float64 // linear amplitude, 0..1
	Ratio     float64 // n:1 above threshold
	Attack    float64 // ms
	Release   float64 // ms
}

func (Compressor) Kind() Kind { return KindCompressor }

func (c Compressor) Apply(src *buffer.Buffer) (*buffer.Buffer, error) {
	if err := checkRange(KindCompressor, "threshold", c.Threshold); err != nil {
		return nil, err
	}
	if err := checkRange(KindCompressor, "ratio", c.Ratio); err != nil {
		return nil, err
	}
	if err := checkRange(KindCompressor, "attack", c.Attack); err != nil {
		return nil, err
	}
	if err := checkRange(KindCompressor, "release", c.Release); err != nil {
		return nil, err
	}

	rate := float64(src.SampleRate)
	attackCoef := float32(math.Exp(-1 / (c.Attack / 1000 * rate)))
	releaseCoef := float32(math.Exp(-1 / (c.Release / 1000 * rate)))
	threshold := float32(c.Threshold)
	ratio := float32(c.Ratio)

	out := src.Copy()
	for _, ch := range out.Channels {
		var envelope float32
		for i, s := range ch {
			mag := s
			if mag < 0 {
				mag = -mag
			}

			// Envelope follower: fast attack, slow release.
			if mag > envelope {
				envelope = attackCoef*envelope + (1-attackCoef)*mag
			} else {
				envelope = releaseCoef*envelope + (1-releaseCoef)*mag
			}

			if envelope > threshold && envelope > 0 {
				// Target level keeps threshold plus the over-threshold
				// portion divided by ratio.
				target := threshold + (envelope-threshold)/ratio
				ch[i] = s * (target / envelope)
			}
		}
	}

	return out, nil
}
