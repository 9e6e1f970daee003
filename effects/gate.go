// SPDX-License-Identifier: EPL-2.0

package effects

import "github.com/waveedit/waveedit/buffer"

// NoiseGate attenuates samples whose magnitude falls below Floor by
// (1 - Reduction). This is a pure amplitude gate, not a spectral
// denoiser; broadband noise under the floor is reduced, noise riding on
// louder content is untouched.
type NoiseGate struct {
	Floor     float64
	Reduction float64
}

func (NoiseGate) Kind() Kind { return KindNoiseGate }

func (g NoiseGate) Apply(src *buffer.Buffer) (*buffer.Buffer, error) {
	if err := checkRange(KindNoiseGate, "noiseFloor", g.Floor); err != nil {
		return nil, err
	}
	if err := checkRange(KindNoiseGate, "reduction", g.Reduction); err != nil {
		return nil, err
	}

	floor := float32(g.Floor)
	keep := float32(1 - g.Reduction)

	out := src.Copy()
	for _, ch := range out.Channels {
		for i, s := range ch {
			mag := s
			if mag < 0 {
				mag = -mag
			}
			if mag < floor {
				ch[i] = s * keep
			}
		}
	}

	return out, nil
}
