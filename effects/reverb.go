// SPDX-License-Identifier: EPL-2.0

package effects

import "github.com/waveedit/waveedit/buffer"

// Mutually prime delay line lengths at 44.1kHz, scaled to the buffer rate.
var reverbDelays = [6]int{1116, 1188, 1277, 1356, 1422, 1491}

// Reverb runs a bank of six feedback delay lines per channel and mixes
// their average with the dry signal: wet*avg + (1-wet)*dry. Line feedback
// is RoomSize*Damping. Delay state is allocated fresh per call, so the
// effect stays deterministic and channels stay independent.
type Reverb struct {
	RoomSize float64
	Damping  float64
	Wet      float64
}

func (Reverb) Kind() Kind { return KindReverb }

func (r Reverb) Apply(src *buffer.Buffer) (*buffer.Buffer, error) {
	if err := checkRange(KindReverb, "roomSize", r.RoomSize); err != nil {
		return nil, err
	}
	if err := checkRange(KindReverb, "damping", r.Damping); err != nil {
		return nil, err
	}
	if err := checkRange(KindReverb, "wet", r.Wet); err != nil {
		return nil, err
	}

	feedback := float32(r.RoomSize * r.Damping)
	wet := float32(r.Wet)
	dry := 1 - wet
	rateScale := float64(src.SampleRate) / 44100.0

	out := src.Copy()
	for _, ch := range out.Channels {
		lines := make([][]float32, len(reverbDelays))
		positions := make([]int, len(reverbDelays))
		for l, d := range reverbDelays {
			n := int(float64(d) * rateScale)
			if n < 1 {
				n = 1
			}
			lines[l] = make([]float32, n)
		}

		for i, in := range ch {
			var sum float32
			for l := range lines {
				pos := positions[l]
				delayed := lines[l][pos]
				lines[l][pos] = in + delayed*feedback
				positions[l] = (pos + 1) % len(lines[l])
				sum += delayed
			}
			ch[i] = wet*(sum/float32(len(lines))) + dry*in
		}
	}

	return out, nil
}
