// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/waveedit/waveedit/buffer"
)

// Distortion drives the signal by Amount through a tanh soft clip, then
// blends each clipped sample with the previous output sample under the
// Tone control. The one-sample feedback is deliberate coloration: lower
// Tone values darken the result.
type Distortion struct {
	Amount float64
	Tone   float64
}

func (Distortion) Kind() Kind { return KindDistortion }

func (d Distortion) Apply(src *buffer.Buffer) (*buffer.Buffer, error) {
	if err := checkRange(KindDistortion, "amount", d.Amount); err != nil {
		return nil, err
	}
	if err := checkRange(KindDistortion, "tone", d.Tone); err != nil {
		return nil, err
	}

	amount := d.Amount
	tone := float32(d.Tone)

	out := src.Copy()
	for _, ch := range out.Channels {
		var prev float32
		for i, s := range ch {
			clipped := float32(math.Tanh(float64(s) * amount))
			prev = tone*clipped + (1-tone)*prev
			ch[i] = prev
		}
	}

	return out, nil
}
