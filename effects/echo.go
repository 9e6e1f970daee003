// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/waveedit/waveedit/buffer"
)

// Echo adds Repeat delayed copies of the signal, each Delay seconds after
// the previous one and attenuated geometrically by Decay per repeat. The
// output is longer than the input by delaySamples*Repeat frames so the
// last repeat is never cut off.
type Echo struct {
	Delay  float64 // seconds between repeats
	Decay  float64 // per-repeat gain, applied multiplicatively
	Repeat int
}

func (Echo) Kind() Kind { return KindEcho }

func (e Echo) Apply(src *buffer.Buffer) (*buffer.Buffer, error) {
	if err := checkRange(KindEcho, "delay", e.Delay); err != nil {
		return nil, err
	}
	if err := checkRange(KindEcho, "decay", e.Decay); err != nil {
		return nil, err
	}
	if err := checkRange(KindEcho, "repeat", float64(e.Repeat)); err != nil {
		return nil, err
	}

	delaySamples := int(e.Delay * float64(src.SampleRate))
	frames := src.FrameCount()

	out, err := buffer.New(src.SampleRate, src.ChannelCount(), frames+delaySamples*e.Repeat)
	if err != nil {
		return nil, err
	}

	for c, ch := range src.Channels {
		copy(out.Channels[c], ch)

		for r := 1; r <= e.Repeat; r++ {
			gain := float32(math.Pow(e.Decay, float64(r)))
			offset := r * delaySamples
			for i, s := range ch {
				out.Channels[c][offset+i] += s * gain
			}
		}
	}

	return out, nil
}
