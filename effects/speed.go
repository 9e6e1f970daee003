// SPDX-License-Identifier: EPL-2.0

package effects

import "github.com/waveedit/waveedit/buffer"

// SpeedChange resamples the buffer by linear interpolation at
// index = i*Ratio, changing duration and pitch together. Ratio 1 is an
// identity and returns the input buffer itself.
type SpeedChange struct {
	Ratio float64
}

func (SpeedChange) Kind() Kind { return KindSpeedChange }

func (s SpeedChange) Apply(src *buffer.Buffer) (*buffer.Buffer, error) {
	if err := checkRange(KindSpeedChange, "ratio", s.Ratio); err != nil {
		return nil, err
	}

	if s.Ratio == 1 {
		return src, nil
	}

	frames := src.FrameCount()
	outFrames := int(float64(frames) / s.Ratio)

	out, err := buffer.New(src.SampleRate, src.ChannelCount(), outFrames)
	if err != nil {
		return nil, err
	}

	for c, ch := range src.Channels {
		for i := range out.Channels[c] {
			pos := float64(i) * s.Ratio
			idx := int(pos)
			if idx >= frames-1 {
				out.Channels[c][i] = ch[frames-1]
				continue
			}
			frac := float32(pos - float64(idx))
			out.Channels[c][i] = ch[idx]*(1-frac) + ch[idx+1]*frac
		}
	}

	return out, nil
}
