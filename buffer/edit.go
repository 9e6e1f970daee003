// SPDX-License-Identifier: EPL-2.0

package buffer

// ExtractRange returns a new buffer covering [startSec, endSec), truncated
// to the buffer length. It fails with ErrInvalidRange before allocating
// anything when the range is negative or inverted.
func (b *Buffer) ExtractRange(startSec, endSec float64) (*Buffer, error) {
	if startSec < 0 || endSec < startSec {
		return nil, ErrInvalidRange
	}

	start := b.frameAt(startSec)
	end := b.frameAt(endSec)

	out := &Buffer{
		SampleRate: b.SampleRate,
		Channels:   make([][]float32, len(b.Channels)),
	}
	for c, ch := range b.Channels {
		out.Channels[c] = make([]float32, end-start)
		copy(out.Channels[c], ch[start:end])
	}

	return out, nil
}

// SpliceOut returns a new buffer with the frames in [startSec, endSec)
// removed and the remainder concatenated. Validation matches ExtractRange.
func (b *Buffer) SpliceOut(startSec, endSec float64) (*Buffer, error) {
	if startSec < 0 || endSec < startSec {
		return nil, ErrInvalidRange
	}

	start := b.frameAt(startSec)
	end := b.frameAt(endSec)

	out := &Buffer{
		SampleRate: b.SampleRate,
		Channels:   make([][]float32, len(b.Channels)),
	}
	for c, ch := range b.Channels {
		out.Channels[c] = make([]float32, 0, len(ch)-(end-start))
		out.Channels[c] = append(out.Channels[c], ch[:start]...)
		out.Channels[c] = append(out.Channels[c], ch[end:]...)
	}

	return out, nil
}

// Concat joins parts into one new buffer. All parts must share sample rate
// and channel count.
func Concat(parts ...*Buffer) (*Buffer, error) {
	if len(parts) == 0 {
		return nil, ErrInvalidChannelCount
	}

	rate := parts[0].SampleRate
	channels := parts[0].ChannelCount()
	frames := 0
	for _, p := range parts {
		if p.SampleRate != rate || p.ChannelCount() != channels {
			return nil, ErrIncompatibleBuffers
		}
		frames += p.FrameCount()
	}

	out, err := New(rate, channels, frames)
	if err != nil {
		return nil, err
	}

	pos := 0
	for _, p := range parts {
		for c, ch := range p.Channels {
			copy(out.Channels[c][pos:], ch)
		}
		pos += p.FrameCount()
	}

	return out, nil
}
