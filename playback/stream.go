// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"io"
	"sync"

	"github.com/waveedit/waveedit/buffer"
	"github.com/waveedit/waveedit/utils"
)

// stream renders a buffer sub-range as interleaved signed 16-bit LE
// bytes. The transport cursor lives here: it advances by the current
// playback rate per output frame, with linear interpolation between
// source frames at non-unity rates.
//
// Read runs on the sink's own goroutine while the transport methods run
// on the caller's, so the cursor state is guarded by mu. The completion
// hook fires with mu released.
type stream struct {
	buf  *buffer.Buffer
	end  float64 // exclusive frame bound, fixed at construction
	rate func() float64

	mu  sync.Mutex
	pos float64 // frame cursor within buf

	// done fires exactly once when the cursor reaches end. Detached by
	// Stop/replacement so cancellation never looks like completion.
	done     func()
	finished bool
}

func newStream(b *buffer.Buffer, startSec, durationSec float64, rate func() float64, done func()) *stream {
	start := startSec * float64(b.SampleRate)
	end := float64(b.FrameCount())
	if durationSec > 0 {
		if e := start + durationSec*float64(b.SampleRate); e < end {
			end = e
		}
	}
	if start > end {
		start = end
	}

	return &stream{buf: b, pos: start, end: end, rate: rate, done: done}
}

func (s *stream) detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done = nil
}

// position returns the cursor in seconds.
func (s *stream) position() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos / float64(s.buf.SampleRate)
}

func (s *stream) Read(p []byte) (int, error) {
	channels := s.buf.ChannelCount()
	frameBytes := 2 * channels
	maxFrames := len(p) / frameBytes
	if maxFrames == 0 {
		return 0, io.ErrShortBuffer
	}

	// One rate sample per device pull; a mid-pull SetRate lands on the
	// next one. Read with no stream lock held so the rate getter may
	// take the scheduler's.
	rate := s.rate()

	s.mu.Lock()

	lastFrame := s.buf.FrameCount() - 1
	written := 0
	for ; written < maxFrames && s.pos < s.end; written++ {
		idx := int(s.pos)
		frac := float32(s.pos - float64(idx))

		for c := 0; c < channels; c++ {
			ch := s.buf.Channels[c]
			sample := ch[idx]
			if frac > 0 && idx < lastFrame {
				sample = sample*(1-frac) + ch[idx+1]*frac
			}

			v := uint16(utils.Float32ToInt16(sample))
			off := written*frameBytes + c*2
			binary.LittleEndian.PutUint16(p[off:off+2], v)
		}

		s.pos += rate
	}

	var fire func()
	ended := s.pos >= s.end
	if ended && !s.finished {
		s.finished = true
		fire = s.done
	}

	s.mu.Unlock()

	if fire != nil {
		fire()
	}

	if ended {
		if written == 0 {
			return 0, io.EOF
		}
		return written * frameBytes, io.EOF
	}

	return written * frameBytes, nil
}
