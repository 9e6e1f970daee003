// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/waveedit/waveedit/buffer"
)

// mp3Reader is an interface over gomp3.Decoder to allow testing.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// source bridges go-mp3's int16 byte stream to buffer.Source. go-mp3
// always emits stereo 16-bit little-endian PCM.
type source struct {
	dec        mp3Reader
	sampleRate int
	byteBuf    []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return 2 }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.byteBuf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Two bytes per sample.
	need := len(dst) * 2
	if cap(s.byteBuf) < need {
		s.byteBuf = make([]byte, need)
	}
	s.byteBuf = s.byteBuf[:need]

	n, err := s.dec.Read(s.byteBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		v := int16(uint16(s.byteBuf[2*i]) | uint16(s.byteBuf[2*i+1])<<8)
		dst[i] = float32(v) / 32768.0
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (buffer.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		byteBuf:    make([]byte, 8192),
	}, nil
}
