// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"fmt"
	"io"
	"sync"
)

// Source is a stream of interleaved float32 samples in [-1, 1]. Format
// decoders, the resampler and the down-mixer all implement it, so they can
// be chained before the stream is collected into a Buffer.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0
	// with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys (e.g., "wav", "mp3", "ogg") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// FromSource drains src into a new Buffer, de-interleaving as it goes.
// bufferSize controls the read granularity (4096 is a good default).
func FromSource(src Source, bufferSize int) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrInvalidChannelCount
	}
	if bufferSize < channels {
		bufferSize = channels
	}
	// Reads must land on frame boundaries.
	bufferSize -= bufferSize % channels

	b := &Buffer{
		SampleRate: src.SampleRate(),
		Channels:   make([][]float32, channels),
	}

	buf := make([]float32, bufferSize)
	for {
		n, err := src.ReadSamples(buf)
		for i := 0; i < n; i += channels {
			for c := 0; c < channels && i+c < n; c++ {
				b.Channels[c] = append(b.Channels[c], buf[i+c])
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Source returns a read-only streaming view over the buffer. The view
// interleaves on the fly and never mutates b.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf   *Buffer
	frame int
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.ChannelCount() }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.ChannelCount()
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.frame >= s.buf.FrameCount() {
		return 0, io.EOF
	}

	frames := len(dst) / channels
	if remain := s.buf.FrameCount() - s.frame; frames > remain {
		frames = remain
	}

	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			dst[f*channels+c] = s.buf.Channels[c][s.frame+f]
		}
	}
	s.frame += frames

	if s.frame >= s.buf.FrameCount() {
		return frames * channels, io.EOF
	}
	return frames * channels, nil
}
