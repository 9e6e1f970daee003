// SPDX-License-Identifier: EPL-2.0

package waveedit

import (
	"fmt"
	"io"

	"github.com/waveedit/waveedit/buffer"
	"github.com/waveedit/waveedit/formats/aiff"
	"github.com/waveedit/waveedit/formats/mp3"
	"github.com/waveedit/waveedit/formats/vorbis"
	"github.com/waveedit/waveedit/formats/wav"
)

// DefaultRegistry returns a decoder registry with every built-in
// format registered: wav, mp3, ogg and aiff.
func DefaultRegistry() *buffer.Registry {
	r := buffer.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
}

// DecodeToBuffer drains src into a Buffer, resampling to targetRate
// when it differs from the source rate. The channel layout is
// preserved. bufferSize controls the read granularity; 4096 is a good
// default.
func DecodeToBuffer(src buffer.Source, targetRate, bufferSize int) (*buffer.Buffer, error) {
	if targetRate > 0 && src.SampleRate() != targetRate {
		src = buffer.NewResampler(src, targetRate)
	}

	b, err := buffer.FromSource(src, bufferSize)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return b, nil
}

// Import decodes r as the named format and collects it into a Buffer
// at targetRate. It is the one-call path from an uploaded file to an
// editable buffer:
//
//	b, err := waveedit.Import(file, "mp3", 44100)
func Import(r io.Reader, format string, targetRate int) (*buffer.Buffer, error) {
	dec, ok := DefaultRegistry().Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}
	defer src.Close()

	return DecodeToBuffer(src, targetRate, src.BufSize())
}
