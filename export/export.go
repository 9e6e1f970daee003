// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"
	"sync"

	"github.com/waveedit/waveedit/buffer"
)

// Format identifies an export container.
type Format string

const (
	FormatWAV  Format = "wav"
	FormatMP3  Format = "mp3"
	FormatOGG  Format = "ogg"
	FormatFLAC Format = "flac"
)

// mimeTypes maps each allow-listed format to its media type. Presence
// in this table is what makes a format exportable.
var mimeTypes = map[Format]string{
	FormatWAV:  "audio/wav",
	FormatMP3:  "audio/mpeg",
	FormatOGG:  "audio/ogg",
	FormatFLAC: "audio/flac",
}

// Valid reports whether f is an allow-listed export format.
func (f Format) Valid() bool {
	_, ok := mimeTypes[f]
	return ok
}

// MIME returns the media type for f, or "" for unknown formats.
func (f Format) MIME() string { return mimeTypes[f] }

// Encoder turns a buffer into container bytes for one format.
type Encoder interface {
	Encode(b *buffer.Buffer) ([]byte, error)
}

// Result is a finished export: the container bytes plus the label and
// media type a caller needs to hand the data on.
type Result struct {
	Format Format
	MIME   string
	Data   []byte
}

// registry holds the active encoder per format. WAV has a real
// encoder; the other formats start with a placeholder that emits the
// WAV container under the requested label until a real encoder is
// registered.
var registry = struct {
	sync.RWMutex
	encoders map[Format]Encoder
}{
	encoders: map[Format]Encoder{
		FormatWAV:  WAVEncoder{},
		FormatMP3:  placeholderEncoder{},
		FormatOGG:  placeholderEncoder{},
		FormatFLAC: placeholderEncoder{},
	},
}

// Register installs enc as the encoder for an allow-listed format,
// replacing the current one. Unknown formats are rejected so a typo
// cannot silently widen the allow-list.
func Register(f Format, enc Encoder) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}

	registry.Lock()
	defer registry.Unlock()
	registry.encoders[f] = enc

	return nil
}

// Export encodes b into the requested format. A nil buffer returns
// (nil, nil) without invoking any encoder. Unknown formats return
// ErrUnsupportedFormat.
func Export(b *buffer.Buffer, f Format) (*Result, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if b == nil {
		return nil, nil
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	registry.RLock()
	enc := registry.encoders[f]
	registry.RUnlock()

	data, err := enc.Encode(b)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", f, err)
	}

	return &Result{
		Format: f,
		MIME:   f.MIME(),
		Data:   data,
	}, nil
}
