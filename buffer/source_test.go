package buffer

import (
	"errors"
	"io"
	"testing"
)

type mockDecoder struct{}

func (mockDecoder) Decode(r io.Reader) (Source, error) {
	return newSilentSource(44100, 2, 100), nil
}

type failingDecoder struct{}

func (failingDecoder) Decode(r io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := mockDecoder{}
	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	if _, ok := registry.Get("nonexistent"); ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestFromSource_Stereo(t *testing.T) {
	t.Parallel()

	// Left channel constant 0.25, right channel constant -0.5.
	src := newMockSource(8000, 2, 1000, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.25
		}
		return -0.5
	})

	b, err := FromSource(src, 4096)
	if err != nil {
		t.Fatalf("FromSource() error = %v", err)
	}

	if b.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", b.SampleRate)
	}
	if b.ChannelCount() != 2 {
		t.Fatalf("ChannelCount() = %d, want 2", b.ChannelCount())
	}
	if b.FrameCount() != 1000 {
		t.Errorf("FrameCount() = %d, want 1000", b.FrameCount())
	}
	for i := range b.Channels[0] {
		if b.Channels[0][i] != 0.25 || b.Channels[1][i] != -0.5 {
			t.Fatalf("frame %d = (%v, %v), want (0.25, -0.5)", i, b.Channels[0][i], b.Channels[1][i])
		}
	}
}

func TestBufferSource_RoundTrip(t *testing.T) {
	t.Parallel()

	orig, _ := Tone(8000, 2, 440, 0.25, 0.8)

	got, err := FromSource(orig.Source(), 1024)
	if err != nil {
		t.Fatalf("FromSource() error = %v", err)
	}

	if got.FrameCount() != orig.FrameCount() {
		t.Fatalf("FrameCount() = %d, want %d", got.FrameCount(), orig.FrameCount())
	}
	for c := range orig.Channels {
		for i := range orig.Channels[c] {
			if got.Channels[c][i] != orig.Channels[c][i] {
				t.Fatalf("sample [%d][%d] = %v, want %v", c, i, got.Channels[c][i], orig.Channels[c][i])
			}
		}
	}
}

func TestBufferSource_InvalidDstSize(t *testing.T) {
	t.Parallel()

	b, _ := Tone(8000, 2, 440, 0.1, 0.5)
	src := b.Source()

	buf := make([]float32, 7) // not a multiple of 2
	if _, err := src.ReadSamples(buf); err != ErrInvalidDstSize {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestBufferSource_EOF(t *testing.T) {
	t.Parallel()

	b, _ := Silence(8000, 1, 0.001) // 8 frames
	src := b.Source()

	buf := make([]float32, 16)
	n, err := src.ReadSamples(buf)
	if n != 8 {
		t.Errorf("ReadSamples() n = %d, want 8", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after EOF = (%d, %v), want (0, io.EOF)", n, err)
	}
}
