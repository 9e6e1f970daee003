package waveedit

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/waveedit/waveedit/formats/wav"
	"github.com/waveedit/waveedit/internal/audiotest"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	for _, format := range []string{"wav", "mp3", "ogg", "aiff"} {
		if _, ok := r.Get(format); !ok {
			t.Errorf("Get(%q) not registered", format)
		}
	}
	if _, ok := r.Get("aac"); ok {
		t.Error("Get(aac) = registered, want missing")
	}
}

func TestDecodeToBuffer_SameRate(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 2, 100, 0.25)

	b, err := DecodeToBuffer(src, 8000, 4096)
	if err != nil {
		t.Fatalf("DecodeToBuffer() error = %v", err)
	}

	if b.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", b.SampleRate)
	}
	if b.ChannelCount() != 2 {
		t.Errorf("ChannelCount() = %d, want 2", b.ChannelCount())
	}
	if b.FrameCount() != 100 {
		t.Errorf("FrameCount() = %d, want 100", b.FrameCount())
	}
	if b.Channels[0][50] != 0.25 {
		t.Errorf("sample = %v, want 0.25", b.Channels[0][50])
	}
}

func TestDecodeToBuffer_Resamples(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 1, 44100, 440)

	b, err := DecodeToBuffer(src, 22050, 4096)
	if err != nil {
		t.Fatalf("DecodeToBuffer() error = %v", err)
	}

	if b.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", b.SampleRate)
	}

	// Roughly half the frames, within resampler edge effects.
	if got := b.FrameCount(); math.Abs(float64(got-22050)) > 32 {
		t.Errorf("FrameCount() = %d, want ≈22050", got)
	}
}

func TestDecodeToBuffer_ZeroTargetKeepsRate(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(48000, 1, 200)

	b, err := DecodeToBuffer(src, 0, 4096)
	if err != nil {
		t.Fatalf("DecodeToBuffer() error = %v", err)
	}
	if b.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000 (unchanged)", b.SampleRate)
	}
}

func TestImport_WAV(t *testing.T) {
	t.Parallel()

	var file bytes.Buffer
	samples := []int16{0, 8192, 16384, 8192, 0, -8192, -16384, -8192}
	if err := wav.WritePCM16(&file, 8000, 1, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	b, err := Import(&file, "wav", 8000)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if b.FrameCount() != len(samples) {
		t.Fatalf("FrameCount() = %d, want %d", b.FrameCount(), len(samples))
	}
	want := float64(samples[2]) / 32768.0
	if math.Abs(float64(b.Channels[0][2])-want) > 1e-6 {
		t.Errorf("sample 2 = %v, want %v", b.Channels[0][2], want)
	}
}

func TestImport_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Import(bytes.NewReader(nil), "aac", 44100)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Import(aac) error = %v, want ErrUnknownFormat", err)
	}
}

func TestImport_CorruptData(t *testing.T) {
	t.Parallel()

	_, err := Import(bytes.NewReader([]byte("garbage")), "wav", 44100)
	if err == nil {
		t.Error("Import(garbage) error = nil, want error")
	}
}
