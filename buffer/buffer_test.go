package buffer

import (
	"math"
	"testing"
)

func TestNew_Valid(t *testing.T) {
	t.Parallel()

	b, err := New(44100, 2, 100)
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}

	if b.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", b.SampleRate)
	}
	if b.ChannelCount() != 2 {
		t.Errorf("ChannelCount() = %d, want 2", b.ChannelCount())
	}
	if b.FrameCount() != 100 {
		t.Errorf("FrameCount() = %d, want 100", b.FrameCount())
	}
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		rate, chans, size int
		wantErr           error
	}{
		{"zero rate", 0, 2, 100, ErrInvalidSampleRate},
		{"negative rate", -8000, 2, 100, ErrInvalidSampleRate},
		{"zero channels", 44100, 0, 100, ErrInvalidChannelCount},
		{"negative frames", 44100, 2, -1, ErrInvalidFrameCount},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.rate, tt.chans, tt.size)
			if err != tt.wantErr {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCopy_RoundTrip(t *testing.T) {
	t.Parallel()

	b, _ := Tone(8000, 2, 440, 0.1, 0.8)

	c := b.Copy()

	if c.SampleRate != b.SampleRate {
		t.Errorf("copy SampleRate = %d, want %d", c.SampleRate, b.SampleRate)
	}
	if c.ChannelCount() != b.ChannelCount() {
		t.Errorf("copy ChannelCount() = %d, want %d", c.ChannelCount(), b.ChannelCount())
	}
	if c.FrameCount() != b.FrameCount() {
		t.Errorf("copy FrameCount() = %d, want %d", c.FrameCount(), b.FrameCount())
	}

	for ch := range b.Channels {
		for i := range b.Channels[ch] {
			if c.Channels[ch][i] != b.Channels[ch][i] {
				t.Fatalf("copy sample [%d][%d] = %v, want %v", ch, i, c.Channels[ch][i], b.Channels[ch][i])
			}
		}
	}
}

func TestCopy_IsDistinct(t *testing.T) {
	t.Parallel()

	b, _ := Tone(8000, 1, 440, 0.1, 0.5)
	orig := b.Channels[0][10]

	c := b.Copy()
	c.Channels[0][10] = orig + 1

	if b.Channels[0][10] != orig {
		t.Error("mutating the copy changed the original buffer")
	}
}

func TestPeak(t *testing.T) {
	t.Parallel()

	b, _ := New(8000, 2, 4)
	b.Channels[0][1] = 0.25
	b.Channels[1][3] = -0.75

	if got := b.Peak(); got != 0.75 {
		t.Errorf("Peak() = %v, want 0.75", got)
	}
}

func TestPeak_Silence(t *testing.T) {
	t.Parallel()

	b, _ := Silence(8000, 1, 0.01)
	if got := b.Peak(); got != 0 {
		t.Errorf("Peak() = %v, want 0", got)
	}
}

func TestDuration(t *testing.T) {
	t.Parallel()

	b, _ := New(8000, 1, 4000)
	if got := b.Duration(); got != 0.5 {
		t.Errorf("Duration() = %v, want 0.5", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	b, _ := New(8000, 2, 10)
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	b.Channels[1] = b.Channels[1][:5]
	if err := b.Validate(); err != ErrChannelLengthMismatch {
		t.Errorf("Validate() error = %v, want ErrChannelLengthMismatch", err)
	}

	b, _ = New(8000, 1, 10)
	b.Channels[0][3] = float32(math.NaN())
	if err := b.Validate(); err != ErrNonFiniteSample {
		t.Errorf("Validate() error = %v, want ErrNonFiniteSample", err)
	}
}
