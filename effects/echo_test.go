package effects

import (
	"math"
	"testing"

	"github.com/waveedit/waveedit/buffer"
)

func TestEcho_OutputLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		delay  float64
		repeat int
	}{
		{"single repeat", 0.1, 1},
		{"three repeats", 0.25, 3},
		{"short delay", 0.01, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, _ := buffer.Tone(8000, 2, 440, 0.5, 0.5)

			out, err := Echo{Delay: tt.delay, Decay: 0.5, Repeat: tt.repeat}.Apply(b)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}

			delaySamples := int(tt.delay * 8000)
			want := b.FrameCount() + delaySamples*tt.repeat
			if out.FrameCount() != want {
				t.Errorf("FrameCount() = %d, want exactly %d", out.FrameCount(), want)
			}
		})
	}
}

func TestEcho_GeometricDecay(t *testing.T) {
	t.Parallel()

	// Single impulse at frame 0; each repeat lands at r*delaySamples with
	// amplitude decay^r.
	b, _ := buffer.New(1000, 1, 10)
	b.Channels[0][0] = 1.0

	out, err := Echo{Delay: 0.1, Decay: 0.5, Repeat: 3}.Apply(b) // delay = 100 frames
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	wants := map[int]float32{0: 1.0, 100: 0.5, 200: 0.25, 300: 0.125}
	for idx, want := range wants {
		if got := out.Channels[0][idx]; math.Abs(float64(got-want)) > 1e-6 {
			t.Errorf("frame %d = %v, want %v", idx, got, want)
		}
	}
}

func TestEcho_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	b, _ := buffer.Silence(8000, 1, 0.01)

	if _, err := (Echo{Delay: 0.1, Decay: 0.5, Repeat: 0}).Apply(b); err == nil {
		t.Error("Apply() with repeat=0 succeeded, want ErrParamRange")
	}
	if _, err := (Echo{Delay: 10, Decay: 0.5, Repeat: 1}).Apply(b); err == nil {
		t.Error("Apply() with delay=10 succeeded, want ErrParamRange")
	}
}
