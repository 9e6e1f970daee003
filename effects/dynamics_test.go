package effects

import (
	"math"
	"testing"

	"github.com/waveedit/waveedit/buffer"
)

func TestNoiseGate_AttenuatesBelowFloor(t *testing.T) {
	t.Parallel()

	b, _ := buffer.New(8000, 1, 4)
	copy(b.Channels[0], []float32{0.01, -0.01, 0.5, -0.5})

	out, err := NoiseGate{Floor: 0.05, Reduction: 0.8}.Apply(b)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if got := out.Channels[0][0]; math.Abs(float64(got)-0.002) > 1e-6 {
		t.Errorf("gated sample = %v, want 0.002", got)
	}
	if got := out.Channels[0][2]; got != 0.5 {
		t.Errorf("loud sample = %v, want 0.5 untouched", got)
	}
}

func TestNoiseGate_FullReductionSilencesFloor(t *testing.T) {
	t.Parallel()

	b, _ := buffer.New(8000, 1, 2)
	copy(b.Channels[0], []float32{0.01, 0.9})

	out, err := NoiseGate{Floor: 0.05, Reduction: 1}.Apply(b)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if out.Channels[0][0] != 0 {
		t.Errorf("gated sample = %v, want 0", out.Channels[0][0])
	}
}

func TestCompressor_ReducesLoudPeaks(t *testing.T) {
	t.Parallel()

	b, _ := buffer.Tone(44100, 1, 440, 0.5, 0.9)

	out, err := Compressor{Threshold: 0.3, Ratio: 8, Attack: 5, Release: 100}.Apply(b)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if got := out.Peak(); got >= 0.9 {
		t.Errorf("Peak() = %v, want below input peak 0.9", got)
	}
	if got := out.Peak(); got < 0.25 {
		t.Errorf("Peak() = %v, compressor over-attenuated", got)
	}
}

func TestCompressor_QuietSignalUntouched(t *testing.T) {
	t.Parallel()

	b, _ := buffer.Tone(44100, 1, 440, 0.25, 0.1)

	out, err := Compressor{Threshold: 0.5, Ratio: 4, Attack: 10, Release: 100}.Apply(b)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	for i := range b.Channels[0] {
		if out.Channels[0][i] != b.Channels[0][i] {
			t.Fatalf("sample %d changed below threshold: %v -> %v",
				i, b.Channels[0][i], out.Channels[0][i])
		}
	}
}

func TestDistortion_SoftClipsWithinUnit(t *testing.T) {
	t.Parallel()

	b, _ := buffer.Tone(8000, 1, 440, 0.25, 0.9)

	out, err := Distortion{Amount: 20, Tone: 1}.Apply(b)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// tanh keeps everything strictly inside (-1, 1).
	for i, s := range out.Channels[0] {
		if s <= -1 || s >= 1 {
			t.Fatalf("sample %d = %v, want inside (-1, 1)", i, s)
		}
	}
}

func TestDistortion_ToneDarkens(t *testing.T) {
	t.Parallel()

	b, _ := buffer.Tone(44100, 1, 8000, 0.25, 0.8)

	bright, err := Distortion{Amount: 5, Tone: 1}.Apply(b)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	dark, err := Distortion{Amount: 5, Tone: 0.1}.Apply(b)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if rms(dark.Channels[0], 100) >= rms(bright.Channels[0], 100) {
		t.Error("low tone setting did not attenuate a high-frequency signal")
	}
}
