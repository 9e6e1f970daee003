package effects

import (
	"testing"

	"github.com/waveedit/waveedit/buffer"
)

func TestPitchChange_UnitRatioIdentity(t *testing.T) {
	t.Parallel()

	b, _ := buffer.Tone(8000, 1, 440, 0.25, 0.5)

	out, err := PitchChange{Ratio: 1}.Apply(b)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if out != b {
		t.Error("Apply() with ratio 1 allocated a new buffer, want passthrough")
	}
}

func TestPitchChange_PreservesLength(t *testing.T) {
	t.Parallel()

	for _, ratio := range []float64{0.5, 0.75, 1.5, 2.0} {
		b, _ := buffer.Tone(44100, 2, 440, 0.5, 0.5)

		out, err := PitchChange{Ratio: ratio}.Apply(b)
		if err != nil {
			t.Fatalf("Apply(ratio=%v) error = %v", ratio, err)
		}

		if out.FrameCount() != b.FrameCount() {
			t.Errorf("ratio %v: FrameCount() = %d, want %d", ratio, out.FrameCount(), b.FrameCount())
		}
	}
}

func TestPitchChange_OutputBounded(t *testing.T) {
	t.Parallel()

	b, _ := buffer.Tone(44100, 1, 440, 0.5, 0.9)

	out, err := PitchChange{Ratio: 1.5}.Apply(b)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// Window normalization must not blow up amplitude.
	if peak := out.Peak(); peak > 1.1 {
		t.Errorf("Peak() = %v, want ≤ ≈input peak", peak)
	}
	if err := out.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
