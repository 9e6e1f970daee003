package project

import (
	"bytes"
	"math"
	"testing"

	"github.com/waveedit/waveedit/effects"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	p := New()
	h := NewHistory(p)

	idA := addTrack(t, h, "vocals")
	idB := addTrack(t, h, "guitar")

	buf := toneBuffer(t, 0.5)
	vol := 2.0
	pan := -0.5
	muted := true
	h.Do(&UpdateTrack{ID: idA, Changes: TrackChanges{Buffer: &buf, Volume: &vol, Pan: &pan}})
	h.Do(&UpdateTrack{ID: idB, Changes: TrackChanges{Muted: &muted}})

	add := &AddEffect{TrackID: idA, Kind: effects.KindEcho, Params: map[string]float64{"delay": 0.25, "repeat": 2}}
	if err := h.Do(add); err != nil {
		t.Fatalf("AddEffect error = %v", err)
	}
	h.Do(&SetSelection{Selection: &Selection{Start: 0.1, End: 0.4}})

	var out bytes.Buffer
	if err := p.Save(&out); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(&out)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.TrackCount() != 2 {
		t.Fatalf("TrackCount() = %d, want 2", loaded.TrackCount())
	}

	tracks := loaded.Tracks()
	a, b := tracks[0], tracks[1]

	if a.Name != "vocals" || b.Name != "guitar" {
		t.Errorf("track order = %q, %q", a.Name, b.Name)
	}
	if a.Volume != 2.0 || a.Pan != -0.5 {
		t.Errorf("track a volume=%v pan=%v, want 2 -0.5", a.Volume, a.Pan)
	}
	if !b.Muted {
		t.Error("track b muted flag lost")
	}

	if len(a.Effects) != 1 {
		t.Fatalf("track a effects = %d, want 1", len(a.Effects))
	}
	rec := a.Effects[0]
	if rec.ID != add.EffectID() {
		t.Errorf("effect id = %q, want %q", rec.ID, add.EffectID())
	}
	if rec.Kind != effects.KindEcho {
		t.Errorf("effect kind = %v, want KindEcho", rec.Kind)
	}
	if rec.Params["delay"] != 0.25 || rec.Params["repeat"] != 2 {
		t.Errorf("effect params = %v", rec.Params)
	}

	if sel := loaded.Selection(); sel == nil || sel.Start != 0.1 || sel.End != 0.4 {
		t.Errorf("Selection() = %+v, want {0.1 0.4}", sel)
	}
}

func TestSaveLoad_AudioSurvivesWithinQuantization(t *testing.T) {
	t.Parallel()

	p := New()
	h := NewHistory(p)
	id := addTrack(t, h, "a")

	buf := toneBuffer(t, 0.2)
	h.Do(&UpdateTrack{ID: id, Changes: TrackChanges{Buffer: &buf}})

	var out bytes.Buffer
	if err := p.Save(&out); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := Load(&out)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got := loaded.Tracks()[0].Buffer
	if got == nil {
		t.Fatal("audio lost")
	}
	if got.SampleRate != buf.SampleRate {
		t.Errorf("SampleRate = %d, want %d", got.SampleRate, buf.SampleRate)
	}
	if got.FrameCount() != buf.FrameCount() {
		t.Fatalf("FrameCount = %d, want %d", got.FrameCount(), buf.FrameCount())
	}

	// Audio rides as 16-bit PCM, so samples match within one
	// quantization step.
	for i := 0; i < buf.FrameCount(); i++ {
		diff := math.Abs(float64(got.Channels[0][i] - buf.Channels[0][i]))
		if diff > 1.0/32767.0 {
			t.Fatalf("sample %d differs by %v", i, diff)
		}
	}
}

func TestSaveLoad_EmptyProject(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := New().Save(&out); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(&out)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.TrackCount() != 0 {
		t.Errorf("TrackCount() = %d, want 0", loaded.TrackCount())
	}
	if loaded.Selection() != nil {
		t.Error("empty project has a selection")
	}
}

func TestLoad_UnknownEffectKind(t *testing.T) {
	t.Parallel()

	doc := `tracks:
  - name: a
    volume: 1
    pan: 0
    effects:
      - id: x
        kind: chorus
`
	if _, err := Load(bytes.NewReader([]byte(doc))); err == nil {
		t.Error("Load() error = nil, want error for unknown effect kind")
	}
}

func TestLoad_Garbage(t *testing.T) {
	t.Parallel()

	if _, err := Load(bytes.NewReader([]byte("\t\tnot yaml"))); err == nil {
		t.Error("Load() error = nil, want error")
	}
}
