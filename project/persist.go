// SPDX-License-Identifier: EPL-2.0

package project

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/waveedit/waveedit/buffer"
	"github.com/waveedit/waveedit/effects"
	"github.com/waveedit/waveedit/export"
	"github.com/waveedit/waveedit/formats/wav"
)

// projectFile is the on-disk shape. Audio travels as a complete WAV
// container per track, which yaml emits as !!binary, so the sample
// rate and channel layout ride along with the data.
type projectFile struct {
	Tracks    []trackFile `yaml:"tracks"`
	Selection *Selection  `yaml:"selection,omitempty"`
}

type trackFile struct {
	Name    string       `yaml:"name"`
	Volume  float64      `yaml:"volume"`
	Pan     float64      `yaml:"pan"`
	Muted   bool         `yaml:"muted,omitempty"`
	Solo    bool         `yaml:"solo,omitempty"`
	Effects []effectFile `yaml:"effects,omitempty"`
	Audio   []byte       `yaml:"audio,omitempty"`
}

type effectFile struct {
	ID     string             `yaml:"id"`
	Kind   string             `yaml:"kind"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// Save writes the project as yaml. Track order, mix settings, effect
// chains and the selection are preserved; buffers round-trip through
// the canonical WAV encoding.
func (p *Project) Save(w io.Writer) error {
	file := projectFile{
		Tracks:    make([]trackFile, 0, len(p.order)),
		Selection: p.selection,
	}

	for _, t := range p.Tracks() {
		tf := trackFile{
			Name:   t.Name,
			Volume: t.Volume,
			Pan:    t.Pan,
			Muted:  t.Muted,
			Solo:   t.Solo,
		}

		for _, rec := range t.Effects {
			tf.Effects = append(tf.Effects, effectFile{
				ID:     rec.ID,
				Kind:   rec.Kind.String(),
				Params: rec.Params,
			})
		}

		if t.Buffer != nil {
			res, err := export.Export(t.Buffer, export.FormatWAV)
			if err != nil {
				return fmt.Errorf("track %q: %w", t.Name, err)
			}
			tf.Audio = res.Data
		}

		file.Tracks = append(file.Tracks, tf)
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Load reads a project saved with Save. Track ids are freshly
// allocated; only the document content round-trips.
func Load(r io.Reader) (*Project, error) {
	var file projectFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	p := New()
	for _, tf := range file.Tracks {
		t := &Track{
			Name:   tf.Name,
			Volume: tf.Volume,
			Pan:    tf.Pan,
			Muted:  tf.Muted,
			Solo:   tf.Solo,
		}

		for _, ef := range tf.Effects {
			kind, ok := effects.KindFromName(ef.Kind)
			if !ok {
				return nil, fmt.Errorf("track %q: %w: %q", tf.Name, effects.ErrUnknownKind, ef.Kind)
			}
			t.Effects = append(t.Effects, EffectRecord{
				ID:     ef.ID,
				Kind:   kind,
				Params: ef.Params,
			})
		}

		if len(tf.Audio) > 0 {
			src, err := wav.Decoder{}.Decode(bytes.NewReader(tf.Audio))
			if err != nil {
				return nil, fmt.Errorf("track %q: %w", tf.Name, err)
			}
			b, err := buffer.FromSource(src, src.BufSize())
			if err != nil {
				return nil, fmt.Errorf("track %q: %w", tf.Name, err)
			}
			t.Buffer = b
		}

		p.addTrack(t)
	}

	if file.Selection != nil {
		p.setSelection(file.Selection)
	}

	return p, nil
}
