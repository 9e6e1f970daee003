// SPDX-License-Identifier: EPL-2.0

package project

import (
	"github.com/google/uuid"

	"github.com/waveedit/waveedit/buffer"
	"github.com/waveedit/waveedit/effects"
)

// TrackID is a generational handle to a track. The generation makes
// handles to removed tracks detectably stale instead of silently
// pointing at whatever reuses the slot.
type TrackID struct {
	Index int    `yaml:"index"`
	Gen   uint32 `yaml:"gen"`
}

// EffectRecord is one entry in a track's effect chain: a stable id,
// the effect kind and its parameter overrides. Params hold only values
// validated against the effect catalog.
type EffectRecord struct {
	ID     string             `yaml:"id"`
	Kind   effects.Kind       `yaml:"-"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

func newEffectRecord(kind effects.Kind, params map[string]float64) EffectRecord {
	rec := EffectRecord{
		ID:   uuid.NewString(),
		Kind: kind,
	}
	if len(params) > 0 {
		rec.Params = make(map[string]float64, len(params))
		for k, v := range params {
			rec.Params[k] = v
		}
	}
	return rec
}

// clone copies the record deeply enough that mutating one never
// changes the other.
func (r EffectRecord) clone() EffectRecord {
	out := r
	if r.Params != nil {
		out.Params = make(map[string]float64, len(r.Params))
		for k, v := range r.Params {
			out.Params[k] = v
		}
	}
	return out
}

// Track is one audio lane: a buffer plus mix settings and an ordered
// effect chain.
type Track struct {
	Name    string
	Buffer  *buffer.Buffer
	Volume  float64 // [0, 10], 1 = unity
	Pan     float64 // [-1, 1], 0 = center
	Muted   bool
	Solo    bool
	Effects []EffectRecord
}

// NewTrack creates a track with unity volume and center pan.
func NewTrack(name string) *Track {
	return &Track{Name: name, Volume: 1}
}

// effectIndex finds the position of the effect with the given id, or
// -1.
func (t *Track) effectIndex(id string) int {
	for i, rec := range t.Effects {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// TrackChanges is a partial track update. Nil fields are left
// untouched; the same shape doubles as the undo snapshot.
type TrackChanges struct {
	Name   *string
	Buffer **buffer.Buffer
	Volume *float64
	Pan    *float64
	Muted  *bool
	Solo   *bool
}

// validate rejects out-of-range mix settings before anything is
// applied.
func (c TrackChanges) validate() error {
	if c.Volume != nil && (*c.Volume < 0 || *c.Volume > 10) {
		return ErrVolumeRange
	}
	if c.Pan != nil && (*c.Pan < -1 || *c.Pan > 1) {
		return ErrPanRange
	}
	return nil
}

// apply writes the non-nil fields to t and returns a TrackChanges
// holding the previous values of exactly those fields.
func (c TrackChanges) apply(t *Track) TrackChanges {
	var prev TrackChanges

	if c.Name != nil {
		old := t.Name
		prev.Name = &old
		t.Name = *c.Name
	}
	if c.Buffer != nil {
		old := t.Buffer
		prev.Buffer = &old
		t.Buffer = *c.Buffer
	}
	if c.Volume != nil {
		old := t.Volume
		prev.Volume = &old
		t.Volume = *c.Volume
	}
	if c.Pan != nil {
		old := t.Pan
		prev.Pan = &old
		t.Pan = *c.Pan
	}
	if c.Muted != nil {
		old := t.Muted
		prev.Muted = &old
		t.Muted = *c.Muted
	}
	if c.Solo != nil {
		old := t.Solo
		prev.Solo = &old
		t.Solo = *c.Solo
	}

	return prev
}
