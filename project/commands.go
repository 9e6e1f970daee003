// SPDX-License-Identifier: EPL-2.0

package project

import (
	"fmt"

	"github.com/waveedit/waveedit/buffer"
	"github.com/waveedit/waveedit/effects"
)

// AddTrack appends a track to the project. The first Execute mints the
// id; redo revives the same id so handles captured by later commands
// stay valid.
type AddTrack struct {
	Track *Track

	id       TrackID
	pos      int
	executed bool
}

func (c *AddTrack) Name() string { return "addTrack" }

// ID returns the id minted by Execute. Zero value before the first
// run.
func (c *AddTrack) ID() TrackID { return c.id }

func (c *AddTrack) Execute(p *Project) error {
	if c.Track == nil {
		return fmt.Errorf("%w: nil track", ErrTrackNotFound)
	}

	if !c.executed {
		c.id = p.addTrack(c.Track)
		c.pos = len(p.order) - 1
		c.executed = true
		return nil
	}

	p.restoreTrack(c.id, c.Track, c.pos)
	return nil
}

func (c *AddTrack) Undo(p *Project) error {
	_, _, err := p.removeTrack(c.id)
	return err
}

// RemoveTrack deletes a track, snapshotting it and its position for
// undo.
type RemoveTrack struct {
	ID TrackID

	removed *Track
	pos     int
}

func (c *RemoveTrack) Name() string { return "removeTrack" }

func (c *RemoveTrack) Execute(p *Project) error {
	t, pos, err := p.removeTrack(c.ID)
	if err != nil {
		return err
	}
	c.removed = t
	c.pos = pos
	return nil
}

func (c *RemoveTrack) Undo(p *Project) error {
	p.restoreTrack(c.ID, c.removed, c.pos)
	return nil
}

// UpdateTrack applies a partial track update, snapshotting the prior
// values of exactly the changed fields.
type UpdateTrack struct {
	ID      TrackID
	Changes TrackChanges

	prev TrackChanges
}

func (c *UpdateTrack) Name() string { return "updateTrack" }

func (c *UpdateTrack) Execute(p *Project) error {
	if err := c.Changes.validate(); err != nil {
		return err
	}

	t, err := p.Track(c.ID)
	if err != nil {
		return err
	}

	c.prev = c.Changes.apply(t)
	return nil
}

func (c *UpdateTrack) Undo(p *Project) error {
	t, err := p.Track(c.ID)
	if err != nil {
		return err
	}

	c.prev.apply(t)
	return nil
}

// AddEffect appends an effect record to a track's chain. Params are
// validated against the effect catalog before anything changes.
type AddEffect struct {
	TrackID TrackID
	Kind    effects.Kind
	Params  map[string]float64

	record   EffectRecord
	executed bool
}

func (c *AddEffect) Name() string { return "addEffect" }

// EffectID returns the record id minted by Execute.
func (c *AddEffect) EffectID() string { return c.record.ID }

func (c *AddEffect) Execute(p *Project) error {
	if _, err := effects.New(c.Kind, c.Params); err != nil {
		return err
	}

	t, err := p.Track(c.TrackID)
	if err != nil {
		return err
	}

	if !c.executed {
		c.record = newEffectRecord(c.Kind, c.Params)
		c.executed = true
	}
	t.Effects = append(t.Effects, c.record.clone())

	return nil
}

func (c *AddEffect) Undo(p *Project) error {
	t, err := p.Track(c.TrackID)
	if err != nil {
		return err
	}

	i := t.effectIndex(c.record.ID)
	if i < 0 {
		return ErrEffectNotFound
	}
	t.Effects = append(t.Effects[:i], t.Effects[i+1:]...)

	return nil
}

// RemoveEffect deletes an effect record from a track's chain,
// snapshotting it and its position.
type RemoveEffect struct {
	TrackID  TrackID
	EffectID string

	removed EffectRecord
	index   int
}

func (c *RemoveEffect) Name() string { return "removeEffect" }

func (c *RemoveEffect) Execute(p *Project) error {
	t, err := p.Track(c.TrackID)
	if err != nil {
		return err
	}

	i := t.effectIndex(c.EffectID)
	if i < 0 {
		return ErrEffectNotFound
	}

	c.removed = t.Effects[i]
	c.index = i
	t.Effects = append(t.Effects[:i], t.Effects[i+1:]...)

	return nil
}

func (c *RemoveEffect) Undo(p *Project) error {
	t, err := p.Track(c.TrackID)
	if err != nil {
		return err
	}

	i := c.index
	if i > len(t.Effects) {
		i = len(t.Effects)
	}
	t.Effects = append(t.Effects, EffectRecord{})
	copy(t.Effects[i+1:], t.Effects[i:])
	t.Effects[i] = c.removed

	return nil
}

// UpdateEffect replaces an effect record's parameters after validating
// them against the catalog.
type UpdateEffect struct {
	TrackID  TrackID
	EffectID string
	Params   map[string]float64

	prev map[string]float64
}

func (c *UpdateEffect) Name() string { return "updateEffect" }

func (c *UpdateEffect) Execute(p *Project) error {
	t, err := p.Track(c.TrackID)
	if err != nil {
		return err
	}

	i := t.effectIndex(c.EffectID)
	if i < 0 {
		return ErrEffectNotFound
	}

	if _, err := effects.New(t.Effects[i].Kind, c.Params); err != nil {
		return err
	}

	c.prev = t.Effects[i].Params
	t.Effects[i].Params = copyParams(c.Params)

	return nil
}

func (c *UpdateEffect) Undo(p *Project) error {
	t, err := p.Track(c.TrackID)
	if err != nil {
		return err
	}

	i := t.effectIndex(c.EffectID)
	if i < 0 {
		return ErrEffectNotFound
	}
	t.Effects[i].Params = c.prev

	return nil
}

// SetSelection replaces the shared selection. A nil Selection clears
// it.
type SetSelection struct {
	Selection *Selection

	prev *Selection
}

func (c *SetSelection) Name() string { return "setSelection" }

func (c *SetSelection) Execute(p *Project) error {
	c.prev = p.setSelection(c.Selection)
	return nil
}

func (c *SetSelection) Undo(p *Project) error {
	p.setSelection(c.prev)
	return nil
}

// BulkDelete splices the selected time range out of every track.
// Original buffers are captured in order and restored in reverse.
type BulkDelete struct {
	Start float64
	End   float64

	snapshots []bulkSnapshot
}

type bulkSnapshot struct {
	id     TrackID
	buffer *buffer.Buffer
}

func (c *BulkDelete) Name() string { return "bulkDelete" }

func (c *BulkDelete) Execute(p *Project) error {
	if c.End < c.Start {
		c.Start, c.End = c.End, c.Start
	}

	// Splice everything before mutating anything, so a failing track
	// leaves the project untouched.
	ids := p.TrackIDs()
	spliced := make([]*buffer.Buffer, len(ids))
	for i, id := range ids {
		t := p.slots[id.Index].track
		if t.Buffer == nil {
			continue
		}
		out, err := t.Buffer.SpliceOut(c.Start, c.End)
		if err != nil {
			return fmt.Errorf("track %q: %w", t.Name, err)
		}
		spliced[i] = out
	}

	c.snapshots = c.snapshots[:0]
	for i, id := range ids {
		if spliced[i] == nil {
			continue
		}
		t := p.slots[id.Index].track
		c.snapshots = append(c.snapshots, bulkSnapshot{id: id, buffer: t.Buffer})
		t.Buffer = spliced[i]
	}

	return nil
}

func (c *BulkDelete) Undo(p *Project) error {
	for i := len(c.snapshots) - 1; i >= 0; i-- {
		snap := c.snapshots[i]
		t, err := p.Track(snap.id)
		if err != nil {
			return err
		}
		t.Buffer = snap.buffer
	}
	return nil
}

func copyParams(params map[string]float64) map[string]float64 {
	if params == nil {
		return nil
	}
	out := make(map[string]float64, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}
