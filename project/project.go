// SPDX-License-Identifier: EPL-2.0

package project

// slot is one arena cell. gen advances every time the occupant is
// removed, so ids minted for a previous occupant stop resolving.
type slot struct {
	track *Track
	gen   uint32
	live  bool
}

// Selection is a time range in seconds shared across tracks. A nil
// *Selection means nothing is selected.
type Selection struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// normalized returns the selection with Start <= End.
func (s Selection) normalized() Selection {
	if s.End < s.Start {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

// Project is the document: an ordered list of tracks behind
// generational ids, plus the shared selection. Mutations go through
// commands (see History) so every edit is undoable.
type Project struct {
	slots     []slot
	order     []TrackID
	selection *Selection
}

func New() *Project {
	return &Project{}
}

// Track resolves id, failing with ErrTrackNotFound for stale or
// never-allocated ids.
func (p *Project) Track(id TrackID) (*Track, error) {
	if id.Index < 0 || id.Index >= len(p.slots) {
		return nil, ErrTrackNotFound
	}
	s := p.slots[id.Index]
	if !s.live || s.gen != id.Gen {
		return nil, ErrTrackNotFound
	}
	return s.track, nil
}

// TrackIDs returns the live track ids in display order.
func (p *Project) TrackIDs() []TrackID {
	out := make([]TrackID, len(p.order))
	copy(out, p.order)
	return out
}

// Tracks returns the live tracks in display order.
func (p *Project) Tracks() []*Track {
	out := make([]*Track, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.slots[id.Index].track)
	}
	return out
}

// TrackCount returns the number of live tracks.
func (p *Project) TrackCount() int { return len(p.order) }

// Selection returns the shared selection, nil when nothing is
// selected. The returned value is a copy.
func (p *Project) Selection() *Selection {
	if p.selection == nil {
		return nil
	}
	s := *p.selection
	return &s
}

// addTrack allocates a slot for t and appends it to the order.
func (p *Project) addTrack(t *Track) TrackID {
	for i := range p.slots {
		if !p.slots[i].live {
			p.slots[i].track = t
			p.slots[i].live = true
			id := TrackID{Index: i, Gen: p.slots[i].gen}
			p.order = append(p.order, id)
			return id
		}
	}

	p.slots = append(p.slots, slot{track: t, live: true})
	id := TrackID{Index: len(p.slots) - 1}
	p.order = append(p.order, id)
	return id
}

// removeTrack frees the slot behind id and advances its generation.
// It returns the removed track and its position in the order so a
// command can restore both.
func (p *Project) removeTrack(id TrackID) (*Track, int, error) {
	t, err := p.Track(id)
	if err != nil {
		return nil, 0, err
	}

	p.slots[id.Index].track = nil
	p.slots[id.Index].live = false
	p.slots[id.Index].gen++

	pos := 0
	for i, oid := range p.order {
		if oid == id {
			pos = i
			break
		}
	}
	p.order = append(p.order[:pos], p.order[pos+1:]...)

	return t, pos, nil
}

// restoreTrack re-occupies the exact slot and generation of id and
// reinserts it at pos in the order. Redo of an add (and undo of a
// remove) must revive the original id, not mint a new one, so handles
// captured by later commands stay valid.
func (p *Project) restoreTrack(id TrackID, t *Track, pos int) {
	for id.Index >= len(p.slots) {
		p.slots = append(p.slots, slot{})
	}

	p.slots[id.Index].track = t
	p.slots[id.Index].gen = id.Gen
	p.slots[id.Index].live = true

	if pos < 0 {
		pos = 0
	}
	if pos > len(p.order) {
		pos = len(p.order)
	}
	p.order = append(p.order, TrackID{})
	copy(p.order[pos+1:], p.order[pos:])
	p.order[pos] = id
}

// setSelection stores a normalized copy and returns the previous
// value.
func (p *Project) setSelection(s *Selection) *Selection {
	prev := p.selection

	if s == nil {
		p.selection = nil
	} else {
		n := s.normalized()
		p.selection = &n
	}

	return prev
}
