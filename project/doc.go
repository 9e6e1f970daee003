// SPDX-License-Identifier: EPL-2.0

// Package project is the document model: tracks, the shared selection
// and the undoable command history.
//
// Tracks live in a generational arena. A TrackID carries the slot
// index plus a generation; removing a track advances the generation,
// so stale handles fail with ErrTrackNotFound instead of resolving to
// whatever reuses the slot. Redo revives the original id, which keeps
// handles captured by later commands on the stack valid.
//
// All edits go through Command values run by a History:
//
//	p := project.New()
//	h := project.NewHistory(p)
//	add := &project.AddTrack{Track: project.NewTrack("vocals")}
//	err := h.Do(add)
//	h.Undo()
//	h.Redo() // the track is back under add.ID()
//
// A failing command leaves both the project and the history unchanged.
// New commands clear the redo stack; both stacks are capped and trim
// their oldest entries.
//
// Save and Load persist the document as yaml, with per-track audio
// embedded as canonical WAV bytes.
package project
