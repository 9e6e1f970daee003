// SPDX-License-Identifier: EPL-2.0

package project

import "errors"

var (
	// ErrTrackNotFound indicates a TrackID that is stale or was never
	// allocated.
	ErrTrackNotFound = errors.New("track not found")

	// ErrEffectNotFound indicates an effect id not present on the
	// track.
	ErrEffectNotFound = errors.New("effect not found")

	// ErrVolumeRange indicates a track volume outside [0, 10].
	ErrVolumeRange = errors.New("track volume out of range")

	// ErrPanRange indicates a track pan outside [-1, 1].
	ErrPanRange = errors.New("track pan out of range")

	// ErrHistoryBusy indicates a command issued from inside another
	// command's execution.
	ErrHistoryBusy = errors.New("history is executing a command")

	// ErrNothingToUndo indicates Undo with an empty undo stack.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates Redo with an empty redo stack.
	ErrNothingToRedo = errors.New("nothing to redo")
)
