// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/waveedit/waveedit/buffer"
)

// State of the accumulator's two-state machine.
type State int

const (
	Idle State = iota
	Capturing
)

func (s State) String() string {
	if s == Capturing {
		return "capturing"
	}
	return "idle"
}

// DeviceCheck probes input-device availability before a session starts.
// The device collaborator supplies it; returning an error aborts Start.
type DeviceCheck func() error

// Accumulator assembles fixed-size input chunks into one Buffer. It is
// driven cooperatively: the device collaborator calls Append once per
// delivered chunk, in delivery order, and Stop concatenates everything
// captured so far.
//
// Append is the hot path. It does O(chunk) work and nothing else, so a
// chunk is always ingested before the next one arrives.
type Accumulator struct {
	state      State
	sessionID  string
	sampleRate int
	channels   int

	chunks [][][]float32 // per channel, ordered list of chunk copies
	frames int
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

func (a *Accumulator) State() State      { return a.state }
func (a *Accumulator) Capturing() bool   { return a.state == Capturing }
func (a *Accumulator) SessionID() string { return a.sessionID }

// FrameCount returns the frames accumulated so far in the live session.
func (a *Accumulator) FrameCount() int { return a.frames }

// Start opens a capture session at the stream's rate and channel count.
// A nil check skips the device probe. Re-entry fails with
// ErrAlreadyCapturing and leaves the running session untouched.
func (a *Accumulator) Start(sampleRate, channels int, check DeviceCheck) (string, error) {
	if a.state == Capturing {
		return "", ErrAlreadyCapturing
	}
	if sampleRate <= 0 {
		return "", buffer.ErrInvalidSampleRate
	}
	if channels < 1 {
		return "", buffer.ErrInvalidChannelCount
	}
	if check != nil {
		if err := check(); err != nil {
			return "", fmt.Errorf("%w: %w", ErrDeviceUnavailable, err)
		}
	}

	a.sessionID = uuid.NewString()
	a.sampleRate = sampleRate
	a.channels = channels
	a.chunks = make([][][]float32, channels)
	a.frames = 0
	a.state = Capturing

	return a.sessionID, nil
}

// Append ingests one chunk, given as per-channel slices of equal length.
// The data is copied so the device driver can reuse its chunk memory.
func (a *Accumulator) Append(chunk [][]float32) error {
	if a.state != Capturing {
		return ErrNotCapturing
	}
	if len(chunk) != a.channels {
		return ErrChunkChannelMismatch
	}

	frames := len(chunk[0])
	for c, ch := range chunk {
		if len(ch) != frames {
			return ErrChunkChannelMismatch
		}
		dup := make([]float32, frames)
		copy(dup, ch)
		a.chunks[c] = append(a.chunks[c], dup)
	}
	a.frames += frames

	return nil
}

// Stop ends the session, concatenates all chunks per channel into one
// Buffer and returns to Idle. Calling Stop while Idle is a no-op
// returning (nil, nil).
func (a *Accumulator) Stop() (*buffer.Buffer, error) {
	if a.state != Capturing {
		return nil, nil
	}

	b, err := buffer.New(a.sampleRate, a.channels, a.frames)
	if err != nil {
		// Report, don't truncate: the session stays open so the caller
		// can retry or abandon it explicitly.
		return nil, fmt.Errorf("assembling capture: %w", err)
	}

	for c, chunks := range a.chunks {
		pos := 0
		for _, chunk := range chunks {
			copy(b.Channels[c][pos:], chunk)
			pos += len(chunk)
		}
	}

	a.state = Idle
	a.chunks = nil
	a.frames = 0

	return b, nil
}
