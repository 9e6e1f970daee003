// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"sync"

	"github.com/waveedit/waveedit/buffer"
)

const (
	MinRate = 0.25
	MaxRate = 4.0
)

type transportState int

const (
	stopped transportState = iota
	playing
	paused
)

// Scheduler turns a Buffer (or sub-range) into scheduled output on a
// Sink, tracking a single transport cursor. At most one cursor is active;
// Play while playing is a deliberate no-op so a double-tap can not spawn
// overlapping playback.
//
// All methods are safe for concurrent use: the production sink pulls the
// stream from its own goroutine, so the transport state is mutex-guarded.
// The scheduler and stream locks are never nested: Position and Stop
// release the scheduler lock before touching the stream, and the stream
// calls the rate getter and the completion hook with its own lock
// released.
type Scheduler struct {
	sink Sink

	mu     sync.Mutex
	state  transportState
	voice  Voice
	stream *stream

	volume     float64 // UI value; applied gain is volume²
	rate       float64
	onFinished func()
}

func NewScheduler(sink Sink) *Scheduler {
	return &Scheduler{sink: sink, volume: 1, rate: 1}
}

// OnFinished registers the playback-finished notification. It fires
// exactly once per Play that runs to the end of its range; Stop and Pause
// never fire it.
func (s *Scheduler) OnFinished(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onFinished = fn
}

// Play starts the cursor at startSec (0 for the buffer start), bounded by
// durationSec (≤0 plays the remainder). While paused, Play resumes from
// the frozen cursor and ignores its arguments. While playing, it is a
// no-op; call Stop or Pause first to retarget.
func (s *Scheduler) Play(b *buffer.Buffer, startSec, durationSec float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case playing:
		return nil
	case paused:
		s.state = playing
		s.voice.Play()
		return nil
	}

	if b == nil {
		return ErrNilBuffer
	}
	if startSec < 0 {
		return buffer.ErrInvalidRange
	}

	// A voice whose stream completed on its own is released here, not in
	// the completion hook, which runs on the sink's read path.
	if s.voice != nil {
		s.voice.Close()
		s.voice = nil
		s.stream = nil
	}

	str := newStream(b, startSec, durationSec, s.Rate, s.finished)
	voice, err := s.sink.Open(b.SampleRate, b.ChannelCount(), str)
	if err != nil {
		return err
	}

	s.stream = str
	s.voice = voice
	s.state = playing
	voice.SetVolume(s.volume * s.volume)
	voice.Play()

	return nil
}

// Pause freezes the cursor for a later Play resume. No-op unless playing.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != playing {
		return
	}
	s.voice.Pause()
	s.state = paused
}

// Stop cancels playback and resets the cursor to 0. Safe to call in any
// state.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.state == stopped {
		s.mu.Unlock()
		return
	}
	str, voice := s.stream, s.voice
	s.stream = nil
	s.voice = nil
	s.state = stopped
	s.mu.Unlock()

	// Detach before closing so an in-flight read never reports
	// completion for a cancelled stream.
	str.detach()
	voice.Close()
}

// Position reports the transport cursor in seconds; 0 when stopped.
func (s *Scheduler) Position() float64 {
	s.mu.Lock()
	state, str := s.state, s.stream
	s.mu.Unlock()

	if state == stopped || str == nil {
		return 0
	}
	return str.position()
}

// Playing reports whether the cursor is advancing.
func (s *Scheduler) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == playing
}

// SetMasterVolume maps the linear UI value v onto output gain as v², so
// the control tracks perceived loudness.
func (s *Scheduler) SetMasterVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v < 0 {
		v = 0
	}
	s.volume = v
	if s.voice != nil {
		s.voice.SetVolume(v * v)
	}
}

// MasterVolume returns the UI-side volume value.
func (s *Scheduler) MasterVolume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// SetRate sets the playback rate, clamped to [MinRate, MaxRate]. It takes
// effect immediately, including mid-playback.
func (s *Scheduler) SetRate(r float64) {
	if r < MinRate {
		r = MinRate
	} else if r > MaxRate {
		r = MaxRate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rate = r
}

// Rate returns the clamped playback rate.
func (s *Scheduler) Rate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rate
}

// finished is the stream's completion hook: the cursor reached the end of
// its range on its own. It runs on the sink's read goroutine with no
// stream lock held; the notification fires outside the scheduler lock so
// it may call back into the transport.
func (s *Scheduler) finished() {
	s.mu.Lock()
	s.state = stopped
	fn := s.onFinished
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
}
