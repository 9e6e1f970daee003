// SPDX-License-Identifier: EPL-2.0

// Package playback schedules buffer output with a single transport
// cursor.
//
//	sink, err := playback.NewOtoSink(44100, 2)
//	s := playback.NewScheduler(sink)
//	s.OnFinished(func() { /* notify UI once */ })
//	err = s.Play(buf, 0, 0)
//
// Transport rules: Play while playing is a no-op, Play while paused
// resumes, Pause freezes the cursor, Stop resets it to 0. The finished
// notification fires exactly once per Play that reaches the end of its
// range; Stop and Pause never fire it.
//
// The master volume control is perceptual: a UI value v is applied as
// gain v². Playback rate is clamped to [0.25, 4.0] and is applied by
// resampling the stream, so it can change mid-playback.
//
// The production Sink is oto, which pulls the stream from its own
// goroutine; the scheduler is safe for concurrent use. The Sink/Voice
// split keeps it testable without an audio device.
package playback
