// SPDX-License-Identifier: EPL-2.0

// Package capture assembles live input chunks into a sample buffer.
//
// The Accumulator is a two-state machine (Idle → Capturing → Idle) driven
// by the device collaborator:
//
//	acc := capture.NewAccumulator()
//	id, err := acc.Start(44100, 2, probeDevice)
//	// per delivered chunk, in delivery order:
//	err = acc.Append(chunk)
//	// ...
//	buf, err := acc.Stop()
//
// Start while capturing fails with ErrAlreadyCapturing and leaves the
// running session untouched. Stop while idle is a silent no-op, so it is
// always safe as a cancellation point. Chunk order matters: Append has no
// reordering logic, matching a device callback that delivers in order.
package capture
