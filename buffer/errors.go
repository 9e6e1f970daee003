// SPDX-License-Identifier: EPL-2.0

package buffer

import "errors"

var (
	ErrInvalidSampleRate     = errors.New("sample rate must be positive")
	ErrInvalidChannelCount   = errors.New("buffer needs at least one channel")
	ErrInvalidFrameCount     = errors.New("frame count must not be negative")
	ErrChannelLengthMismatch = errors.New("channel lengths differ")
	ErrNonFiniteSample       = errors.New("buffer contains a non-finite sample")
	ErrInvalidRange          = errors.New("invalid time range")
	ErrIncompatibleBuffers   = errors.New("buffers differ in sample rate or channel count")
	ErrInvalidDstSize        = errors.New("dst size must be multiple of channels")
)
