// SPDX-License-Identifier: EPL-2.0

package capture

import "errors"

var (
	ErrDeviceUnavailable    = errors.New("no audio input device available")
	ErrAlreadyCapturing     = errors.New("capture session already running")
	ErrNotCapturing         = errors.New("no capture session running")
	ErrChunkChannelMismatch = errors.New("chunk channel layout does not match session")
)
