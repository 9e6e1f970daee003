// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	ErrNilBuffer    = errors.New("no buffer to play")
	ErrDeviceFormat = errors.New("buffer format does not match output device")
)
