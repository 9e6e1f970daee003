// SPDX-License-Identifier: EPL-2.0

package effects

import "errors"

var (
	ErrUnknownKind  = errors.New("unknown effect kind")
	ErrUnknownParam = errors.New("parameter not declared for effect")
	ErrParamRange   = errors.New("parameter out of declared range")
)
