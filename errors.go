// SPDX-License-Identifier: EPL-2.0

package waveedit

import "errors"

// ErrUnknownFormat indicates a format key with no registered decoder.
var ErrUnknownFormat = errors.New("unknown audio format")
