// SPDX-License-Identifier: EPL-2.0

package export

import "errors"

// ErrUnsupportedFormat indicates a format outside the export
// allow-list.
var ErrUnsupportedFormat = errors.New("unsupported export format")
