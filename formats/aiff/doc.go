// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio via github.com/go-audio/aiff.
//
// The decoder returns a buffer.Source streaming float32 samples in
// [-1.0, 1.0]. PCM at 8, 16, 24 and 32 bits is supported; encoding is
// not.
package aiff
