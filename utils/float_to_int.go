// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 clamps x to [-1, 1] and scales it to int16 by
// truncation. The positive scale is 32767 so 1.0 never overflows.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

// Float32ToInt16Round is Float32ToInt16 with round-half-away-from-zero
// instead of truncation. File encoders use it so quantization error
// stays within half a step.
func Float32ToInt16Round(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(math.Round(float64(x) * 32767.0))
}
