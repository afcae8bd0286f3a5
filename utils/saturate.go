// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Clamp16 narrows a wide intermediate to the int16 range.
func Clamp16(x int32) int16 {
	return Clamp16From64(int64(x))
}

// Clamp16From64 is Clamp16 for products that may not fit in int32.
func Clamp16From64(x int64) int16 {
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	if x < math.MinInt16 {
		return math.MinInt16
	}
	return int16(x)
}

// SatAdd16 returns a+b clamped to the int16 range.
func SatAdd16(a, b int16) int16 {
	return Clamp16(int32(a) + int32(b))
}

// SatSub16 returns a-b clamped to the int16 range.
func SatSub16(a, b int16) int16 {
	return Clamp16(int32(a) - int32(b))
}

// SatMul16 returns a*b clamped to the int16 range.
func SatMul16(a, b int16) int16 {
	return Clamp16(int32(a) * int32(b))
}
