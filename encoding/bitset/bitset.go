// Package bitset converts unsigned integers to and from ordered lists of set bit positions.
package bitset

import "math/bits"

// Unsigned represents any unsigned integer type
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Indexes returns ascending positions (LSB = 0) of bits set in value, zero yields empty list
func Indexes[T Unsigned](value T) []uint {
	v := uint64(value)
	result := make([]uint, 0, bits.OnesCount64(v))
	for v != 0 {
		index := bits.TrailingZeros64(v)
		result = append(result, uint(index))
		v &= v - 1
	}
	return result
}

// FromIndexes returns value with exactly the listed bits set.
// Every index has to be lower than the bit width of T, larger positions are a caller error.
func FromIndexes[T Unsigned](indexes []uint) T {
	var result T
	for _, index := range indexes {
		result |= T(1) << index
	}
	return result
}
