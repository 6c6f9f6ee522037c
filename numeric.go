package contract

import (
	"golang.org/x/exp/constraints"
	"math"
	"unsafe"
)

// IsPowerOfTwo returns true if x is a power of two. Zero is not a power of two.
//
// Signed integers are checked by their bit pattern, so math.MinInt32 is a power of two as an int32.
func IsPowerOfTwo[T constraints.Integer](x T) bool {
	return x != 0 && x&(x-1) == 0
}

// Pow returns x**y, computed in float64 and truncated. The result is inexact once x**y no longer fits in the 53-bit
// mantissa of a float64.
func Pow[T constraints.Integer](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}

// GCD returns the greatest common divisor of a and b using Euclid's method. The sign of the result on negative
// inputs follows Go's truncated remainder.
func GCD[T constraints.Integer](a, b T) T {
	if b == 0 {
		return a
	}
	return GCD(b, a%b)
}

// UnsignedRightShift performs a logical right shift of x by count, wherein high-order empty bit positions are always
// set to zero regardless of whether T is signed.
//
// The count is not masked to the width of T: shifting by the width of T or more yields zero, whereas a masked shift
// of a uint32 by 32 would return x unchanged.
func UnsignedRightShift[T constraints.Integer](x T, count uint) T {
	width := uint(unsafe.Sizeof(x)) * 8
	if count >= width {
		return 0
	}
	return T((uint64(x) & widthMask(width)) >> count)
}

func widthMask(width uint) uint64 {
	if width >= 64 {
		return math.MaxUint64
	}
	return 1<<width - 1
}
