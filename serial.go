package contract

import "golang.org/x/exp/constraints"

// SerialLTE returns true if the wrapping counter value a is equal to or behind b.
func SerialLTE[T constraints.Unsigned](a, b T) bool {
	return a == b || SerialGT(b, a)
}

// SerialLT returns true if the wrapping counter value a is behind b.
func SerialLT[T constraints.Unsigned](a, b T) bool {
	return SerialGT(b, a)
}

// SerialGT returns true if the wrapping counter value a is ahead of b by at most half of the range of T.
func SerialGT[T constraints.Unsigned](a, b T) bool {
	half := ^T(0)/2 + 1
	return ((a > b) && (a-b <= half)) || ((a < b) && (b-a > half))
}
