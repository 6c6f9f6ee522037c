package contract

import (
	"cmp"
	"golang.org/x/exp/constraints"
	"iter"
	"slices"
)

// Order is a three-way comparison of two elements. It returns a negative number if a < b, zero if a == b, and a
// positive number if a > b.
//
// The methods of Order compare slices element by element. a is less than b as soon as any pair has a[i] less than
// b[i]; pairs where a[i] is greater do not end the walk. If no pair is less and a runs out first, a is less. Every
// method returns false when a and b are the same non-empty slice (same backing array and length). Use Compare for a
// strict three-way lexical comparison.
type Order[T any] func(a, b T) int

// LT returns true if a is strictly less than b.
func (o Order[T]) LT(a, b []T) bool {
	return o.less(a, b, false)
}

// LTE returns true if a is less than or equal to b.
func (o Order[T]) LTE(a, b []T) bool {
	return o.less(a, b, true)
}

// GT returns true if a is strictly greater than b.
func (o Order[T]) GT(a, b []T) bool {
	return o.less(b, a, false)
}

// GTE returns true if a is greater than or equal to b.
func (o Order[T]) GTE(a, b []T) bool {
	return o.less(b, a, true)
}

func (o Order[T]) less(a, b []T, eq bool) bool {
	// The same slice is never less than itself, even when eq is set.

	if same(a, b) {
		return false
	}

	// Only a pair where a is less ends the walk early. Other pairs, including ones where a is greater, fall through
	// to the next pair.

	for i := range a {
		if i >= len(b) {
			return false
		}
		if o(a[i], b[i]) < 0 {
			return true
		}
	}

	if len(b) > len(a) {
		return true
	}

	return eq
}

// same returns true if a and b are the same slice: they share a backing array from the same first element, and have
// the same length. Slices with equal contents but different backing arrays are not the same.
func same[T any](a, b []T) bool {
	return len(a) == len(b) && len(a) > 0 && &a[0] == &b[0]
}

// NullsFirst lifts cmp to nullable elements. A nil element is strictly less than any non-nil element, and two nil
// elements are equal.
func NullsFirst[T any](cmp func(a, b T) int) Order[*T] {
	return func(a, b *T) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		case b == nil:
			return 1
		}
		return cmp(*a, *b)
	}
}

// Compare lexically compares a and b using cmp on each pair of elements.
func Compare[T any](a, b []T, cmp func(a, b T) int) int {
	return slices.CompareFunc(a, b, cmp)
}

// CompareSeq is Compare over two single-pass sequences. Both sequences are pulled in lock step, and neither is
// pulled further once the result is known.
func CompareSeq[T any](a, b iter.Seq[T], cmp func(a, b T) int) int {
	nextA, stopA := iter.Pull(a)
	defer stopA()

	nextB, stopB := iter.Pull(b)
	defer stopB()

	for {
		x, okA := nextA()
		y, okB := nextB()

		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		}

		if c := cmp(x, y); c != 0 {
			return c
		}
	}
}

// LexLT returns true if a is lexically strictly less than b.
func LexLT[T constraints.Ordered](a, b []T) bool {
	return Order[T](cmp.Compare[T]).LT(a, b)
}

// LexLTE returns true if a is lexically less than or equal to b.
func LexLTE[T constraints.Ordered](a, b []T) bool {
	return Order[T](cmp.Compare[T]).LTE(a, b)
}

// LexGT returns true if a is lexically strictly greater than b.
func LexGT[T constraints.Ordered](a, b []T) bool {
	return Order[T](cmp.Compare[T]).GT(a, b)
}

// LexGTE returns true if a is lexically greater than or equal to b.
func LexGTE[T constraints.Ordered](a, b []T) bool {
	return Order[T](cmp.Compare[T]).GTE(a, b)
}
