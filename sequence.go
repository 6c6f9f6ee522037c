package contract

import "iter"

// IsSubsequence returns true if the elements of target appear in parent contiguously and in order. An empty target
// is never matched.
//
// Matching is naive: on a mismatch after a partial match, only the current element of parent is rechecked against
// the first element of target. Runs that overlap a failed partial match (e.g. [1 1 2] in [1 1 1 2]) are not found.
func IsSubsequence[T comparable](target, parent []T) bool {
	return IsSubsequenceFunc(target, parent, equal[T])
}

// IsSubsequenceFunc is IsSubsequence with elements compared using eq.
func IsSubsequenceFunc[T any](target, parent []T, eq func(a, b T) bool) bool {
	m := matcher[T]{target: target, eq: eq}
	if m.empty() {
		return false
	}
	for _, x := range parent {
		if m.step(x) {
			return true
		}
	}
	return false
}

// IsSubsequenceSeq is IsSubsequence over a single-pass parent. parent is iterated at most once, and iteration stops
// as soon as target has been matched.
func IsSubsequenceSeq[T comparable](target []T, parent iter.Seq[T]) bool {
	m := matcher[T]{target: target, eq: equal[T]}
	if m.empty() {
		return false
	}
	for x := range parent {
		if m.step(x) {
			return true
		}
	}
	return false
}

type matcher[T any] struct {
	target  []T
	eq      func(a, b T) bool
	pos     int
	partial bool
}

func (m *matcher[T]) empty() bool {
	return len(m.target) == 0
}

// step feeds the next element of the parent sequence, and returns true once the whole target has been matched.
func (m *matcher[T]) step(x T) bool {
	if m.eq(m.target[m.pos], x) {
		m.partial = true
		if m.pos == len(m.target)-1 {
			return true
		}
		m.pos++
		return false
	}

	if !m.partial {
		return false
	}

	// Restart, rechecking x against the head of target.

	m.partial = false
	m.pos = 0

	if m.eq(m.target[0], x) {
		m.partial = true
		m.pos++
	}

	return false
}

func equal[T comparable](a, b T) bool {
	return a == b
}
