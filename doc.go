// Package contract provides small pure helpers for writing code contracts: logical implication, membership tests,
// contiguous run matching, lexical ordering of sequences, wrapping counter ordering, and integer bit helpers.
package contract
