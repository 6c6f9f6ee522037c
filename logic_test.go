package contract

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestImpliesFalseAntecedentSkipsConsequent(t *testing.T) {
	called := false
	probe := func() bool {
		called = true
		return false
	}

	require.True(t, Implies(false, probe))
	require.False(t, called)
}

func TestImplies(t *testing.T) {
	require.True(t, Implies(true, func() bool { return true }))
	require.False(t, Implies(true, func() bool { return false }))
}

func TestOneOf(t *testing.T) {
	require.False(t, OneOf(5, 1, 2, 3))
	require.True(t, OneOf(5, 5, 1, 2))
	require.True(t, OneOf(5, 1, 2, 5))
	require.True(t, OneOf("a", "a"))
	require.False(t, OneOf("a", "b"))
}

func TestOneOfPtr(t *testing.T) {
	a, b, c := 1, 1, 2

	require.True(t, OneOfPtr[int](nil, nil))
	require.False(t, OneOfPtr(nil, &a))
	require.False(t, OneOfPtr(&a, nil))

	// Pointed-to values are compared, not addresses.

	require.True(t, OneOfPtr(&a, &b))
	require.False(t, OneOfPtr(&a, &c))
	require.True(t, OneOfPtr(&a, &c, nil, &b))
	require.True(t, OneOfPtr(nil, &c, nil))
}

func TestOneOfNonComparableDynamicType(t *testing.T) {
	var query interface{} = []int{1}

	require.Panics(t, func() { OneOf(query, interface{}([]int{1})) })

	// Mismatched dynamic types are unequal without comparing the values.

	require.False(t, OneOf(query, interface{}(1), interface{}("a")))

	eq := func(a, b interface{}) bool { return spew.Sdump(a) == spew.Sdump(b) }

	require.True(t, OneOfFunc(eq, query, interface{}([]int{1})))
	require.False(t, OneOfFunc(eq, query, interface{}([]int{2})))
}

func TestOneOfFunc(t *testing.T) {
	sameParity := func(a, b int) bool { return a%2 == b%2 }

	require.True(t, OneOfFunc(sameParity, 4, 1, 3, 8))
	require.False(t, OneOfFunc(sameParity, 4, 1, 3, 5))
}
