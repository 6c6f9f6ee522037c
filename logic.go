package contract

// Implies returns true if antecedent is false, or if both antecedent and the result of consequent are true.
// consequent is only evaluated when antecedent is true.
func Implies(antecedent bool, consequent func() bool) bool {
	return !antecedent || consequent()
}

// OneOf returns true if query is equal to first or to any of rest.
//
// Values are compared with ==, which panics if T is an interface type and query and a candidate hold the same
// non-comparable dynamic type (such as []int). Use OneOfFunc with a suitable equality for such values.
func OneOf[T comparable](query T, first T, rest ...T) bool {
	if query == first {
		return true
	}
	for _, x := range rest {
		if query == x {
			return true
		}
	}
	return false
}

// OneOfPtr is OneOf for nullable values. Two nil pointers are equal, a nil pointer is never equal to a non-nil
// pointer, and two non-nil pointers are equal if the values they point to are equal.
func OneOfPtr[T comparable](query *T, first *T, rest ...*T) bool {
	return OneOfFunc(bothNilOrEqual[T], query, first, rest...)
}

// OneOfFunc returns true if eq reports query to be equal to first or to any of rest.
func OneOfFunc[T any](eq func(a, b T) bool, query T, first T, rest ...T) bool {
	if eq(query, first) {
		return true
	}
	for _, x := range rest {
		if eq(query, x) {
			return true
		}
	}
	return false
}

func bothNilOrEqual[T comparable](x, y *T) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return *x == *y
}
