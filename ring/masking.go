package ring

import "golang.org/x/exp/constraints"

// Select returns b if bit is 1 and a if bit is 0, without branching on bit.
// Shared by ring normalization and the reconciliation layer, both of which
// must not let coefficient values influence control flow.
func Select[T constraints.Integer](bit uint, a, b T) T {
	mask := T(0) - T(bit&1)
	return a ^ (mask & (a ^ b))
}
