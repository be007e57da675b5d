package qvm

import "fmt"

// Lift embeds the k-qubit operator u into an n-qubit system so that it acts
// on the contiguous qubit block starting at index i, padding the remaining
// qubits with identities:
//
//	I^⊗(n-i-k) ⊗ u ⊗ I^⊗i
//
// The caller must ensure 0 <= i and i+k <= n; Lift panics otherwise since a
// violation is a programming error, not a runtime condition.
func Lift(u *Matrix, i, n int) *Matrix {
	k, err := QubitCount(u.Rows)
	if err != nil {
		panic(fmt.Sprintf("lift: %v", err))
	}
	if i < 0 || i+k > n {
		panic(fmt.Sprintf("lift: operator on %d qubits does not fit at index %d of %d", k, i, n))
	}
	return Kron(KronPower(Identity(2), n-i-k), Kron(u, KronPower(Identity(2), i)))
}
