package qvm

import (
	"errors"
	"fmt"
)

// ErrInvalidQubitIndex reports a qubit index outside [0, n) or a duplicate
// index within one gate's qubit list.
var ErrInvalidQubitIndex = errors.New("invalid qubit index")

// validateQubits checks that every index is distinct and within [0, n).
func validateQubits(qubits []int, n int) error {
	seen := make(map[int]bool, len(qubits))
	for _, q := range qubits {
		if q < 0 || q >= n {
			return fmt.Errorf("qubit %d outside [0,%d): %w", q, n, ErrInvalidQubitIndex)
		}
		if seen[q] {
			return fmt.Errorf("qubit %d listed twice: %w", q, ErrInvalidQubitIndex)
		}
		seen[q] = true
	}
	return nil
}

// ApplyGate applies the unitary u to the listed qubits of the state. A
// single-qubit gate is lifted directly; a multi-qubit gate on arbitrary,
// possibly reordered qubits goes through the permutation engine first.
func ApplyGate(s *StateVector, u *Matrix, qubits []int) error {
	k, err := QubitCount(u.Rows)
	if err != nil {
		return err
	}
	if u.Cols != u.Rows {
		return fmt.Errorf("operator is %dx%d, not square: %w", u.Rows, u.Cols, ErrDimensionMismatch)
	}
	if len(qubits) != k {
		return fmt.Errorf("%d-qubit operator applied to %d qubits: %w",
			k, len(qubits), ErrDimensionMismatch)
	}
	if err := validateQubits(qubits, s.NumQubits); err != nil {
		return err
	}

	if k == 1 {
		return s.Apply(Lift(u, qubits[0], s.NumQubits))
	}
	op, err := gateOperator(u, qubits, s.NumQubits)
	if err != nil {
		return err
	}
	return s.Apply(op)
}
