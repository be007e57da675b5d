package qvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatePermutation(t *testing.T) {
	// Targets reversed first, then the ascending complement.
	require.Equal(t, []int{1, 0}, gatePermutation([]int{0, 1}, 2))
	require.Equal(t, []int{0, 1}, gatePermutation([]int{1, 0}, 2))
	require.Equal(t, []int{1, 3, 0, 2}, gatePermutation([]int{3, 1}, 4))
}

func TestPermutationToTranspositions(t *testing.T) {
	require.Empty(t, permutationToTranspositions([]int{0, 1, 2}))
	require.Equal(t,
		[]transposition{{Low: 0, High: 1}},
		permutationToTranspositions([]int{1, 0}))
	require.Equal(t,
		[]transposition{{Low: 0, High: 2}, {Low: 1, High: 2}},
		permutationToTranspositions([]int{2, 0, 1}))
}

func TestTranspositionsToAdjacentSwaps(t *testing.T) {
	require.Equal(t, []int{0},
		transpositionsToAdjacentSwaps([]transposition{{Low: 0, High: 1}}))
	require.Equal(t, []int{0, 1, 0},
		transpositionsToAdjacentSwaps([]transposition{{Low: 0, High: 2}}))
	require.Equal(t, []int{1, 2, 1, 2},
		transpositionsToAdjacentSwaps([]transposition{{Low: 1, High: 3}, {Low: 2, High: 3}}))
}

func TestQubitOrderSensitivity(t *testing.T) {
	// |01⟩ with the control listed first: q0 is set, so CNOT on [0,1]
	// flips q1 while CNOT on [1,0] does nothing.
	forward := NewStateVector(2)
	require.NoError(t, ApplyGate(forward, X(), []int{0}))
	require.NoError(t, ApplyGate(forward, CNOT(), []int{0, 1}))
	assert.InDelta(t, 1.0, forward.Probability(3), 1e-9)

	reversed := NewStateVector(2)
	require.NoError(t, ApplyGate(reversed, X(), []int{0}))
	require.NoError(t, ApplyGate(reversed, CNOT(), []int{1, 0}))
	assert.InDelta(t, 1.0, reversed.Probability(1), 1e-9)
}

func TestNonAdjacentGate(t *testing.T) {
	// CNOT across the outer qubits of a 3-qubit register: |001⟩ → |101⟩.
	s := NewStateVector(3)
	require.NoError(t, ApplyGate(s, X(), []int{0}))
	require.NoError(t, ApplyGate(s, CNOT(), []int{0, 2}))
	assert.InDelta(t, 1.0, s.Probability(0b101), 1e-9)
}

func TestToffoliReordered(t *testing.T) {
	// Controls on q2 and q0, target q1, with both controls set.
	s := NewStateVector(3)
	require.NoError(t, ApplyGate(s, X(), []int{0}))
	require.NoError(t, ApplyGate(s, X(), []int{2}))
	require.NoError(t, ApplyGate(s, Toffoli(), []int{2, 0, 1}))
	assert.InDelta(t, 1.0, s.Probability(0b111), 1e-9)
}

func TestDispatcherValidation(t *testing.T) {
	s := NewStateVector(2)

	err := ApplyGate(s, CNOT(), []int{0})
	require.ErrorIs(t, err, ErrDimensionMismatch)

	err = ApplyGate(s, CNOT(), []int{0, 2})
	require.ErrorIs(t, err, ErrInvalidQubitIndex)

	err = ApplyGate(s, CNOT(), []int{1, 1})
	require.ErrorIs(t, err, ErrInvalidQubitIndex)

	err = ApplyGate(s, NewMatrix(3, 3), []int{0})
	require.ErrorIs(t, err, ErrNonPowerOfTwoDimension)
}
