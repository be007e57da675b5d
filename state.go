package qvm

import (
	"fmt"
	"math/bits"
	"math/cmplx"
)

// StateVector holds the amplitudes of an n-qubit register. The vector has
// length 2^n and satisfies Σ|amp|² ≈ 1 between unitary applications.
// Qubit 0 maps to the least-significant bit of the amplitude index.
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

// NewStateVector returns the |0...0⟩ state on numQubits qubits.
func NewStateVector(numQubits int) *StateVector {
	n := 1 << numQubits
	amps := make([]Complex, n)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// Clone returns an independent copy of the state.
func (s *StateVector) Clone() *StateVector {
	amps := make([]Complex, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// QubitCount returns log2(dim) for a power-of-two dimension.
func QubitCount(dim int) (int, error) {
	if dim <= 0 || dim&(dim-1) != 0 {
		return 0, fmt.Errorf("dimension %d: %w", dim, ErrNonPowerOfTwoDimension)
	}
	return bits.TrailingZeros(uint(dim)), nil
}

// Apply replaces the state with op·state.
func (s *StateVector) Apply(op *Matrix) error {
	n := len(s.Amplitudes)
	if op.Rows != n || op.Cols != n {
		return fmt.Errorf("apply %dx%d operator to length-%d state: %w",
			op.Rows, op.Cols, n, ErrDimensionMismatch)
	}
	out := make([]Complex, n)
	for i := 0; i < n; i++ {
		row := op.Data[i*n : (i+1)*n]
		var acc Complex
		for j, amp := range s.Amplitudes {
			if row[j] != 0 {
				acc += row[j] * amp
			}
		}
		out[i] = acc
	}
	s.Amplitudes = out
	return nil
}

// Norm returns Σ|amp|² over the whole register.
func (s *StateVector) Norm() float64 {
	total := 0.0
	for _, amp := range s.Amplitudes {
		total += real(amp * cmplx.Conj(amp))
	}
	return total
}

// QubitProbability holds the marginal outcome probabilities for one qubit.
type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// GetQubitProbabilities returns the marginal probabilities for each qubit.
func (s *StateVector) GetQubitProbabilities() []QubitProbability {
	probs := make([]QubitProbability, s.NumQubits)
	for i, amp := range s.Amplitudes {
		prob := real(amp * cmplx.Conj(amp))
		for q := 0; q < s.NumQubits; q++ {
			if i&(1<<q) != 0 {
				probs[q].Prob1 += prob
			} else {
				probs[q].Prob0 += prob
			}
		}
	}
	return probs
}

// Probability returns |amp|² for one basis index.
func (s *StateVector) Probability(i int) float64 {
	amp := s.Amplitudes[i]
	return real(amp * cmplx.Conj(amp))
}

// Phase returns the argument of one amplitude in (-π, π].
func (s *StateVector) Phase(i int) float64 {
	return cmplx.Phase(s.Amplitudes[i])
}
