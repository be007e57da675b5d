// Package circuits builds example programs on top of the qvm engine. It is
// a caller of the public API only; nothing here reaches into engine
// internals.
package circuits

import (
	"fmt"
	"math"

	"qvm"
)

// Bell returns the two-qubit program preparing (|00⟩ + |11⟩)/√2.
func Bell() qvm.Program {
	return qvm.Program{
		qvm.NamedGate("H", qvm.H(), 0),
		qvm.NamedGate("CNOT", qvm.CNOT(), 0, 1),
	}
}

// GHZ returns a program preparing the n-qubit GHZ state
// (|0...0⟩ + |1...1⟩)/√2 by chaining CNOTs off one Hadamard.
func GHZ(n int) qvm.Program {
	p := qvm.Program{qvm.NamedGate("H", qvm.H(), 0)}
	for q := 0; q < n-1; q++ {
		p = append(p, qvm.NamedGate("CNOT", qvm.CNOT(), q, q+1))
	}
	return p
}

// QFT returns the quantum Fourier transform on the given qubits: the
// recursive Hadamard/controlled-phase ladder followed by bit-reversal
// SWAPs. The recursion order matches the engine's Kronecker ordering.
func QFT(qubits []int) qvm.Program {
	p := qftLadder(qubits)
	for i, j := 0, len(qubits)-1; i < j; i, j = i+1, j-1 {
		p = append(p, qvm.NamedGate("SWAP", qvm.SWAP(), qubits[i], qubits[j]))
	}
	return p
}

func qftLadder(qubits []int) qvm.Program {
	q, rest := qubits[0], qubits[1:]
	if len(rest) == 0 {
		return qvm.Program{qvm.NamedGate("H", qvm.H(), q)}
	}
	p := qftLadder(rest)
	for i, qi := range rest {
		angle := math.Pi / float64(int(1)<<(i+1))
		label := fmt.Sprintf("CPHASE(%s)", formatAngle(angle))
		p = append(p, qvm.NamedGate(label, qvm.CPhase(angle), q, qi))
	}
	return append(p, qvm.NamedGate("H", qvm.H(), q))
}
