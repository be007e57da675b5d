package qvm

import (
	"math"
	"math/cmplx"
)

// Standard gate constructors. Each call returns a fresh matrix so callers
// can treat operators as immutable without sharing hazards. Unitarity of
// caller-supplied matrices is never validated.

func matrixOf(rows, cols int, data ...Complex) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Data: data}
}

// I is the single-qubit identity gate.
func I() *Matrix {
	return Identity(2)
}

// X is the Pauli-X (NOT) gate.
func X() *Matrix {
	return matrixOf(2, 2,
		0, 1,
		1, 0)
}

// Y is the Pauli-Y gate.
func Y() *Matrix {
	return matrixOf(2, 2,
		0, -1i,
		1i, 0)
}

// Z is the Pauli-Z gate.
func Z() *Matrix {
	return matrixOf(2, 2,
		1, 0,
		0, -1)
}

// H is the Hadamard gate.
func H() *Matrix {
	f := complex(1/math.Sqrt2, 0)
	return matrixOf(2, 2,
		f, f,
		f, -f)
}

// S is the phase gate, a quarter turn about Z.
func S() *Matrix {
	return matrixOf(2, 2,
		1, 0,
		0, 1i)
}

// T is the π/8 gate.
func T() *Matrix {
	return matrixOf(2, 2,
		1, 0,
		0, cmplx.Exp(complex(0, math.Pi/4)))
}

// RX returns a rotation about the X axis by theta.
func RX(theta float64) *Matrix {
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	return matrixOf(2, 2,
		c, js,
		js, c)
}

// RY returns a rotation about the Y axis by theta.
func RY(theta float64) *Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return matrixOf(2, 2,
		c, -s,
		s, c)
}

// RZ returns a rotation about the Z axis by theta.
func RZ(theta float64) *Matrix {
	p := cmplx.Exp(complex(0, theta/2))
	return matrixOf(2, 2,
		cmplx.Conj(p), 0,
		0, p)
}

// CNOT is the controlled-NOT gate; the first qubit in the gate's qubit list
// is the control.
func CNOT() *Matrix {
	return matrixOf(4, 4,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0)
}

// CZ is the controlled-Z gate.
func CZ() *Matrix {
	return matrixOf(4, 4,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, -1)
}

// SWAP exchanges two qubits.
func SWAP() *Matrix {
	return matrixOf(4, 4,
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1)
}

// CPhase returns a controlled phase gate with angle theta.
func CPhase(theta float64) *Matrix {
	return matrixOf(4, 4,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, cmplx.Exp(complex(0, theta)))
}

// Toffoli is the doubly-controlled NOT gate.
func Toffoli() *Matrix {
	m := Identity(8)
	m.Set(6, 6, 0)
	m.Set(7, 7, 0)
	m.Set(6, 7, 1)
	m.Set(7, 6, 1)
	return m
}
