// Package qvm simulates an n-qubit abstract machine: a dense complex state
// vector and a classical measurement register, driven by a linear sequence
// of gate and measure instructions. Every gate, whatever its arity and
// qubit ordering, is compiled into a single operator on the full
// 2^n-dimensional space before it is applied.
package qvm

import (
	"math/rand"
	"time"
)

// Instruction is one step of a program: either a gate application or a
// measurement. The set is closed; Run matches both variants exhaustively.
type Instruction interface {
	isInstruction()
}

// GateInstruction applies Op to the listed qubits, in the order given.
// Label is display-only and never interpreted.
type GateInstruction struct {
	Op     *Matrix
	Qubits []int
	Label  string
}

// MeasureInstruction samples the state and collapses it.
type MeasureInstruction struct{}

func (GateInstruction) isInstruction()    {}
func (MeasureInstruction) isInstruction() {}

// Program is an ordered instruction sequence, immutable once built.
type Program []Instruction

// Gate builds a gate instruction.
func Gate(op *Matrix, qubits ...int) GateInstruction {
	return GateInstruction{Op: op, Qubits: qubits}
}

// NamedGate builds a gate instruction carrying a display label.
func NamedGate(label string, op *Matrix, qubits ...int) GateInstruction {
	return GateInstruction{Op: op, Qubits: qubits, Label: label}
}

// Measure builds a measure instruction.
func Measure() MeasureInstruction {
	return MeasureInstruction{}
}

// Machine owns a state vector and a classical measurement register. A
// machine belongs to a single caller; nothing in the engine shares or
// synchronizes it.
type Machine struct {
	State               *StateVector
	MeasurementRegister int
	rng                 *rand.Rand
}

// NewMachine returns a machine in the |0...0⟩ state. The random source
// drives measurement sampling; pass a seeded source for reproducible runs,
// or nil for a time-seeded one.
func NewMachine(numQubits int, rng *rand.Rand) *Machine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Machine{
		State: NewStateVector(numQubits),
		rng:   rng,
	}
}

// Run executes the program in order, one linear pass. The first failing
// instruction aborts the run and leaves the machine in whatever state the
// preceding instructions produced; gate application is not transactional.
func (m *Machine) Run(program Program) error {
	for _, inst := range program {
		switch inst := inst.(type) {
		case GateInstruction:
			if err := ApplyGate(m.State, inst.Op, inst.Qubits); err != nil {
				return err
			}
		case MeasureInstruction:
			m.Observe()
		}
	}
	return nil
}

// Observe samples a basis state from the amplitude distribution, collapses
// the state onto it, and records the index in the measurement register.
func (m *Machine) Observe() {
	i := m.sample()
	m.collapse(i)
	m.MeasurementRegister = i
}

// sample draws a basis index from the |amp|² distribution. Summation drift
// can exhaust u before any subtraction goes negative; the last index is
// returned in that case so the scan never falls off the end.
func (m *Machine) sample() int {
	u := m.rng.Float64()
	for i := range m.State.Amplitudes {
		u -= m.State.Probability(i)
		if u < 0 {
			return i
		}
	}
	return len(m.State.Amplitudes) - 1
}

// collapse projects the state onto basis index i.
func (m *Machine) collapse(i int) {
	for j := range m.State.Amplitudes {
		m.State.Amplitudes[j] = 0
	}
	m.State.Amplitudes[i] = 1
}
