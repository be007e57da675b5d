package main

import (
	"math/rand"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"qvm"
)

// Model is the TUI state: a program, the machine it drives, and how far
// execution has advanced.
type Model struct {
	name      string
	program   qvm.Program
	machine   *qvm.Machine
	numQubits int
	rng       *rand.Rand

	step     int // instructions executed so far
	measured bool
	err      error

	width    int
	height   int
	ampView  viewport.Model
	ready    bool
}

func initialModel(name string, program qvm.Program, numQubits int, rng *rand.Rand) Model {
	return Model{
		name:      name,
		program:   program,
		machine:   qvm.NewMachine(numQubits, rng),
		numQubits: numQubits,
		rng:       rng,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// advance executes the next instruction, if any.
func (m *Model) advance() {
	if m.err != nil || m.step >= len(m.program) {
		return
	}
	inst := m.program[m.step]
	switch inst := inst.(type) {
	case qvm.GateInstruction:
		m.err = qvm.ApplyGate(m.machine.State, inst.Op, inst.Qubits)
	case qvm.MeasureInstruction:
		m.machine.Observe()
		m.measured = true
	}
	if m.err == nil {
		m.step++
	}
}

// reset rewinds to a fresh machine; the rng keeps its stream so repeated
// measured runs differ.
func (m *Model) reset() {
	m.machine = qvm.NewMachine(m.numQubits, m.rng)
	m.step = 0
	m.measured = false
	m.err = nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := max(msg.Height-10, 4)
		if !m.ready {
			m.ampView = viewport.New(ampPanelW, vpHeight)
			m.ready = true
		} else {
			m.ampView.Height = vpHeight
		}
		m.ampView.SetContent(m.renderAmplitudes())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "right", "enter", "n":
			m.advance()
		case "a":
			for m.step < len(m.program) && m.err == nil {
				m.advance()
			}
		case "m":
			m.machine.Observe()
			m.measured = true
		case "r":
			m.reset()
		case "up", "k":
			m.ampView.LineUp(1)
		case "down", "j":
			m.ampView.LineDown(1)
		}
		if m.ready {
			m.ampView.SetContent(m.renderAmplitudes())
		}
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.ampView, cmd = m.ampView.Update(msg)
		return m, cmd
	}
	return m, nil
}
