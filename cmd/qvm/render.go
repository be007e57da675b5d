package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"qvm"
)

// instructionLabel returns a short display name for an instruction.
func instructionLabel(inst qvm.Instruction) string {
	switch inst := inst.(type) {
	case qvm.GateInstruction:
		name := inst.Label
		if name == "" {
			name = fmt.Sprintf("U(%dq)", len(inst.Qubits))
		}
		qs := make([]string, len(inst.Qubits))
		for i, q := range inst.Qubits {
			qs[i] = fmt.Sprintf("q%d", q)
		}
		return name + " " + strings.Join(qs, ",")
	case qvm.MeasureInstruction:
		return "MEASURE"
	}
	return "?"
}

// renderProgram lists the instructions, highlighting the next one to run.
func (m Model) renderProgram() string {
	var sb strings.Builder
	for i, inst := range m.program {
		label := instructionLabel(inst)
		switch {
		case i < m.step:
			sb.WriteString(doneInstStyle.Render("  ✓ " + label))
		case i == m.step:
			sb.WriteString(currentInstStyle.Render("  ▸ " + label))
		default:
			sb.WriteString("    " + label)
		}
		sb.WriteString("\n")
	}
	if len(m.program) == 0 {
		sb.WriteString("  (empty program)\n")
	}
	return sb.String()
}

// renderAmplitudes shows every basis amplitude with probability and phase.
func (m Model) renderAmplitudes() string {
	var sb strings.Builder
	s := m.machine.State
	for i := range s.Amplitudes {
		prob := s.Probability(i)
		bar := strings.Repeat("█", int(math.Round(prob*float64(barW))))
		phase := ""
		if prob > 1e-10 && math.Abs(s.Phase(i)) > 1e-10 {
			phase = fmt.Sprintf(" ∠%+.2f", s.Phase(i))
		}
		fmt.Fprintf(&sb, "|%0*b⟩ %.4f%s %s\n",
			m.numQubits, i, prob, phase, barStyle.Render(bar))
	}
	return sb.String()
}

// renderQubits shows per-qubit marginal probabilities.
func (m Model) renderQubits() string {
	var sb strings.Builder
	for q, p := range m.machine.State.GetQubitProbabilities() {
		fmt.Fprintf(&sb, "q%d  P(0)=%.3f  P(1)=%.3f\n", q, p.Prob0, p.Prob1)
	}
	if m.measured {
		fmt.Fprintf(&sb, "register = |%0*b⟩ (%d)\n",
			m.numQubits, m.machine.MeasurementRegister, m.machine.MeasurementRegister)
	}
	return sb.String()
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	title := titleStyle.Render(fmt.Sprintf(" qvm — %s (%d qubits) ", m.name, m.numQubits))

	left := programStyle.Render(
		panelTitleStyle.Render("program") + "\n" + m.renderProgram())
	right := stateStyle.Render(
		panelTitleStyle.Render("amplitudes") + "\n" + m.ampView.View())
	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	bottom := qubitStyle.Render(m.renderQubits())

	status := helpStyle.Render("space/→ step · a run all · m measure · r reset · ↑/↓ scroll · q quit")
	if m.err != nil {
		status = errorStyle.Render("error: "+m.err.Error()) + "\n" + status
	} else if m.step == len(m.program) && len(m.program) > 0 {
		status = doneInstStyle.Render("program complete") + "\n" + status
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, panels, bottom, status)
}
