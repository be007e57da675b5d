package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"qvm"
	"qvm/circuits"
)

// buildProgram returns the named example program and its qubit count.
func buildProgram(name string, n int) (qvm.Program, int, error) {
	switch name {
	case "bell":
		return circuits.Bell(), 2, nil
	case "ghz":
		if n < 2 {
			return nil, 0, fmt.Errorf("ghz needs at least 2 qubits, got %d", n)
		}
		return circuits.GHZ(n), n, nil
	case "qft":
		if n < 1 {
			return nil, 0, fmt.Errorf("qft needs at least 1 qubit, got %d", n)
		}
		qubits := make([]int, n)
		for i := range qubits {
			qubits[i] = i
		}
		return circuits.QFT(qubits), n, nil
	default:
		return nil, 0, fmt.Errorf("unknown circuit %q (want bell, ghz, or qft)", name)
	}
}

func main() {
	circuit := flag.String("circuit", "bell", "circuit to load: bell, ghz, qft")
	qubits := flag.Int("qubits", 3, "qubit count for ghz and qft")
	shots := flag.Int("shots", 0, "run headless with this many shots instead of the TUI")
	seed := flag.Int64("seed", 0, "measurement seed; 0 seeds from the clock")
	flag.Parse()

	program, n, err := buildProgram(*circuit, *qubits)
	if err != nil {
		log.Fatal("bad arguments", "err", err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	if *shots > 0 {
		runShots(*circuit, program, n, *shots, rng)
		return
	}

	p := tea.NewProgram(initialModel(*circuit, program, n, rng), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal("tui error", "err", err)
	}
}

// runShots executes the program repeatedly and prints an outcome histogram.
func runShots(name string, program qvm.Program, n, shots int, rng *rand.Rand) {
	// A shot needs a terminal measurement to produce a register value.
	if len(program) == 0 {
		log.Fatal("empty program")
	}
	if _, ok := program[len(program)-1].(qvm.MeasureInstruction); !ok {
		program = append(append(qvm.Program{}, program...), qvm.Measure())
	}

	counts := make(map[int]int)
	start := time.Now()
	for i := 0; i < shots; i++ {
		m := qvm.NewMachine(n, rng)
		if err := m.Run(program); err != nil {
			log.Fatal("run failed", "shot", i, "err", err)
		}
		counts[m.MeasurementRegister]++
	}
	log.Info("run complete",
		"circuit", name,
		"qubits", n,
		"shots", shots,
		"outcomes", len(counts),
		"elapsed", time.Since(start))

	for i := 0; i < 1<<n; i++ {
		if counts[i] == 0 {
			continue
		}
		fmt.Printf("|%0*b⟩  %6d  %.4f\n", n, i, counts[i], float64(counts[i])/float64(shots))
	}
}
