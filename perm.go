package qvm

// The permutation engine reduces a gate on arbitrary, possibly reordered
// qubits to the contiguous case handled by Lift. The target qubits are
// relabeled to the position Lift(u, 0, n) expects by conjugating with a
// sequence of adjacent SWAP operators, then the relabeling is undone.

// transposition swaps the two indexed qubits, Low < High.
type transposition struct {
	Low  int
	High int
}

// gatePermutation builds the full qubit relabeling for a gate's qubit list:
// the targets, reversed, followed by every other index in ascending order.
// Entry p is the qubit that ends up at position p.
func gatePermutation(qubits []int, n int) []int {
	perm := make([]int, 0, n)
	for i := len(qubits) - 1; i >= 0; i-- {
		perm = append(perm, qubits[i])
	}
	used := make([]bool, n)
	for _, q := range qubits {
		used[q] = true
	}
	for q := 0; q < n; q++ {
		if !used[q] {
			perm = append(perm, q)
		}
	}
	return perm
}

// permutationToTranspositions decomposes perm into transpositions, visiting
// every nontrivial cycle exactly once. For each position p the chain
// perm[p], perm[perm[p]], ... is followed while it stays below p; a terminal
// value above p yields the transposition (p, value).
func permutationToTranspositions(perm []int) []transposition {
	var swaps []transposition
	for p, v := range perm {
		for v < p {
			v = perm[v]
		}
		if v > p {
			swaps = append(swaps, transposition{Low: p, High: v})
		}
	}
	return swaps
}

// transpositionsToAdjacentSwaps expands each transposition into adjacent
// swap positions: (low, high) becomes the ascending run low..high-2 followed
// by the descending run high-1..low, bubbling the high qubit down to low
// while shifting the intermediates up by one.
func transpositionsToAdjacentSwaps(ts []transposition) []int {
	var swaps []int
	for _, t := range ts {
		if t.High == t.Low+1 {
			swaps = append(swaps, t.Low)
			continue
		}
		for pos := t.Low; pos <= t.High-2; pos++ {
			swaps = append(swaps, pos)
		}
		for pos := t.High - 1; pos >= t.Low; pos-- {
			swaps = append(swaps, pos)
		}
	}
	return swaps
}

// gateOperator builds the full n-qubit operator for u acting on the given
// qubit list: toFrom · Lift(u, 0, n) · fromTo, where the outer factors are
// the adjacent-swap relabeling and its inverse. SWAP is self-inverse, so
// composing the same factors in reverse order inverts the relabeling.
func gateOperator(u *Matrix, qubits []int, n int) (*Matrix, error) {
	positions := transpositionsToAdjacentSwaps(
		permutationToTranspositions(gatePermutation(qubits, n)))

	lifted := Lift(u, 0, n)
	if len(positions) == 0 {
		return lifted, nil
	}

	factors := make([]*Matrix, len(positions))
	for i, pos := range positions {
		factors[i] = Lift(SWAP(), pos, n)
	}

	toFrom := factors[0]
	for _, f := range factors[1:] {
		var err error
		if toFrom, err = Compose(toFrom, f); err != nil {
			return nil, err
		}
	}
	fromTo := factors[len(factors)-1]
	for i := len(factors) - 2; i >= 0; i-- {
		var err error
		if fromTo, err = Compose(fromTo, factors[i]); err != nil {
			return nil, err
		}
	}

	op, err := Compose(lifted, fromTo)
	if err != nil {
		return nil, err
	}
	return Compose(toFrom, op)
}
