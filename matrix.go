package qvm

import (
	"errors"
	"fmt"
)

// Complex is the scalar type for all amplitudes and matrix entries.
type Complex = complex128

var (
	// ErrDimensionMismatch reports incompatible operator/state or
	// operator/qubit-list dimensions.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrNonPowerOfTwoDimension reports a state or operator size that is
	// not a power of two.
	ErrNonPowerOfTwoDimension = errors.New("dimension is not a power of two")
)

// Matrix is a dense complex matrix in row-major order. Operators built from
// it are treated as immutable once constructed.
type Matrix struct {
	Rows int
	Cols int
	Data []Complex
}

// NewMatrix returns a zero matrix with the given shape.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]Complex, rows*cols),
	}
}

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) Complex {
	return m.Data[i*m.Cols+j]
}

// Set assigns the entry at row i, column j.
func (m *Matrix) Set(i, j int, v Complex) {
	m.Data[i*m.Cols+j] = v
}

// Identity returns the n-by-n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Compose returns the matrix product a·b.
func Compose(a, b *Matrix) (*Matrix, error) {
	if a.Cols != b.Rows {
		return nil, fmt.Errorf("compose %dx%d by %dx%d: %w",
			a.Rows, a.Cols, b.Rows, b.Cols, ErrDimensionMismatch)
	}
	c := NewMatrix(a.Rows, b.Cols)
	for i := 0; i < a.Rows; i++ {
		for k := 0; k < a.Cols; k++ {
			aik := a.At(i, k)
			if aik == 0 {
				continue
			}
			for j := 0; j < b.Cols; j++ {
				c.Data[i*c.Cols+j] += aik * b.At(k, j)
			}
		}
	}
	return c, nil
}

// Kron returns the Kronecker product a⊗b. For a of shape (m,n) and b of
// shape (p,q) the result has shape (m·p, n·q) with entry
// (i·p+k, j·q+l) = a[i,j]·b[k,l].
func Kron(a, b *Matrix) *Matrix {
	out := NewMatrix(a.Rows*b.Rows, a.Cols*b.Cols)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			aij := a.At(i, j)
			if aij == 0 {
				continue
			}
			for k := 0; k < b.Rows; k++ {
				for l := 0; l < b.Cols; l++ {
					out.Set(i*b.Rows+k, j*b.Cols+l, aij*b.At(k, l))
				}
			}
		}
	}
	return out
}

// KronPower returns the m-fold Kronecker power of u. Powers below one give
// the 1x1 identity. The product accumulates on the right; the qubit index
// mapping depends on this order, so it must not be rearranged.
func KronPower(u *Matrix, m int) *Matrix {
	if m < 1 {
		return Identity(1)
	}
	if m == 1 {
		return u
	}
	return Kron(KronPower(u, m-1), u)
}
