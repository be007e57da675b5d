package qvm

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomMatrix(rng *rand.Rand, rows, cols int) *Matrix {
	m := NewMatrix(rows, cols)
	for i := range m.Data {
		m.Data[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return m
}

func assertMatrixInDelta(t *testing.T, want, got *Matrix, delta float64) {
	t.Helper()
	require.Equal(t, want.Rows, got.Rows)
	require.Equal(t, want.Cols, got.Cols)
	for i := range want.Data {
		assert.InDelta(t, real(want.Data[i]), real(got.Data[i]), delta, "entry %d real", i)
		assert.InDelta(t, imag(want.Data[i]), imag(got.Data[i]), delta, "entry %d imag", i)
	}
}

func TestComposeDimensionMismatch(t *testing.T) {
	_, err := Compose(NewMatrix(2, 3), NewMatrix(2, 2))
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestComposeWithIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := randomMatrix(rng, 4, 4)

	left, err := Compose(Identity(4), a)
	require.NoError(t, err)
	assertMatrixInDelta(t, a, left, 1e-12)

	right, err := Compose(a, Identity(4))
	require.NoError(t, err)
	assertMatrixInDelta(t, a, right, 1e-12)
}

func TestKronEntries(t *testing.T) {
	a := matrixOf(2, 2,
		1, 2,
		3, 4)
	b := matrixOf(2, 2,
		0, 1i,
		1, 0)

	got := Kron(a, b)
	require.Equal(t, 4, got.Rows)
	require.Equal(t, 4, got.Cols)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				for l := 0; l < 2; l++ {
					want := a.At(i, j) * b.At(k, l)
					require.Equal(t, want, got.At(i*2+k, j*2+l))
				}
			}
		}
	}
}

func TestKronRectangularShape(t *testing.T) {
	got := Kron(NewMatrix(2, 3), NewMatrix(4, 5))
	require.Equal(t, 8, got.Rows)
	require.Equal(t, 15, got.Cols)
}

func TestKronPowerBaseCase(t *testing.T) {
	for _, m := range []int{0, -1, -5} {
		got := KronPower(X(), m)
		require.Equal(t, 1, got.Rows)
		require.Equal(t, 1, got.Cols)
		require.Equal(t, Complex(1), got.At(0, 0))
	}
}

func TestKronPowerSingle(t *testing.T) {
	u := H()
	assertMatrixInDelta(t, u, KronPower(u, 1), 0)
}

func TestKronAssociativity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		a := randomMatrix(rng, 2, 2)
		b := randomMatrix(rng, 2, 2)
		c := randomMatrix(rng, 2, 2)
		assertMatrixInDelta(t, Kron(Kron(a, b), c), Kron(a, Kron(b, c)), 1e-9)
	}
}
