package gf2

import "github.com/katalvlaran/mt19937cracker/bitmatrix"

// Eliminate reduces m to row-echelon form in place via Gauss–Jordan
// elimination, permuting obs alongside every row swap and XOR so it stays
// the right-hand side of M·x = obs throughout. For each column it finds the
// first row at or below the current pivot row with a 1 in that column,
// swaps it into place, records the pivot column, then clears that column
// out of every other row — both above and below the pivot row, which is
// what makes this Gauss-Jordan rather than plain forward elimination and is
// what lets BackSubstitute do O(1) work per resolved bit beyond the pivot's
// own row.
//
// Returns pivotCol (pivotCol[i] is the column of row i's pivot for i <
// rank, -1 beyond rank) and rank, the number of pivots found.
// Complexity: O(n^3/W) word operations in the worst case.
func Eliminate(m *bitmatrix.Matrix, obs []byte) (pivotCol []int, rank int) {
	n := m.N()
	pivotCol = make([]int, n)
	for i := range pivotCol {
		pivotCol[i] = -1
	}

	currentRow := 0
	for col := 0; col < n; col++ {
		pivotRow := -1
		for row := currentRow; row < n; row++ {
			if m.Get(row, col) == 1 {
				pivotRow = row
				break
			}
		}
		if pivotRow == -1 {
			continue
		}

		m.SwapRow(currentRow, pivotRow)
		obs[currentRow], obs[pivotRow] = obs[pivotRow], obs[currentRow]
		pivotCol[currentRow] = col

		for row := 0; row < n; row++ {
			if row != currentRow && m.Get(row, col) == 1 {
				m.XorRow(row, currentRow)
				obs[row] ^= obs[currentRow]
			}
		}
		currentRow++
	}

	return pivotCol, currentRow
}

// CheckConsistency validates an eliminated system's rank and residual rows.
// Every row at or beyond rank must carry a zero observation (otherwise the
// observations cannot come from any MT19937 state: ErrInconsistent); and
// rank must equal n-31, the dimension of the MT19937 output map's
// observable subspace (ErrUnderdetermined otherwise — not enough
// independent observations to pin down every observable bit).
func CheckConsistency(obs []byte, rank, n int) error {
	for row := rank; row < n; row++ {
		if obs[row] != 0 {
			return ErrInconsistent
		}
	}
	if rank != n-31 {
		return ErrUnderdetermined
	}

	return nil
}

// BackSubstitute resolves the solved vector x from an eliminated system.
// Because Eliminate already produces full row-echelon form (every pivot
// column cleared out of every other row), each pivot row's only remaining
// unknowns are in columns past its own pivot; x is folded in from the
// highest-indexed pivot down to the lowest. Non-pivot (free) columns are
// never assigned and stay 0 — the canonical representative of the 31-
// dimensional kernel described in gf2.ErrUnderdetermined's sibling success
// path.
//
// x is returned packed LSB-first the same way bitmatrix rows are: bit j
// lives in word j/64, bit j%64.
func BackSubstitute(m *bitmatrix.Matrix, obs []byte, pivotCol []int, rank, n int) []uint64 {
	words := (n + 63) / 64
	x := make([]uint64, words)

	getX := func(j int) byte {
		return byte((x[j/64] >> uint(j%64)) & 1)
	}
	setX := func(j int, bit byte) {
		if bit != 0 {
			x[j/64] |= 1 << uint(j%64)
		}
	}

	for i := rank - 1; i >= 0; i-- {
		col := pivotCol[i]
		sum := obs[i]
		for j := col + 1; j < n; j++ {
			if m.Get(i, j) == 1 {
				sum ^= getX(j)
			}
		}
		setX(col, sum)
	}

	return x
}
