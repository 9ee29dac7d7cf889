// Package score derives attribute weights from declarative linear equation
// systems and totals match sets into comparable scores. The equations encode
// relative importance (a hash match alone must outscore any combination of
// weaker signals); re-solving the whole system keeps the ordering consistent
// when attributes are added.
package score

import (
	"fmt"
	"math"

	"github.com/subscout/subscout/internal/match"
)

// WeightMap maps every attribute of one media kind to its solved weight.
type WeightMap map[match.Attribute]float64

// ConfigurationError reports a malformed or unsolvable equation system.
// This is a fatal condition, never expected with the shipped equation sets.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "score configuration error: " + e.Reason
}

const solveEpsilon = 1e-9

// Solve resolves a system of linear equalities to a unique weight per
// attribute appearing in it. It returns a ConfigurationError when the system
// is under-determined (free attributes remain) or inconsistent
// (over-determined with contradicting constraints).
func Solve(equations []Equation) (WeightMap, error) {
	if len(equations) == 0 {
		return nil, &ConfigurationError{Reason: "empty equation system"}
	}

	// Collect attributes in order of first appearance for deterministic
	// elimination.
	index := make(map[match.Attribute]int)
	var symbols []match.Attribute
	sym := func(a match.Attribute) int {
		if i, ok := index[a]; ok {
			return i
		}
		index[a] = len(symbols)
		symbols = append(symbols, a)
		return len(symbols) - 1
	}
	for _, e := range equations {
		sym(e.lhs)
		for _, tm := range e.rhs {
			sym(tm.attr)
		}
	}

	n := len(symbols)
	m := len(equations)

	// Augmented matrix: lhs - Σ rhs = constant.
	rows := make([][]float64, m)
	for i, e := range equations {
		row := make([]float64, n+1)
		row[index[e.lhs]] += 1
		for _, tm := range e.rhs {
			row[index[tm.attr]] -= tm.coef
		}
		row[n] = e.constant
		rows[i] = row
	}

	// Gaussian elimination with partial pivoting.
	pivotRow := 0
	pivotCols := make([]int, 0, n)
	for col := 0; col < n && pivotRow < m; col++ {
		best := pivotRow
		for r := pivotRow + 1; r < m; r++ {
			if math.Abs(rows[r][col]) > math.Abs(rows[best][col]) {
				best = r
			}
		}
		if math.Abs(rows[best][col]) < solveEpsilon {
			continue
		}
		rows[pivotRow], rows[best] = rows[best], rows[pivotRow]
		pivot := rows[pivotRow][col]
		for r := pivotRow + 1; r < m; r++ {
			factor := rows[r][col] / pivot
			if factor == 0 {
				continue
			}
			for c := col; c <= n; c++ {
				rows[r][c] -= factor * rows[pivotRow][c]
			}
		}
		pivotCols = append(pivotCols, col)
		pivotRow++
	}

	if len(pivotCols) < n {
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("under-determined system: %d attributes, rank %d", n, len(pivotCols)),
		}
	}
	// Rows below the pivots must be all-zero, or the constraints contradict.
	for r := pivotRow; r < m; r++ {
		if math.Abs(rows[r][n]) > solveEpsilon {
			return nil, &ConfigurationError{Reason: "inconsistent constraints in equation system"}
		}
	}

	// Back substitution.
	solution := make([]float64, n)
	for i := len(pivotCols) - 1; i >= 0; i-- {
		col := pivotCols[i]
		sum := rows[i][n]
		for c := col + 1; c < n; c++ {
			sum -= rows[i][c] * solution[c]
		}
		solution[col] = sum / rows[i][col]
	}

	weights := make(WeightMap, n)
	for a, i := range index {
		weights[a] = solution[i]
	}
	return weights, nil
}
