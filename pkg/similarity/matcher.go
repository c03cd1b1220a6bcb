package similarity

import (
	"fmt"
	"math"

	"github.com/gilchrisn/cluster-similarity-service/pkg/partition"
)

// Match pairs one reference cluster with its selected candidate cluster.
type Match[L comparable] struct {
	Reference  L       `json:"reference"`
	Candidate  L       `json:"candidate"`
	Similarity float64 `json:"similarity"`
}

// MatchSet holds the selected candidate for each reference cluster, in
// matrix row order.
type MatchSet[L comparable] []Match[L]

// MatchGreedy selects, for every reference cluster, the candidate cluster
// with the highest similarity in its row. Ties go to the first column
// achieving the maximum, in the matrix's column order.
//
// This is a per-row greedy policy, not a one-to-one assignment: two
// reference clusters may both match the same candidate cluster. That is the
// documented default behavior; see MatchOptimal for the opt-in one-to-one
// variant.
func MatchGreedy[L comparable](m *Matrix[L]) (MatchSet[L], error) {
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, fmt.Errorf("greedy match: %w", partition.ValidationError{
			Field:   "matrix",
			Message: "similarity matrix has no clusters to match",
		})
	}

	matches := make(MatchSet[L], 0, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		best := 0
		for j := 1; j < m.Cols(); j++ {
			if m.Value(i, j) > m.Value(i, best) {
				best = j
			}
		}
		matches = append(matches, Match[L]{
			Reference:  m.RowLabel(i),
			Candidate:  m.ColLabel(best),
			Similarity: m.Value(i, best),
		})
	}
	return matches, nil
}

// MatchOptimal selects a one-to-one assignment of reference clusters to
// candidate clusters maximizing the total similarity (Hungarian algorithm).
// When there are more reference clusters than candidate clusters, the
// leftover reference clusters receive no match and are omitted from the
// result. This variant is opt-in; MatchGreedy is the default policy.
func MatchOptimal[L comparable](m *Matrix[L]) (MatchSet[L], error) {
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, fmt.Errorf("optimal match: %w", partition.ValidationError{
			Field:   "matrix",
			Message: "similarity matrix has no clusters to match",
		})
	}

	rows, cols := m.Rows(), m.Cols()
	n := rows
	if cols > n {
		n = cols
	}

	// Assignment solvers minimize; convert similarity to cost and pad the
	// rectangular matrix to a square with zero-similarity dummies.
	maxVal := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := m.Value(i, j); v > maxVal {
				maxVal = v
			}
		}
	}
	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, n)
		for j := range cost[i] {
			if i < rows && j < cols {
				cost[i][j] = maxVal - m.Value(i, j)
			} else {
				cost[i][j] = maxVal
			}
		}
	}

	rowToCol := solveAssignment(cost)

	matches := make(MatchSet[L], 0, rows)
	for i := 0; i < rows; i++ {
		j := rowToCol[i]
		if j >= cols {
			continue // assigned to a padding column, no real candidate left
		}
		matches = append(matches, Match[L]{
			Reference:  m.RowLabel(i),
			Candidate:  m.ColLabel(j),
			Similarity: m.Value(i, j),
		})
	}
	return matches, nil
}

// solveAssignment solves the square minimum-cost assignment problem with the
// O(n^3) Hungarian algorithm (potentials formulation). Returns the assigned
// column for each row.
func solveAssignment(cost [][]float64) []int {
	n := len(cost)
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1)   // p[j] = row currently assigned to column j (1-based)
	way := make([]int, n+1) // predecessor column on the augmenting path

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}

		for {
			used[j0] = true
			i0, j1 := p[j0], 0
			delta := math.Inf(1)
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	rowToCol := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] > 0 {
			rowToCol[p[j]-1] = j - 1
		}
	}
	return rowToCol
}
