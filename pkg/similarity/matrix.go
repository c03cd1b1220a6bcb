// Package similarity scores the agreement between two labeled partitions of
// the same node set: a pairwise Jaccard matrix over their clusters, a
// per-reference-cluster best match, and a size-weighted global score.
package similarity

import (
	"encoding/json"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/gilchrisn/cluster-similarity-service/pkg/partition"
)

// Matrix is the cross-similarity table between the clusters of a reference
// partition (rows) and a candidate partition (columns). Rows and columns are
// enumerated in first-seen label order of their respective partitions; that
// order is stable and drives the matcher's tie-break rule.
type Matrix[L comparable] struct {
	rowLabels []L
	colLabels []L
	rowNames  []string
	colNames  []string
	data      *mat.Dense
}

// BuildMatrix computes the full Jaccard similarity table between two
// partitions over the same node universe. refName and candName label the
// rows and columns for downstream traceability ("GT.4", "louvain.2", ...).
//
// Cluster node sets are indexed once per partition; intersections are
// counted in a single pass over the node positions, so the computation is
// O(N + R*C) for N nodes and R x C clusters.
func BuildMatrix[L comparable](refName string, ref partition.Partition[L], candName string, cand partition.Partition[L]) (*Matrix[L], error) {
	if err := partition.CheckAligned(ref, cand); err != nil {
		return nil, fmt.Errorf("similarity matrix: %w", err)
	}

	refClusters, err := partition.Index(ref)
	if err != nil {
		return nil, fmt.Errorf("similarity matrix: %w", err)
	}
	candClusters, err := partition.Index(cand)
	if err != nil {
		return nil, fmt.Errorf("similarity matrix: %w", err)
	}

	rowLabels := partition.Labels(ref)
	colLabels := partition.Labels(cand)

	rowOf := make(map[L]int, len(rowLabels))
	for i, l := range rowLabels {
		rowOf[l] = i
	}
	colOf := make(map[L]int, len(colLabels))
	for j, l := range colLabels {
		colOf[l] = j
	}

	// Contingency counts: intersection[i][j] = |cluster_i(ref) ∩ cluster_j(cand)|.
	intersection := make([][]int, len(rowLabels))
	for i := range intersection {
		intersection[i] = make([]int, len(colLabels))
	}
	for pos := range ref {
		intersection[rowOf[ref[pos]]][colOf[cand[pos]]]++
	}

	data := mat.NewDense(len(rowLabels), len(colLabels), nil)
	for i, rl := range rowLabels {
		for j, cl := range colLabels {
			inter := intersection[i][j]
			union := len(refClusters[rl]) + len(candClusters[cl]) - inter
			if union == 0 {
				// Unreachable for indexed clusters (all non-empty); keep a
				// defined value instead of a division fault.
				data.Set(i, j, 0)
				continue
			}
			data.Set(i, j, float64(inter)/float64(union))
		}
	}

	return &Matrix[L]{
		rowLabels: rowLabels,
		colLabels: colLabels,
		rowNames:  qualifyNames(refName, rowLabels),
		colNames:  qualifyNames(candName, colLabels),
		data:      data,
	}, nil
}

func qualifyNames[L comparable](name string, labels []L) []string {
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = fmt.Sprintf("%s.%v", name, l)
	}
	return names
}

// Rows returns the number of reference clusters.
func (m *Matrix[L]) Rows() int {
	if m == nil || m.data == nil {
		return 0
	}
	r, _ := m.data.Dims()
	return r
}

// Cols returns the number of candidate clusters.
func (m *Matrix[L]) Cols() int {
	if m == nil || m.data == nil {
		return 0
	}
	_, c := m.data.Dims()
	return c
}

// Value returns the Jaccard similarity between reference cluster i and
// candidate cluster j.
func (m *Matrix[L]) Value(i, j int) float64 { return m.data.At(i, j) }

// RowLabel returns the original reference label of row i.
func (m *Matrix[L]) RowLabel(i int) L { return m.rowLabels[i] }

// ColLabel returns the original candidate label of column j.
func (m *Matrix[L]) ColLabel(j int) L { return m.colLabels[j] }

// RowName returns the qualified row identifier, e.g. "GT.4".
func (m *Matrix[L]) RowName(i int) string { return m.rowNames[i] }

// ColName returns the qualified column identifier, e.g. "louvain.2".
func (m *Matrix[L]) ColName(j int) string { return m.colNames[j] }

// Dense exposes the underlying gonum matrix for numeric consumers.
func (m *Matrix[L]) Dense() *mat.Dense { return m.data }

// Format renders the matrix as a labeled text table with the given number of
// decimal places.
func (m *Matrix[L]) Format(precision int) string {
	width := precision + 4
	for _, name := range m.colNames {
		if len(name)+2 > width {
			width = len(name) + 2
		}
	}
	nameWidth := 0
	for _, name := range m.rowNames {
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s", nameWidth, "")
	for _, name := range m.colNames {
		fmt.Fprintf(&b, "%*s", width, name)
	}
	b.WriteByte('\n')

	rows, cols := m.data.Dims()
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&b, "%-*s", nameWidth, m.rowNames[i])
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&b, "%*.*f", width, precision, m.data.At(i, j))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the matrix with 4 decimal places.
func (m *Matrix[L]) String() string { return m.Format(4) }

// MarshalJSON emits the matrix as named rows/columns plus the value grid.
func (m *Matrix[L]) MarshalJSON() ([]byte, error) {
	rows, cols := m.data.Dims()
	values := make([][]float64, rows)
	for i := range values {
		values[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			values[i][j] = m.data.At(i, j)
		}
	}
	return json.Marshal(struct {
		Rows   []string    `json:"rows"`
		Cols   []string    `json:"cols"`
		Values [][]float64 `json:"values"`
	}{m.rowNames, m.colNames, values})
}
