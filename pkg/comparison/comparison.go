// Package comparison runs the end-to-end scoring pipeline between a
// reference clustering (typically ground truth) and a candidate clustering
// produced by a community-detection algorithm: similarity matrix, cluster
// matching, weighted global score, plus summary statistics.
package comparison

import (
	"fmt"
	"strings"
	"time"

	"github.com/gilchrisn/cluster-similarity-service/pkg/partition"
	"github.com/gilchrisn/cluster-similarity-service/pkg/similarity"
)

// Result contains everything one comparison produces.
type Result[L comparable] struct {
	ReferenceName string `json:"reference_name"`
	CandidateName string `json:"candidate_name"`
	NumNodes      int    `json:"num_nodes"`
	Strategy      string `json:"strategy"`

	Matrix      *similarity.Matrix[L]  `json:"matrix"`
	Matches     similarity.MatchSet[L] `json:"matches"`
	GlobalScore float64                `json:"global_score"`
	NMI         float64                `json:"nmi,omitempty"`

	ReferenceStats similarity.ClusterStats `json:"reference_stats"`
	CandidateStats similarity.ClusterStats `json:"candidate_stats"`

	Runtime time.Duration `json:"runtime"`
}

// Compare scores the candidate partition against the reference partition.
// The matching strategy and optional NMI computation are taken from config.
func Compare[L comparable](config *Config, refName string, ref partition.Partition[L], candName string, cand partition.Partition[L]) (*Result[L], error) {
	startTime := time.Now()
	logger := config.CreateLogger()

	if err := partition.CheckAligned(ref, cand); err != nil {
		return nil, fmt.Errorf("comparison: %w", err)
	}

	logger.Info().
		Str("reference", refName).
		Str("candidate", candName).
		Int("nodes", len(ref)).
		Msg("building similarity matrix")

	matrix, err := similarity.BuildMatrix(refName, ref, candName, cand)
	if err != nil {
		return nil, fmt.Errorf("comparison: %w", err)
	}

	logger.Debug().
		Int("rows", matrix.Rows()).
		Int("cols", matrix.Cols()).
		Msg("similarity matrix ready")

	var matches similarity.MatchSet[L]
	strategy := config.MatchingStrategy()
	switch strategy {
	case StrategyGreedy:
		matches, err = similarity.MatchGreedy(matrix)
	case StrategyOptimal:
		matches, err = similarity.MatchOptimal(matrix)
	default:
		return nil, fmt.Errorf("comparison: %w", partition.ValidationError{
			Field:   "matching.strategy",
			Message: "unknown matching strategy",
			Value:   strategy,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("comparison: %w", err)
	}

	score, err := similarity.Aggregate(matches, ref, cand)
	if err != nil {
		return nil, fmt.Errorf("comparison: %w", err)
	}

	result := &Result[L]{
		ReferenceName:  refName,
		CandidateName:  candName,
		NumNodes:       len(ref),
		Strategy:       strategy,
		Matrix:         matrix,
		Matches:        matches,
		GlobalScore:    score,
		ReferenceStats: similarity.SizeStats(ref),
		CandidateStats: similarity.SizeStats(cand),
	}

	if config.ComputeNMI() {
		nmi, err := similarity.NormalizedMutualInfo(ref, cand)
		if err != nil {
			return nil, fmt.Errorf("comparison: %w", err)
		}
		result.NMI = nmi
	}

	result.Runtime = time.Since(startTime)

	logger.Info().
		Float64("global_score", result.GlobalScore).
		Str("strategy", strategy).
		Dur("runtime", result.Runtime).
		Msg("comparison completed")

	return result, nil
}

// VerifyResult performs sanity checks on a comparison result.
func VerifyResult[L comparable](result *Result[L]) error {
	if result == nil {
		return fmt.Errorf("result is nil")
	}

	if result.GlobalScore < 0.0 || result.GlobalScore > 1.0 {
		return fmt.Errorf("global score out of range: %.6f (should be between 0 and 1)", result.GlobalScore)
	}

	if result.Matrix == nil || result.Matrix.Rows() == 0 || result.Matrix.Cols() == 0 {
		return fmt.Errorf("similarity matrix is empty")
	}

	for i := 0; i < result.Matrix.Rows(); i++ {
		for j := 0; j < result.Matrix.Cols(); j++ {
			if v := result.Matrix.Value(i, j); v < 0.0 || v > 1.0 {
				return fmt.Errorf("similarity value out of range at (%d,%d): %.6f", i, j, v)
			}
		}
	}

	if result.Strategy == StrategyGreedy && len(result.Matches) != result.Matrix.Rows() {
		return fmt.Errorf("expected one match per reference cluster, got %d matches for %d clusters",
			len(result.Matches), result.Matrix.Rows())
	}

	if len(result.Matches) == 0 {
		return fmt.Errorf("no cluster matches found")
	}

	return nil
}

// Report renders the result as a human-readable text report: the labeled
// similarity matrix, the selected matches and the global score.
func (r *Result[L]) Report(precision int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Comparison: %s vs %s (%d nodes, %s matching)\n",
		r.ReferenceName, r.CandidateName, r.NumNodes, r.Strategy)
	fmt.Fprintf(&b, "Clusters: %s=%d, %s=%d\n\n",
		r.ReferenceName, r.ReferenceStats.Count, r.CandidateName, r.CandidateStats.Count)

	b.WriteString("Similarity matrix:\n")
	b.WriteString(r.Matrix.Format(precision))
	b.WriteByte('\n')

	b.WriteString("Best matches:\n")
	for _, m := range r.Matches {
		fmt.Fprintf(&b, "  %s.%v -> %s.%v  (%.*f)\n",
			r.ReferenceName, m.Reference, r.CandidateName, m.Candidate, precision, m.Similarity)
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "Weighted global score: %.*f\n", precision, r.GlobalScore)
	if r.NMI != 0 {
		fmt.Fprintf(&b, "NMI:                   %.*f\n", precision, r.NMI)
	}

	return b.String()
}
