package similarity

import (
	"fmt"

	"github.com/gilchrisn/cluster-similarity-service/pkg/partition"
)

// Aggregate folds a match set into a single size-weighted similarity score.
//
// Each matched pair (g, c, s) contributes with weight
//
//	w = size(g)/N_ref + size(c)/N_cand
//
// and the score is the weighted mean Σ(w*s) / Σ(w). A candidate cluster
// matched by several reference clusters is counted once per match; that is
// inherited from the per-row matching policy and intentionally not
// corrected. Because every s lies in [0,1] and every w is non-negative, the
// weighted mean is bounded to [0,1] regardless of such double counting.
//
// An empty match set is a caller error (the mean would be undefined).
func Aggregate[L comparable](matches MatchSet[L], ref, cand partition.Partition[L]) (float64, error) {
	if len(matches) == 0 {
		return 0, fmt.Errorf("aggregate: %w", partition.ValidationError{
			Field:   "matches",
			Message: "match set is empty, weighted mean is undefined",
		})
	}
	if err := partition.CheckAligned(ref, cand); err != nil {
		return 0, fmt.Errorf("aggregate: %w", err)
	}

	refSizes := partition.Sizes(ref)
	candSizes := partition.Sizes(cand)
	nRef := float64(len(ref))
	nCand := float64(len(cand))

	var weightedSum, weightTotal float64
	for _, m := range matches {
		w := float64(refSizes[m.Reference])/nRef + float64(candSizes[m.Candidate])/nCand
		weightedSum += w * m.Similarity
		weightTotal += w
	}

	if weightTotal == 0 {
		// Cannot happen for matches produced from indexed clusters, which
		// are non-empty by construction.
		return 0, fmt.Errorf("aggregate: %w", partition.ValidationError{
			Field:   "matches",
			Message: "total match weight is zero",
		})
	}

	return weightedSum / weightTotal, nil
}
