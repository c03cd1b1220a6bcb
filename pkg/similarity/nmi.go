package similarity

import (
	"fmt"
	"math"

	"github.com/gilchrisn/cluster-similarity-service/pkg/partition"
)

// NormalizedMutualInfo computes the Normalized Mutual Information between
// two partitions of the same node universe, normalized by the average
// cluster entropy. The result lies in [0,1]; two single-cluster partitions
// (zero entropy on both sides) score 1.
func NormalizedMutualInfo[L comparable](a, b partition.Partition[L]) (float64, error) {
	if err := partition.CheckAligned(a, b); err != nil {
		return 0, fmt.Errorf("nmi: %w", err)
	}

	n := float64(len(a))

	type pair struct{ a, b L }
	joint := make(map[pair]int)
	for i := range a {
		joint[pair{a[i], b[i]}]++
	}

	countsA := partition.Sizes(a)
	countsB := partition.Sizes(b)

	mi := 0.0
	for p, nij := range joint {
		ni := countsA[p.a]
		nj := countsB[p.b]
		mi += float64(nij) / n * math.Log2(float64(nij)*n/float64(ni*nj))
	}

	avgEntropy := (entropy(countsA, n) + entropy(countsB, n)) / 2
	if avgEntropy == 0 {
		// Both partitions are a single cluster: perfect agreement.
		return 1.0, nil
	}

	return mi / avgEntropy, nil
}

func entropy[L comparable](counts map[L]int, n float64) float64 {
	h := 0.0
	for _, count := range counts {
		p := float64(count) / n
		h -= p * math.Log2(p)
	}
	return h
}
