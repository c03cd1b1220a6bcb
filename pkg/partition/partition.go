// Package partition defines labeled partitions of a fixed node set and the
// grouping operations the similarity pipeline is built on.
//
// A Partition assigns every node (by position) to exactly one cluster label.
// Labels are arbitrary comparable values; they do not need to be contiguous
// or start at any particular value. Node indices are 0-based throughout.
package partition

// Partition is an ordered sequence of cluster labels, one per node.
// Two partitions are comparable only if they have the same length and the
// same implicit node ordering.
type Partition[L comparable] []L

// Index groups node positions by label. Every unique label maps to the
// (ascending) positions holding it; a label used by a single node yields a
// singleton group. An empty partition is a caller error.
func Index[L comparable](p Partition[L]) (map[L][]int, error) {
	if len(p) == 0 {
		return nil, ValidationError{
			Field:   "partition",
			Message: "partition must contain at least one node",
		}
	}

	clusters := make(map[L][]int)
	for i, label := range p {
		clusters[label] = append(clusters[label], i)
	}

	return clusters, nil
}

// Labels returns the unique labels of p in first-seen order. This is the
// stable enumeration order used for similarity matrix rows and columns.
func Labels[L comparable](p Partition[L]) []L {
	seen := make(map[L]bool, len(p))
	var labels []L
	for _, label := range p {
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	return labels
}

// Sizes counts the number of nodes carrying each label.
func Sizes[L comparable](p Partition[L]) map[L]int {
	sizes := make(map[L]int)
	for _, label := range p {
		sizes[label]++
	}
	return sizes
}

// CheckAligned verifies that two partitions cover the same node universe:
// same length, positions comparable 1:1.
func CheckAligned[L comparable](ref, cand Partition[L]) error {
	if len(ref) == 0 || len(cand) == 0 {
		return ValidationError{
			Field:   "partition",
			Message: "partition must contain at least one node",
		}
	}
	if len(ref) != len(cand) {
		return ValidationError{
			Field:   "partition",
			Message: "partitions cover different node universes",
			Value:   [2]int{len(ref), len(cand)},
		}
	}
	return nil
}
