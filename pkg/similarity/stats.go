package similarity

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/gilchrisn/cluster-similarity-service/pkg/partition"
)

// ClusterStats summarizes the cluster-size distribution of one partition.
type ClusterStats struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Max   int     `json:"max"`
	Min   int     `json:"min"`
	Std   float64 `json:"std"` // sample standard deviation
}

// SizeStats computes cluster-size statistics for a partition. An empty
// partition yields the zero value.
func SizeStats[L comparable](p partition.Partition[L]) ClusterStats {
	sizes := partition.Sizes(p)
	if len(sizes) == 0 {
		return ClusterStats{}
	}

	values := make([]float64, 0, len(sizes))
	for _, size := range sizes {
		values = append(values, float64(size))
	}

	std := 0.0
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}

	return ClusterStats{
		Count: len(values),
		Mean:  stat.Mean(values, nil),
		Max:   int(floats.Max(values)),
		Min:   int(floats.Min(values)),
		Std:   std,
	}
}
