package similarity

import (
	"errors"
	"testing"

	"github.com/gilchrisn/cluster-similarity-service/pkg/partition"
)

func TestNormalizedMutualInfo(t *testing.T) {
	t.Run("IdenticalPartitions", func(t *testing.T) {
		p := partition.Partition[int]{1, 1, 2, 2, 3}

		nmi, err := NormalizedMutualInfo(p, p)
		if err != nil {
			t.Fatalf("NMI failed: %v", err)
		}
		if !almostEqual(nmi, 1.0) {
			t.Errorf("Expected 1.0 for identical partitions, got %.6f", nmi)
		}
	})

	t.Run("IndependentPartitions", func(t *testing.T) {
		// Every joint cell holds exactly one node: zero mutual information.
		a := partition.Partition[int]{0, 0, 1, 1}
		b := partition.Partition[int]{0, 1, 0, 1}

		nmi, err := NormalizedMutualInfo(a, b)
		if err != nil {
			t.Fatalf("NMI failed: %v", err)
		}
		if !almostEqual(nmi, 0.0) {
			t.Errorf("Expected 0.0 for independent partitions, got %.6f", nmi)
		}
	})

	t.Run("SingleClusterBothSides", func(t *testing.T) {
		a := partition.Partition[int]{7, 7, 7}
		b := partition.Partition[int]{2, 2, 2}

		nmi, err := NormalizedMutualInfo(a, b)
		if err != nil {
			t.Fatalf("NMI failed: %v", err)
		}
		if !almostEqual(nmi, 1.0) {
			t.Errorf("Expected 1.0 for two single-cluster partitions, got %.6f", nmi)
		}
	})

	t.Run("WithinRange", func(t *testing.T) {
		a := partition.Partition[int]{1, 1, 2, 2, 3, 3}
		b := partition.Partition[int]{1, 2, 2, 3, 3, 3}

		nmi, err := NormalizedMutualInfo(a, b)
		if err != nil {
			t.Fatalf("NMI failed: %v", err)
		}
		if nmi < 0.0 || nmi > 1.0+epsilon {
			t.Errorf("NMI out of range: %.6f", nmi)
		}
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := NormalizedMutualInfo(partition.Partition[int]{1}, partition.Partition[int]{1, 2})
		if err == nil {
			t.Fatal("Expected error for mismatched lengths")
		}
		if !errors.Is(err, partition.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestSizeStats(t *testing.T) {
	t.Run("MixedSizes", func(t *testing.T) {
		p := partition.Partition[int]{1, 1, 1, 2, 2, 3}

		stats := SizeStats(p)
		if stats.Count != 3 {
			t.Errorf("Expected 3 clusters, got %d", stats.Count)
		}
		if !almostEqual(stats.Mean, 2.0) {
			t.Errorf("Expected mean 2.0, got %.6f", stats.Mean)
		}
		if stats.Max != 3 || stats.Min != 1 {
			t.Errorf("Expected max 3 min 1, got max %d min %d", stats.Max, stats.Min)
		}
		if !almostEqual(stats.Std, 1.0) {
			t.Errorf("Expected std 1.0, got %.6f", stats.Std)
		}
	})

	t.Run("SingleCluster", func(t *testing.T) {
		stats := SizeStats(partition.Partition[int]{1, 1, 1})
		if stats.Count != 1 || stats.Std != 0.0 {
			t.Errorf("Unexpected stats for single cluster: %+v", stats)
		}
	})

	t.Run("EmptyPartition", func(t *testing.T) {
		stats := SizeStats(partition.Partition[int]{})
		if stats.Count != 0 {
			t.Errorf("Expected zero value, got %+v", stats)
		}
	})
}
