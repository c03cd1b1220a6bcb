package partition

import (
	"errors"
	"reflect"
	"testing"
)

func TestIndex(t *testing.T) {
	t.Run("GroupsPositionsByLabel", func(t *testing.T) {
		p := Partition[int]{1, 1, 2, 2}

		clusters, err := Index(p)
		if err != nil {
			t.Fatalf("Index failed: %v", err)
		}

		if len(clusters) != 2 {
			t.Errorf("Expected 2 clusters, got %d", len(clusters))
		}
		if !reflect.DeepEqual(clusters[1], []int{0, 1}) {
			t.Errorf("Cluster 1: expected [0 1], got %v", clusters[1])
		}
		if !reflect.DeepEqual(clusters[2], []int{2, 3}) {
			t.Errorf("Cluster 2: expected [2 3], got %v", clusters[2])
		}
	})

	t.Run("SingletonClusterIsValid", func(t *testing.T) {
		p := Partition[int]{7, 7, 7, 42}

		clusters, err := Index(p)
		if err != nil {
			t.Fatalf("Index failed: %v", err)
		}

		if !reflect.DeepEqual(clusters[42], []int{3}) {
			t.Errorf("Singleton cluster: expected [3], got %v", clusters[42])
		}
	})

	t.Run("NonContiguousLabels", func(t *testing.T) {
		p := Partition[int]{100, -5, 100, -5}

		clusters, err := Index(p)
		if err != nil {
			t.Fatalf("Index failed: %v", err)
		}
		if len(clusters) != 2 {
			t.Errorf("Expected 2 clusters, got %d", len(clusters))
		}
	})

	t.Run("StringLabels", func(t *testing.T) {
		p := Partition[string]{"a", "b", "a"}

		clusters, err := Index(p)
		if err != nil {
			t.Fatalf("Index failed: %v", err)
		}
		if !reflect.DeepEqual(clusters["a"], []int{0, 2}) {
			t.Errorf("Cluster a: expected [0 2], got %v", clusters["a"])
		}
	})

	t.Run("EmptyPartition", func(t *testing.T) {
		_, err := Index(Partition[int]{})
		if err == nil {
			t.Fatal("Expected error for empty partition")
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestLabels(t *testing.T) {
	t.Run("FirstSeenOrder", func(t *testing.T) {
		p := Partition[int]{3, 1, 3, 2, 1}

		labels := Labels(p)
		if !reflect.DeepEqual(labels, []int{3, 1, 2}) {
			t.Errorf("Expected [3 1 2], got %v", labels)
		}
	})

	t.Run("EmptyPartition", func(t *testing.T) {
		if labels := Labels(Partition[int]{}); len(labels) != 0 {
			t.Errorf("Expected no labels, got %v", labels)
		}
	})
}

func TestSizes(t *testing.T) {
	p := Partition[int]{1, 1, 1, 2}

	sizes := Sizes(p)
	if sizes[1] != 3 {
		t.Errorf("Expected size 3 for label 1, got %d", sizes[1])
	}
	if sizes[2] != 1 {
		t.Errorf("Expected size 1 for label 2, got %d", sizes[2])
	}
}

func TestCheckAligned(t *testing.T) {
	t.Run("SameLength", func(t *testing.T) {
		if err := CheckAligned(Partition[int]{1, 2}, Partition[int]{3, 4}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		err := CheckAligned(Partition[int]{1, 2}, Partition[int]{1, 2, 3})
		if err == nil {
			t.Fatal("Expected error for length mismatch")
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("EmptySide", func(t *testing.T) {
		if err := CheckAligned(Partition[int]{}, Partition[int]{1}); err == nil {
			t.Fatal("Expected error for empty partition")
		}
	})
}

func TestValidationError(t *testing.T) {
	err := ValidationError{Field: "partition", Message: "broken", Value: 3}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
	if err.Error() == "" {
		t.Error("Error message should not be empty")
	}
}
