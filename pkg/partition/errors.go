package partition

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the error kind for every caller error the similarity
// pipeline can detect: empty partitions, mismatched node universes, empty
// matrices and empty match sets. It is always reported synchronously before
// any partial result is produced; callers test for it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError describes a single invalid-input condition.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("invalid %s: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap makes every ValidationError match ErrInvalidInput.
func (e ValidationError) Unwrap() error { return ErrInvalidInput }
