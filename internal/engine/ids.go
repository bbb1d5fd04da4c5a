// internal/engine/ids.go
package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// IDSource supplies identifiers for generated queue items. Injected so
// evaluations can be made reproducible under test.
type IDSource interface {
	NewID() string
}

type uuidSource struct{}

func (uuidSource) NewID() string { return uuid.New().String() }

// NewUUIDSource returns the production IDSource backed by random UUIDs.
func NewUUIDSource() IDSource { return uuidSource{} }

// SequenceIDs hands out "prefix-1", "prefix-2", ... in call order.
type SequenceIDs struct {
	Prefix string
	n      int
}

func (s *SequenceIDs) NewID() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.Prefix, s.n)
}
