package notes

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator hands out note identifiers.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string { return f() }

// UUIDs generates random v4 UUIDs.
type UUIDs struct{}

func (UUIDs) NewID() string {
	return uuid.NewString()
}

// SequenceIDs generates "1", "2", "3", ... in order.
type SequenceIDs struct {
	next uint64
}

func (s *SequenceIDs) NewID() string {
	s.next++
	return strconv.FormatUint(s.next, 10)
}

// GeneratorFor maps a config id scheme to a generator. Unknown schemes get UUIDs.
func GeneratorFor(scheme string) IDGenerator {
	if scheme == "sequence" {
		return &SequenceIDs{}
	}
	return UUIDs{}
}
