package kernel

import (
	"math"
	"strconv"

	"littlelemon/internal/pkg/errs"
)

// ID identifies a persisted record. The zero value is invalid.
type ID int64

// NewID validates that v is a positive identifier.
func NewID(v int64) (ID, error) {
	id := ID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseID parses a decimal identifier such as a path segment.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(v)
}

func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", int64(id), 1, int64(math.MaxInt64))
	}
	return nil
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Ptr returns a pointer to a copy of id, handy for nullable references.
func (id ID) Ptr() *ID {
	return &id
}
