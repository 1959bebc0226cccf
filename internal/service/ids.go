package service

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator produces opaque identifiers. Injected so tests can pin IDs.
type IDGenerator interface {
	NextID() string
}

// CustomerIDs issues CUST-prefixed identifiers backed by random UUIDs.
type CustomerIDs struct{}

func (CustomerIDs) NextID() string {
	return "CUST-" + strings.ToUpper(uuid.New().String()[:8])
}

// OrderIDs issues one identifier per completed checkout.
type OrderIDs struct{}

func (OrderIDs) NextID() string {
	return uuid.New().String()
}
