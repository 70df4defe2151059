package models

import "github.com/google/uuid"

// NewID returns an opaque record identifier. Collision resistance is all the
// collections need; the format itself is not part of the schema contract.
func NewID() string {
	return uuid.NewString()
}
