package util

import "github.com/google/uuid"

// NewID returns a new random (v4) UUID in its canonical textual form.
func NewID() string {
	return uuid.New().String()
}
