package back

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every error returned when a lookup or a
	// mutation by id/name matched zero rows.
	ErrNotFound = errors.New("not found")

	// ErrClosed is wrapped in the StoreError returned by a second Close.
	ErrClosed = errors.New("database is closed")
)

// StoreError wraps any failure of the underlying datastore.
type StoreError struct {
	Op  string
	Err error
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %s", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// notFoundError carries a message that can be shown as-is to the user.
type notFoundError string

func (e notFoundError) Error() string {
	return string(e)
}

func (e notFoundError) Is(v error) bool {
	return v == ErrNotFound
}

func errGameRatingNotFoundByID(id string) error {
	return notFoundError(fmt.Sprintf("No game with the ID %s was found", id))
}

const errGameRatingNotFoundByName = notFoundError("No games were found with that name")
