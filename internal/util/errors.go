package util

import (
	"strings"
)

// ConcatErrors merges the non-nil errors into one, nil if there are none.
// The result matches each merged error with errors.Is and errors.As.
func ConcatErrors(errs []error) error {
	filtered := make(multiError, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}

	switch len(filtered) {
	case 0:
		return nil
	case 1:
		return filtered[0]
	default:
		return filtered
	}
}

type multiError []error

func (m multiError) Error() string {
	msgs := make([]string, 0, len(m))
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}

	return strings.Join(msgs, "; ")
}

func (m multiError) Unwrap() []error {
	return m
}
