package loan

import "errors"

var (
	// ErrNotFound covers both missing ids and soft-deleted records.
	ErrNotFound = errors.New("loan not found")
	// ErrInvalidState: the loan's current status forbids the operation.
	ErrInvalidState = errors.New("loan state does not allow this operation")
)
