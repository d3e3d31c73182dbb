package record

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOperation is matched by every UnsupportedOperationError.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// UnsupportedOperationError is returned for operations a record never allows.
type UnsupportedOperationError struct {
	Op    string
	Field string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s %q: fields cannot be removed from a record", e.Op, e.Field)
}

func (e *UnsupportedOperationError) Is(target error) bool { return target == ErrUnsupportedOperation }
