package ir

import (
	"errors"
	"fmt"
)

var (
	errInternal = errors.New("internal error")

	ErrNotFound = errors.New("not found")
	ErrKind     = errors.New("wrong node kind")
)

func notFound(kp string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, kp)
}
