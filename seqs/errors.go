package seqs

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingArgument reports a nil source, callback or comparer.
	ErrMissingArgument = errors.New("missing argument")
	// ErrOutOfRange reports a numeric argument outside its allowed range.
	ErrOutOfRange = errors.New("argument out of range")
	// ErrEmptySource reports a selector run over a sequence with no elements.
	ErrEmptySource = errors.New("source sequence is empty")
)

// ArgumentError describes a rejected argument of an operator.
type ArgumentError struct {
	Op    string // operator name, e.g. "BufferStep"
	Param string // parameter name, e.g. "step"
	Err   error  // ErrMissingArgument or ErrOutOfRange, possibly wrapped
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("seqs: %s: %s: %v", e.Op, e.Param, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

func missing(op, param string) error {
	return &ArgumentError{Op: op, Param: param, Err: ErrMissingArgument}
}

func outOfRange(op, param string, value int) error {
	return &ArgumentError{
		Op:    op,
		Param: param,
		Err:   fmt.Errorf("%w: must be positive, got %d", ErrOutOfRange, value),
	}
}

func emptySource(op string) error {
	return fmt.Errorf("seqs: %s: %w", op, ErrEmptySource)
}
