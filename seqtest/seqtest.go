// Package seqtest provides sources with controlled failure and pull
// accounting for testing code built on package seqs.
package seqtest

import (
	"errors"
	"testing"

	"lazyseq/seqs"
)

// ErrSource is the failure produced by Failing.
var ErrSource = errors.New("seqtest: source failure")

// Failing yields values and then fails with ErrSource, so the failing pull is
// the (len(values)+1)-th.
func Failing[T any](values ...T) seqs.Seq[T] {
	return FailingWith(ErrSource, values...)
}

// FailingWith is Failing with a caller chosen error.
func FailingWith[T any](err error, values ...T) seqs.Seq[T] {
	return func(yield func(T, error) bool) {
		for _, v := range values {
			if !yield(v, nil) {
				return
			}
		}
		var zero T
		yield(zero, err)
	}
}

// Untouched returns a source that fails t if it is ever ranged over.
func Untouched[T any](t testing.TB) seqs.Seq[T] {
	t.Helper()
	return func(func(T, error) bool) {
		t.Errorf("source was enumerated")
	}
}

// Counter wraps a source and records how it is used.
type Counter[T any] struct {
	src    seqs.Seq[T]
	pulls  int
	passes int
}

// Counting wraps src.
func Counting[T any](src seqs.Seq[T]) *Counter[T] {
	return &Counter[T]{src: src}
}

// Seq returns the wrapped source. Every step it produces, element or
// failure, counts as one pull.
func (c *Counter[T]) Seq() seqs.Seq[T] {
	return func(yield func(T, error) bool) {
		c.passes++
		for v, err := range c.src {
			c.pulls++
			if !yield(v, err) {
				return
			}
		}
	}
}

// Pulls returns the number of steps produced across all passes.
func (c *Counter[T]) Pulls() int { return c.pulls }

// Passes returns how many times the source was ranged over.
func (c *Counter[T]) Passes() int { return c.passes }

// Reset zeroes the counters.
func (c *Counter[T]) Reset() {
	c.pulls = 0
	c.passes = 0
}
