package ordmap

import (
	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
)

// Equality decides key identity for [NewFunc] maps.
// Keys that are Equal must have the same Hash.
type Equality[K any] interface {
	Equal(a, b K) bool
	Hash(key K) uint64
}

type equalityFunc[K any] struct {
	equal func(a, b K) bool
	hash  func(K) uint64
}

func (e equalityFunc[K]) Equal(a, b K) bool { return e.equal(a, b) }
func (e equalityFunc[K]) Hash(key K) uint64 { return e.hash(key) }

// EqualityFunc adapts a pair of functions to an Equality.
// It panics if either function is nil.
func EqualityFunc[K any](equal func(a, b K) bool, hash func(K) uint64) Equality[K] {
	if equal == nil || hash == nil {
		panic("ordmap: EqualityFunc with nil equal or hash")
	}
	return equalityFunc[K]{equal: equal, hash: hash}
}

type stringEquality struct{}

func (stringEquality) Equal(a, b string) bool { return a == b }
func (stringEquality) Hash(key string) uint64 { return xxhash.Sum64String(key) }

type foldEquality struct{}

// a Caser keeps state between calls, so each fold gets its own.
func fold(s string) string { return cases.Fold().String(s) }

func (foldEquality) Equal(a, b string) bool {
	if a == b {
		return true
	}
	return fold(a) == fold(b)
}

func (foldEquality) Hash(key string) uint64 { return xxhash.Sum64String(fold(key)) }

var (
	// StringEquality compares strings byte for byte.
	StringEquality Equality[string] = stringEquality{}

	// FoldString compares strings under Unicode full case folding, so "ß",
	// "SS" and "ss" are all the same key.
	FoldString Equality[string] = foldEquality{}
)
