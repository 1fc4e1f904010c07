// Package indexer maps domain positions onto a dense integer range
// [0, Range()) and back. Every vector and matrix in the engine is laid out
// through an Indexer, so a single algebra serves any board topology.
package indexer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIndex = errors.New("indexer: invalid index")
	ErrOutOfRange   = errors.New("indexer: number out of range")
)

// Indexer is a bijection between the valid values of T and [0, Range()).
// Range is sharp: every number below it is produced by ToNum.
// ToNum panics on an invalid index and ToIndex panics on a number outside
// the range; both are caller bugs.
type Indexer[T comparable] interface {
	ToNum(index T) int
	ToIndex(n int) T
	IsValid(index T) bool
	Range() int
	InRange(n int) bool
}

// Same reports whether two indexers describe the same domain.
// Indexers are values, so two Rect{9, 9} are the same domain.
func Same[T comparable](a, b Indexer[T]) bool {
	return a == b
}

// Positions lists the domain in internal order.
func Positions[T comparable](ix Indexer[T]) []T {
	positions := make([]T, ix.Range())
	for n := range positions {
		positions[n] = ix.ToIndex(n)
	}
	return positions
}

func invalid(index any) {
	panic(fmt.Errorf("%w: %v", ErrInvalidIndex, index))
}

func outOfRange(n, size int) {
	panic(fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, n, size))
}

// Unit indexes the singleton domain.
type Unit struct{}

func (Unit) ToNum(struct{}) int { return 0 }

func (u Unit) ToIndex(n int) struct{} {
	if !u.InRange(n) {
		outOfRange(n, 1)
	}
	return struct{}{}
}

func (Unit) IsValid(struct{}) bool { return true }

func (Unit) Range() int { return 1 }

func (Unit) InRange(n int) bool { return n == 0 }

// Range indexes {0, ..., n-1} by itself.
type Range int

func (r Range) ToNum(i int) int {
	if !r.IsValid(i) {
		invalid(i)
	}
	return i
}

func (r Range) ToIndex(n int) int {
	if !r.InRange(n) {
		outOfRange(n, int(r))
	}
	return n
}

func (r Range) IsValid(i int) bool { return r.InRange(i) }

func (r Range) Range() int { return int(r) }

func (r Range) InRange(n int) bool { return n >= 0 && n < int(r) }
