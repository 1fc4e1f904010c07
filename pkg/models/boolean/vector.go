// Package boolean implements sets and relations over indexed domains as
// vectors and matrices with entries in the two-element semiring.
package boolean

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HuXin0817/weiqi/pkg/models/indexer"
)

var (
	ErrIndexerMismatch   = errors.New("boolean: indexers differ")
	ErrRangeMismatch     = errors.New("boolean: ranges differ")
	ErrDimensionMismatch = errors.New("boolean: inner dimensions differ")
	ErrLengthMismatch    = errors.New("boolean: data length differs from range")
)

// Vector is the characteristic function of a subset of an indexer's domain.
type Vector[T comparable] struct {
	indexer indexer.Indexer[T]
	data    []bool
}

func Falses[T comparable](ix indexer.Indexer[T]) *Vector[T] {
	return &Vector[T]{indexer: ix, data: make([]bool, ix.Range())}
}

func Trues[T comparable](ix indexer.Indexer[T]) *Vector[T] {
	v := Falses(ix)
	for n := range v.data {
		v.data[n] = true
	}
	return v
}

// FromSlice takes ownership of data.
func FromSlice[T comparable](ix indexer.Indexer[T], data []bool) *Vector[T] {
	if len(data) != ix.Range() {
		panic(fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(data), ix.Range()))
	}
	return &Vector[T]{indexer: ix, data: data}
}

func Singleton[T comparable](ix indexer.Indexer[T], i T) *Vector[T] {
	v := Falses(ix)
	v.Set(i)
	return v
}

func (v *Vector[T]) Indexer() indexer.Indexer[T] { return v.indexer }

func (v *Vector[T]) Len() int { return len(v.data) }

func (v *Vector[T]) Get(i T) bool { return v.data[v.indexer.ToNum(i)] }

func (v *Vector[T]) GetNum(n int) bool {
	v.indexer.ToIndex(n)
	return v.data[n]
}

func (v *Vector[T]) Set(i T) { v.data[v.indexer.ToNum(i)] = true }

func (v *Vector[T]) Unset(i T) { v.data[v.indexer.ToNum(i)] = false }

func (v *Vector[T]) SetNum(n int) {
	v.indexer.ToIndex(n)
	v.data[n] = true
}

// SetPositions lists the set positions in internal order.
func (v *Vector[T]) SetPositions() (positions []T) {
	for n, b := range v.data {
		if b {
			positions = append(positions, v.indexer.ToIndex(n))
		}
	}
	return
}

func (v *Vector[T]) Count() (count int) {
	for _, b := range v.data {
		if b {
			count++
		}
	}
	return
}

func (v *Vector[T]) IsEmpty() bool {
	for _, b := range v.data {
		if b {
			return false
		}
	}
	return true
}

func (v *Vector[T]) Clone() *Vector[T] {
	data := make([]bool, len(v.data))
	copy(data, v.data)
	return &Vector[T]{indexer: v.indexer, data: data}
}

func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if !indexer.Same(v.indexer, other.indexer) || len(v.data) != len(other.data) {
		return false
	}
	for n, b := range v.data {
		if other.data[n] != b {
			return false
		}
	}
	return true
}

func (v *Vector[T]) String() string {
	var builder strings.Builder
	for _, b := range v.data {
		if b {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String()
}

func mustMatch[T comparable](a, b *Vector[T]) {
	if !indexer.Same(a.indexer, b.indexer) {
		panic(fmt.Errorf("%w: %v and %v", ErrIndexerMismatch, a.indexer, b.indexer))
	}
}

func pointwise[T comparable](a, b *Vector[T], op func(x, y bool) bool) *Vector[T] {
	mustMatch(a, b)
	res := Falses(a.indexer)
	for n := range res.data {
		res.data[n] = op(a.data[n], b.data[n])
	}
	return res
}

func Union[T comparable](a, b *Vector[T]) *Vector[T] {
	return pointwise(a, b, func(x, y bool) bool { return x || y })
}

func Intersection[T comparable](a, b *Vector[T]) *Vector[T] {
	return pointwise(a, b, func(x, y bool) bool { return x && y })
}

// Difference is a ∧ ¬b.
func Difference[T comparable](a, b *Vector[T]) *Vector[T] {
	return pointwise(a, b, func(x, y bool) bool { return x && !y })
}

func (v *Vector[T]) Complement() *Vector[T] {
	res := Falses(v.indexer)
	for n, b := range v.data {
		res.data[n] = !b
	}
	return res
}

// Reindex relabels v onto ix without copying; the result shares v's data.
func Reindex[T, U comparable](v *Vector[T], ix indexer.Indexer[U]) *Vector[U] {
	if v.indexer.Range() != ix.Range() {
		panic(fmt.Errorf("%w: %d != %d", ErrRangeMismatch, v.indexer.Range(), ix.Range()))
	}
	return &Vector[U]{indexer: ix, data: v.data}
}
