// Package board describes the topologies Go can be played on.
//
// A board is nothing but an indexer for its intersection points and a
// symmetric, irreflexive adjacency relation between them. The rules never
// look at coordinates, so any undirected graph is a valid board.
package board

import (
	"errors"

	"github.com/HuXin0817/weiqi/pkg/models/boolean"
	"github.com/HuXin0817/weiqi/pkg/models/indexer"
)

var (
	ErrAsymmetric       = errors.New("board: adjacency is not symmetric")
	ErrSelfLoop         = errors.New("board: adjacency relates a point to itself")
	ErrHoshiNotProvided = errors.New("board: hoshi points are not provided for this board")
)

type Board[T comparable] interface {
	Indexer() indexer.Indexer[T]
	Adjacency() *boolean.Matrix[T, T]
	// IsHoshi is an extension point; no variant knows its star points yet
	// and every variant answers false.
	IsHoshi(i T) bool
	HoshiPoints() ([]T, error)
}

var (
	_ Board[int]           = (*Graph[int])(nil)
	_ Board[indexer.Point] = (*Rect)(nil)
	_ Board[indexer.Point] = (*Square)(nil)
)
