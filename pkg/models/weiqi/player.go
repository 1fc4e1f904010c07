// Package weiqi implements the rules of Go on top of the boolean board
// algebra: groups are a reflexive transitive relation kept as a matrix,
// liberties and captures are matrix-vector products.
package weiqi

import (
	"github.com/HuXin0817/weiqi/pkg/models/board"
	"github.com/HuXin0817/weiqi/pkg/models/boolean"
)

// PlayerState holds the stones of one color.
// Connections relates two stones iff they belong to the same group; it is
// reflexive and transitive on Stones and false everywhere else.
type PlayerState[T comparable] struct {
	board       board.Board[T]
	Stones      *boolean.Vector[T]
	Connections *boolean.Matrix[T, T]
	Captures    int
	// AGACaptures additionally counts the pass stones handed over by the
	// opponent under AGA counting.
	AGACaptures int
}

func NewPlayerState[T comparable](b board.Board[T]) *PlayerState[T] {
	ix := b.Indexer()
	return &PlayerState[T]{
		board:       b,
		Stones:      boolean.Falses(ix),
		Connections: boolean.MatrixFalses(ix, ix),
	}
}

func (p *PlayerState[T]) PlaceStone(i T) {
	p.Stones.Set(i)

	ix := p.board.Indexer()
	diag := boolean.FromDiag(p.Stones)
	reach := boolean.MatrixUnion(p.board.Adjacency(), boolean.Identity(ix))
	restricted := boolean.Mul(diag, boolean.Mul(reach, diag))

	// A simple path through the new stone uses at most two of its edges,
	// so composing the closed relation with the new edges and squaring
	// closes it again.
	base := boolean.MatrixUnion(p.Connections, diag)
	step := boolean.Mul(base, boolean.Mul(restricted, base))
	p.Connections = boolean.Mul(step, step)
}

// Survivors returns the stones whose group touches free.
func (p *PlayerState[T]) Survivors(free *boolean.Vector[T]) *boolean.Vector[T] {
	return boolean.Mul(p.Connections, p.board.Adjacency()).Eval(free)
}

// Kill removes every group touching zombies and returns the number of
// stones removed.
func (p *PlayerState[T]) Kill(zombies *boolean.Vector[T]) int {
	infected := p.Connections.Eval(zombies)
	dead := boolean.Intersection(p.Stones, infected).Count()
	if dead == 0 {
		return 0
	}

	p.Stones = boolean.Difference(p.Stones, infected)
	diag := boolean.FromDiag(p.Stones)
	p.Connections = boolean.Mul(diag, boolean.Mul(p.Connections, diag))
	return dead
}

// KillDead removes the groups without a liberty in liberties.
func (p *PlayerState[T]) KillDead(liberties *boolean.Vector[T]) int {
	return p.Kill(boolean.Difference(p.Stones, p.Survivors(liberties)))
}

// Group returns the group containing i, empty if i holds no stone of p.
func (p *PlayerState[T]) Group(i T) *boolean.Vector[T] {
	return p.Connections.Eval(boolean.Singleton(p.board.Indexer(), i))
}

func (p *PlayerState[T]) Liberties(i T, free *boolean.Vector[T]) *boolean.Vector[T] {
	return boolean.Intersection(p.board.Adjacency().Eval(p.Group(i)), free)
}

func (p *PlayerState[T]) Clone() *PlayerState[T] {
	return &PlayerState[T]{
		board:       p.board,
		Stones:      p.Stones.Clone(),
		Connections: p.Connections.Clone(),
		Captures:    p.Captures,
		AGACaptures: p.AGACaptures,
	}
}

// Equal compares positions only; capture counters are not part of a
// position.
func (p *PlayerState[T]) Equal(other *PlayerState[T]) bool {
	return p.Stones.Equal(other.Stones) && p.Connections.Equal(other.Connections)
}
