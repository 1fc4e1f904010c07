package board

import (
	"github.com/HuXin0817/weiqi/pkg/models/boolean"
	"github.com/HuXin0817/weiqi/pkg/models/indexer"
)

// Graph is the most general board. The other variants are graphs with a
// particular adjacency.
type Graph[T comparable] struct {
	adj *boolean.Matrix[T, T]
}

func NewGraph[T comparable](adj *boolean.Matrix[T, T]) (*Graph[T], error) {
	if !boolean.IsSymmetric(adj) {
		return nil, ErrAsymmetric
	}

	if boolean.HasSelfLoops(adj) {
		return nil, ErrSelfLoop
	}

	return &Graph[T]{adj: adj.Clone()}, nil
}

func MustNewGraph[T comparable](adj *boolean.Matrix[T, T]) *Graph[T] {
	g, err := NewGraph(adj)
	if err != nil {
		panic(err)
	}
	return g
}

// NewGraphFromEdges builds a graph on {0, ..., n-1}.
func NewGraphFromEdges(n int, edges [][2]int) (*Graph[int], error) {
	ix := indexer.Range(n)
	adj := boolean.MatrixFalses[int, int](ix, ix)
	for _, e := range edges {
		if e[0] == e[1] {
			return nil, ErrSelfLoop
		}
		boolean.SymSet(adj, e[0], e[1])
	}
	return NewGraph(adj)
}

func (g *Graph[T]) Indexer() indexer.Indexer[T] { return g.adj.Rows() }

func (g *Graph[T]) Adjacency() *boolean.Matrix[T, T] { return g.adj }

func (g *Graph[T]) IsHoshi(T) bool { return false }

func (g *Graph[T]) HoshiPoints() ([]T, error) { return nil, ErrHoshiNotProvided }

// Neighbors lists the points adjacent to i.
func (g *Graph[T]) Neighbors(i T) []T {
	return g.adj.Eval(boolean.Singleton(g.Indexer(), i)).SetPositions()
}
