package board

import (
	"github.com/HuXin0817/weiqi/pkg/models/boolean"
	"github.com/HuXin0817/weiqi/pkg/models/indexer"
)

// Rect is a rectangular board with the classical line pattern.
//
//	┼─┼─┼─┼
//	┼─┼─┼─┼
//	┼─┼─┼─┼
type Rect struct {
	*Graph[indexer.Point]
	Height int
	Width  int
}

func NewRect(height, width int) *Rect {
	ix := indexer.NewRect(height, width)
	adj := boolean.MatrixFalses[indexer.Point, indexer.Point](ix, ix)

	for j := range height {
		for k := 1; k < width; k++ {
			boolean.SymSet(adj, indexer.Point{Row: j, Col: k - 1}, indexer.Point{Row: j, Col: k})
		}
	}

	for j := 1; j < height; j++ {
		for k := range width {
			boolean.SymSet(adj, indexer.Point{Row: j - 1, Col: k}, indexer.Point{Row: j, Col: k})
		}
	}

	return &Rect{
		Graph:  &Graph[indexer.Point]{adj: adj},
		Height: height,
		Width:  width,
	}
}

type Square struct {
	*Rect
}

func NewSquare(length int) *Square {
	return &Square{Rect: NewRect(length, length)}
}

func (s *Square) Size() int { return s.Height }
