package weiqi

import "fmt"

type MoveKind int8

const (
	Pass MoveKind = iota
	Place
	Resign
)

func (k MoveKind) String() string {
	switch k {
	case Pass:
		return "Pass"
	case Place:
		return "Place"
	case Resign:
		return "Resign"
	}
	return ""
}

// Move is a player's action. Vertex is only meaningful for Place.
type Move[T comparable] struct {
	Color  Color
	Kind   MoveKind
	Vertex T
}

func PassMove[T comparable](c Color) Move[T] {
	return Move[T]{Color: c, Kind: Pass}
}

func PlaceMove[T comparable](c Color, i T) Move[T] {
	return Move[T]{Color: c, Kind: Place, Vertex: i}
}

func ResignMove[T comparable](c Color) Move[T] {
	return Move[T]{Color: c, Kind: Resign}
}

func (m Move[T]) String() string {
	if m.Kind == Place {
		return fmt.Sprintf("%s %v", m.Color, m.Vertex)
	}
	return fmt.Sprintf("%s %s", m.Color, m.Kind)
}
