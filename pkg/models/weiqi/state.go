package weiqi

import (
	"github.com/HuXin0817/weiqi/pkg/models/board"
	"github.com/HuXin0817/weiqi/pkg/models/boolean"
)

type GameState[T comparable] struct {
	board  board.Board[T]
	Black  *PlayerState[T]
	White  *PlayerState[T]
	ToMove Color
}

func NewGameState[T comparable](b board.Board[T]) *GameState[T] {
	return &GameState[T]{
		board:  b,
		Black:  NewPlayerState(b),
		White:  NewPlayerState(b),
		ToMove: Black,
	}
}

func (s *GameState[T]) Board() board.Board[T] { return s.board }

func (s *GameState[T]) Player(c Color) *PlayerState[T] {
	switch c {
	case Black:
		return s.Black
	case White:
		return s.White
	}
	panic(ErrInvalidColor)
}

// Free returns the unoccupied points.
func (s *GameState[T]) Free() *boolean.Vector[T] {
	return boolean.Union(s.Black.Stones, s.White.Stones).Complement()
}

// LegalPlacement reports whether c may put a stone on i, ignoring whose
// turn it is and the history of the game.
func (s *GameState[T]) LegalPlacement(i T, c Color, rules LocalRules) bool {
	if !s.Free().Get(i) {
		return false
	}

	future := s.Clone()
	player, other := future.Player(c), future.Player(c.Other())
	player.PlaceStone(i)
	liberties := future.Free()

	killsSomething := !other.Survivors(liberties).Equal(other.Stones)
	isSuicide := !killsSomething && !player.Survivors(liberties).Equal(player.Stones)
	return !isSuicide || rules.SuicideAllowed
}

func (s *GameState[T]) LegalMove(m Move[T], rules Rules) bool {
	if !m.Color.IsValid() {
		return false
	}

	switch m.Kind {
	case Pass, Resign:
		return true
	case Place:
		if rules.AlternatePlay && m.Color != s.ToMove {
			return false
		}
		return s.LegalPlacement(m.Vertex, m.Color, rules.Local)
	}
	return false
}

// LegalPlacements lists the points c may play on.
func (s *GameState[T]) LegalPlacements(c Color, rules LocalRules) (points []T) {
	for _, i := range s.Free().SetPositions() {
		if s.LegalPlacement(i, c, rules) {
			points = append(points, i)
		}
	}
	return
}

// Apply returns the state after m. The receiver is not modified and m is
// not checked for legality.
func (s *GameState[T]) Apply(m Move[T]) *GameState[T] {
	next := s.Clone()

	switch m.Kind {
	case Place:
		player, other := next.Player(m.Color), next.Player(m.Color.Other())
		player.PlaceStone(m.Vertex)

		captured := other.KillDead(next.Free())
		player.Captures += captured
		player.AGACaptures += captured

		lost := player.KillDead(next.Free())
		other.Captures += lost
		other.AGACaptures += lost

		next.ToMove = m.Color.Other()
	case Pass:
		next.Player(m.Color.Other()).AGACaptures++
		next.ToMove = m.Color.Other()
	}

	return next
}

func (s *GameState[T]) Clone() *GameState[T] {
	return &GameState[T]{
		board:  s.board,
		Black:  s.Black.Clone(),
		White:  s.White.Clone(),
		ToMove: s.ToMove,
	}
}

// Equal compares both positions and the side to move.
func (s *GameState[T]) Equal(other *GameState[T]) bool {
	return s.ToMove == other.ToMove && s.SamePosition(other)
}

// SamePosition compares the stones only.
func (s *GameState[T]) SamePosition(other *GameState[T]) bool {
	return s.Black.Equal(other.Black) && s.White.Equal(other.White)
}
