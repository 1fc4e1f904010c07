package weiqi

import (
	"math/rand"
	"testing"

	"github.com/HuXin0817/weiqi/pkg/models/board"
	"github.com/HuXin0817/weiqi/pkg/models/indexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type P = indexer.Point

var noSuicide = LocalRules{SuicideAllowed: false}

// setup places stones without judging them.
func setup(s *GameState[P], c Color, points ...P) *GameState[P] {
	for _, p := range points {
		s = s.Apply(PlaceMove(c, p))
	}
	return s
}

func TestSingleStoneOnEmptyBoard(t *testing.T) {
	s := NewGameState[P](board.NewSquare(9))
	center := P{Row: 4, Col: 4}

	require.Equal(t, 81, s.Free().Count())
	require.True(t, s.LegalPlacement(center, Black, noSuicide))
	require.True(t, s.LegalMove(PlaceMove(Black, center), DefaultRules()))

	next := s.Apply(PlaceMove(Black, center))
	assert.True(t, next.Black.Stones.Get(center))
	assert.False(t, next.Free().Get(center))
	assert.Equal(t, 80, next.Free().Count())
	assert.Equal(t, White, next.ToMove)
	assert.Equal(t, 4, next.Black.Liberties(center, next.Free()).Count())

	// the receiver is untouched
	assert.Equal(t, 81, s.Free().Count())
	assert.Equal(t, Black, s.ToMove)
}

func TestOccupiedIsIllegal(t *testing.T) {
	s := setup(NewGameState[P](board.NewSquare(5)), Black, P{Row: 2, Col: 2})

	assert.False(t, s.LegalPlacement(P{Row: 2, Col: 2}, White, noSuicide))
	assert.False(t, s.LegalPlacement(P{Row: 2, Col: 2}, Black, LocalRules{SuicideAllowed: true}))
}

func TestInvalidPointPanics(t *testing.T) {
	s := NewGameState[P](board.NewSquare(5))
	assert.Panics(t, func() { s.LegalPlacement(P{Row: 5, Col: 0}, Black, noSuicide) })
}

func TestCaptureSingleStone(t *testing.T) {
	s := NewGameState[P](board.NewSquare(9))
	s = setup(s, White, P{Row: 0, Col: 0})
	s = setup(s, Black, P{Row: 0, Col: 1})

	last := P{Row: 1, Col: 0}
	require.True(t, s.LegalPlacement(last, Black, noSuicide))

	next := s.Apply(PlaceMove(Black, last))
	assert.True(t, next.White.Stones.IsEmpty())
	assert.True(t, next.White.Connections.IsEmpty())
	assert.True(t, next.Free().Get(P{Row: 0, Col: 0}))
	assert.Equal(t, 1, next.Black.Captures)
	assert.Equal(t, 1, next.Black.AGACaptures)
}

func TestCaptureIsNotSuicide(t *testing.T) {
	s := koShape()
	take := P{Row: 1, Col: 2}

	// the black stone has no liberty of its own, but it captures
	require.True(t, s.LegalPlacement(take, Black, noSuicide))

	next := s.Apply(PlaceMove(Black, take))
	assert.False(t, next.White.Stones.Get(P{Row: 1, Col: 1}))
	assert.Equal(t, 1, next.Black.Captures)
	assert.Equal(t, 1, next.Black.Liberties(take, next.Free()).Count())
}

func TestSuicide(t *testing.T) {
	s := NewGameState[P](board.NewSquare(9))
	s = setup(s, Black, P{Row: 1, Col: 0}, P{Row: 1, Col: 1}, P{Row: 1, Col: 2}, P{Row: 0, Col: 3})
	s = setup(s, White, P{Row: 0, Col: 0}, P{Row: 0, Col: 1})
	lastLiberty := P{Row: 0, Col: 2}

	assert.False(t, s.LegalPlacement(lastLiberty, White, noSuicide))
	assert.True(t, s.LegalPlacement(lastLiberty, White, LocalRules{SuicideAllowed: true}))

	rules := DefaultRules()
	rules.AlternatePlay = false
	assert.False(t, s.LegalMove(PlaceMove(White, lastLiberty), rules))
	rules.Local.SuicideAllowed = true
	assert.True(t, s.LegalMove(PlaceMove(White, lastLiberty), rules))

	next := s.Apply(PlaceMove(White, lastLiberty))
	assert.True(t, next.White.Stones.IsEmpty())
	assert.Equal(t, 3, next.Black.Captures)
	assert.Equal(t, 4, next.Black.Stones.Count())
}

func TestSingleStoneSuicide(t *testing.T) {
	s := setup(NewGameState[P](board.NewSquare(9)), Black, P{Row: 0, Col: 1}, P{Row: 1, Col: 0})

	assert.False(t, s.LegalPlacement(P{Row: 0, Col: 0}, White, noSuicide))
	assert.True(t, s.LegalPlacement(P{Row: 0, Col: 0}, Black, noSuicide))
}

func TestGroupsMerge(t *testing.T) {
	s := setup(NewGameState[P](board.NewSquare(5)), Black, P{Row: 0, Col: 0}, P{Row: 0, Col: 2})
	assert.False(t, s.Black.Group(P{Row: 0, Col: 0}).Get(P{Row: 0, Col: 2}))

	s = setup(s, Black, P{Row: 0, Col: 1})
	group := s.Black.Group(P{Row: 0, Col: 0})
	assert.Equal(t, 3, group.Count())
	assert.True(t, group.Get(P{Row: 0, Col: 2}))
	assert.True(t, s.Black.Connections.Get(P{Row: 0, Col: 2}, P{Row: 0, Col: 0}))
	assert.True(t, s.Black.Group(P{Row: 4, Col: 4}).IsEmpty())
}

func TestLibertiesOnlyShrinkThroughAdjacency(t *testing.T) {
	s := setup(NewGameState[P](board.NewSquare(9)), Black, P{Row: 4, Col: 4})
	center := P{Row: 4, Col: 4}
	require.Equal(t, 4, s.Black.Liberties(center, s.Free()).Count())

	s = setup(s, Black, P{Row: 4, Col: 5})
	assert.Equal(t, 6, s.Black.Liberties(center, s.Free()).Count())

	s = setup(s, White, P{Row: 0, Col: 0})
	assert.Equal(t, 6, s.Black.Liberties(center, s.Free()).Count())

	s = setup(s, White, P{Row: 3, Col: 4})
	assert.Equal(t, 5, s.Black.Liberties(center, s.Free()).Count())
}

func TestLegalMoveTurns(t *testing.T) {
	s := NewGameState[P](board.NewSquare(5))
	rules := DefaultRules()
	p := P{Row: 2, Col: 2}

	assert.True(t, s.LegalMove(PlaceMove(Black, p), rules))
	assert.False(t, s.LegalMove(PlaceMove(White, p), rules))
	assert.True(t, s.LegalMove(PassMove[P](Black), rules))
	assert.True(t, s.LegalMove(PassMove[P](White), rules))
	assert.True(t, s.LegalMove(ResignMove[P](White), rules))
	assert.False(t, s.LegalMove(PlaceMove(Color(0), p), rules))

	rules.AlternatePlay = false
	assert.True(t, s.LegalMove(PlaceMove(White, p), rules))
	assert.True(t, s.LegalMove(PassMove[P](White), rules))
}

func TestApplyPass(t *testing.T) {
	s := NewGameState[P](board.NewSquare(5))
	next := s.Apply(PassMove[P](Black))

	assert.Equal(t, White, next.ToMove)
	assert.Equal(t, 1, next.White.AGACaptures)
	assert.Equal(t, 0, next.White.Captures)
	assert.True(t, next.Black.Equal(s.Black))
	assert.False(t, next.Equal(s))
}

func TestLegalPlacements(t *testing.T) {
	s := setup(NewGameState[P](board.NewRect(1, 3)), Black, P{Row: 0, Col: 1})

	assert.Empty(t, s.LegalPlacements(White, noSuicide))
	assert.Len(t, s.LegalPlacements(White, LocalRules{SuicideAllowed: true}), 2)
	assert.Len(t, s.LegalPlacements(Black, noSuicide), 2)
}

func TestStateEqualityIncludesSideToMove(t *testing.T) {
	a := NewGameState[P](board.NewSquare(3))
	b := a.Clone()
	require.True(t, a.Equal(b))

	b.ToMove = White
	assert.False(t, a.Equal(b))

	c := a.Clone()
	c.Black.Captures = 7
	assert.True(t, a.Equal(c))
}

func TestGraphBoard(t *testing.T) {
	// a triangle: every point touches the other two
	triangle, err := board.NewGraphFromEdges(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	require.NoError(t, err)

	s := NewGameState[int](triangle)
	s = s.Apply(PlaceMove(Black, 0))
	s = s.Apply(PlaceMove(White, 1))

	// whoever fills the last point captures the other stone
	assert.True(t, s.LegalPlacement(2, White, noSuicide))
	assert.True(t, s.LegalPlacement(2, Black, noSuicide))

	next := s.Apply(PlaceMove(Black, 2))
	assert.True(t, next.White.Stones.IsEmpty())
	assert.Equal(t, 2, next.Black.Group(0).Count())
}

func floodFill(s *GameState[P], c Color, sq *board.Square, from P) map[P]bool {
	stones := s.Player(c).Stones
	seen := map[P]bool{from: true}
	frontier := []P{from}
	for len(frontier) > 0 {
		p := frontier[0]
		frontier = frontier[1:]
		for _, n := range sq.Neighbors(p) {
			if stones.Get(n) && !seen[n] {
				seen[n] = true
				frontier = append(frontier, n)
			}
		}
	}
	return seen
}

func TestConnectionsMatchFloodFill(t *testing.T) {
	sq := board.NewSquare(5)
	rng := rand.New(rand.NewSource(42))
	rules := DefaultRules()

	for game := range 3 {
		s := NewGameState[P](sq)
		for range 40 {
			legal := s.LegalPlacements(s.ToMove, rules.Local)
			if len(legal) == 0 {
				s = s.Apply(PassMove[P](s.ToMove))
				continue
			}
			s = s.Apply(PlaceMove(s.ToMove, legal[rng.Intn(len(legal))]))

			for _, c := range []Color{Black, White} {
				player := s.Player(c)
				for _, a := range indexer.Positions(sq.Indexer()) {
					var group map[P]bool
					if player.Stones.Get(a) {
						group = floodFill(s, c, sq, a)
						// every surviving group has a liberty
						require.False(t, player.Liberties(a, s.Free()).IsEmpty(), "game %d", game)
					}
					for _, b := range indexer.Positions(sq.Indexer()) {
						require.Equal(t, group[b], player.Connections.Get(a, b), "game %d %v %v %v", game, c, a, b)
					}
				}
			}
		}
	}
}

func BenchmarkLegalPlacement9x9(b *testing.B) {
	s := setup(NewGameState[P](board.NewSquare(9)), Black, P{Row: 2, Col: 2}, P{Row: 2, Col: 3})
	s = setup(s, White, P{Row: 3, Col: 2})
	for range b.N {
		s.LegalPlacement(P{Row: 3, Col: 3}, Black, noSuicide)
	}
}
