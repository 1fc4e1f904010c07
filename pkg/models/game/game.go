// Package game binds the rules engine to rectangular boards addressed in
// vertex notation, the form moves take in requests and records.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HuXin0817/weiqi/pkg/models/board"
	"github.com/HuXin0817/weiqi/pkg/models/indexer"
	"github.com/HuXin0817/weiqi/pkg/models/vertex"
	"github.com/HuXin0817/weiqi/pkg/models/weiqi"
)

const Resign = "resign"

var ErrBoardSize = errors.New("game: board size out of range")

type Game struct {
	Board   *board.Rect
	History *weiqi.History[indexer.Point]
	rect    indexer.Rect
}

func NewGame(height, width int, rules weiqi.Rules) (*Game, error) {
	if height < 1 || width < 1 || width > vertex.MaxWidth {
		return nil, fmt.Errorf("%w: %dx%d", ErrBoardSize, height, width)
	}

	b := board.NewRect(height, width)
	return &Game{
		Board:   b,
		History: weiqi.NewHistory(weiqi.NewGameState[indexer.Point](b), rules),
		rect:    indexer.NewRect(height, width),
	}, nil
}

// Handicap places black stones on the given vertices before the first move.
func (g *Game) Handicap(vertices []string) error {
	points := make([]indexer.Point, 0, len(vertices))
	for _, s := range vertices {
		v, err := vertex.Parse(s, g.rect)
		if err != nil {
			return err
		}
		if v.Pass {
			return fmt.Errorf("%w: pass is not a handicap point", vertex.ErrInvalidVertex)
		}
		points = append(points, v.Point)
	}
	return g.History.Handicap(points)
}

func (g *Game) ParseMove(color, v string) (weiqi.Move[indexer.Point], error) {
	c, err := weiqi.ParseColor(color)
	if err != nil {
		return weiqi.Move[indexer.Point]{}, err
	}

	if strings.EqualFold(strings.TrimSpace(v), Resign) {
		return weiqi.ResignMove[indexer.Point](c), nil
	}

	parsed, err := vertex.Parse(v, g.rect)
	if err != nil {
		return weiqi.Move[indexer.Point]{}, err
	}
	if parsed.Pass {
		return weiqi.PassMove[indexer.Point](c), nil
	}
	return weiqi.PlaceMove(c, parsed.Point), nil
}

// FormatVertex renders the vertex part of m: a point, "pass" or "resign".
func (g *Game) FormatVertex(m weiqi.Move[indexer.Point]) string {
	switch m.Kind {
	case weiqi.Pass:
		return "pass"
	case weiqi.Resign:
		return Resign
	default:
		return vertex.FormatPoint(m.Vertex, g.rect)
	}
}

func (g *Game) FormatPoint(p indexer.Point) string {
	return vertex.FormatPoint(p, g.rect)
}

// Step is the number of moves on the line leading to the current node.
func (g *Game) Step() int {
	return len(g.History.Ancestors(g.History.Current())) - 1
}

// Moves lists the current line as "B D4" entries.
func (g *Game) Moves() []string {
	line := g.History.Line(g.History.Current())
	moves := make([]string, 0, len(line))
	for _, m := range line {
		moves = append(moves, fmt.Sprintf("%c %s", m.Color.String()[0], g.FormatVertex(m)))
	}
	return moves
}

// Rows draws the current position from the top row down: X for black,
// O for white and . for empty points.
func (g *Game) Rows() []string {
	state := g.History.CurrentState()
	rows := make([]string, 0, g.rect.Height)
	for r := range g.rect.Height {
		var sb strings.Builder
		for c := range g.rect.Width {
			p := indexer.Point{Row: r, Col: c}
			switch {
			case state.Black.Stones.Get(p):
				sb.WriteByte('X')
			case state.White.Stones.Get(p):
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// LegalVertices lists every vertex c may play now, pass included.
func (g *Game) LegalVertices(c weiqi.Color) []string {
	at := g.History.Current()
	var vertices []string
	for _, p := range indexer.Positions[indexer.Point](g.rect) {
		if g.History.LegalMove(at, weiqi.PlaceMove(c, p)) {
			vertices = append(vertices, g.FormatPoint(p))
		}
	}
	if g.History.LegalMove(at, weiqi.PassMove[indexer.Point](c)) {
		vertices = append(vertices, "pass")
	}
	return vertices
}

// HandicapVertices lists the stones placed before the first move.
func (g *Game) HandicapVertices() []string {
	root, _ := g.History.Node(0)
	var vertices []string
	for _, p := range indexer.Positions[indexer.Point](g.rect) {
		if root.State.Black.Stones.Get(p) {
			vertices = append(vertices, g.FormatPoint(p))
		}
	}
	return vertices
}
