package game

import (
	"errors"
	"fmt"

	"github.com/HuXin0817/weiqi/pkg/models/message/moverecord"
)

var ErrStepOutOfOrder = errors.New("game: transcript step out of order")

// ReplayError reports the first record that could not be replayed.
type ReplayError struct {
	Step int
	Err  error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("replay step %d: %v", e.Step, e.Err)
}

func (e *ReplayError) Unwrap() error { return e.Err }

// Replay rebuilds a game from its start record and its moves, which must be
// numbered 1, 2, ... in order.
func Replay(start *moverecord.GameStartRecode, moves []*moverecord.MoveRecode) (*Game, error) {
	g, err := NewGame(start.Height, start.Width, start.Rules)
	if err != nil {
		return nil, err
	}

	if err = g.Handicap(start.Handicap); err != nil {
		return nil, &ReplayError{Step: 0, Err: err}
	}

	for i, record := range moves {
		step := i + 1
		if record.StepCount != step {
			return nil, &ReplayError{Step: step, Err: fmt.Errorf("%w: got %d", ErrStepOutOfOrder, record.StepCount)}
		}

		m, err := g.ParseMove(record.Color, record.Vertex)
		if err != nil {
			return nil, &ReplayError{Step: step, Err: err}
		}

		if err = g.History.PlayCurrent(m); err != nil {
			return nil, &ReplayError{Step: step, Err: err}
		}
	}

	return g, nil
}

// Record describes the move that led to the current node.
func (g *Game) Record() *moverecord.MoveRecode {
	node, _ := g.History.Node(g.History.Current())
	state := node.State
	return &moverecord.MoveRecode{
		StepCount:     g.Step(),
		Color:         node.Move.Color.String(),
		Vertex:        g.FormatVertex(node.Move),
		BlackCaptures: state.Black.Captures,
		WhiteCaptures: state.White.Captures,
	}
}
