package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/HuXin0817/weiqi/pkg/models/game"
	"github.com/HuXin0817/weiqi/pkg/models/indexer"
	"github.com/HuXin0817/weiqi/pkg/models/message"
	"github.com/HuXin0817/weiqi/pkg/models/message/moverecord"
	"github.com/HuXin0817/weiqi/pkg/models/weiqi"
)

type Options struct {
	Height   int
	Width    int
	MaxMoves int
	Rules    weiqi.Rules
}

type Stats struct {
	Games    int
	Moves    int
	Captures int
	Passes   int
	// Rejected counts placements tried and found illegal.
	Rejected int
}

func (s *Stats) add(o Stats) {
	s.Games += o.Games
	s.Moves += o.Moves
	s.Captures += o.Captures
	s.Passes += o.Passes
	s.Rejected += o.Rejected
}

// Playout plays one random game: each side places a stone on a random legal
// point and passes when none is left. The game ends after two passes or
// MaxMoves moves. Every move is recorded in records, and the recorded
// transcript must replay to the same position.
func Playout(ctx context.Context, rng *rand.Rand, opts Options, records moverecord.Store) (Stats, error) {
	g, err := game.NewGame(opts.Height, opts.Width, opts.Rules)
	if err != nil {
		return Stats{}, err
	}

	uid := message.NewGameUid()
	start := &moverecord.GameStartRecode{GameUid: uid, Height: opts.Height, Width: opts.Width, Rules: opts.Rules}
	if err = records.GameStart.Insert(ctx, start); err != nil {
		return Stats{}, err
	}

	stats := Stats{Games: 1}
	positions := indexer.Positions[indexer.Point](g.Board.Indexer())

	for stats.Moves < opts.MaxMoves && g.History.ConsecutivePasses(g.History.Current()) < 2 {
		color := g.History.CurrentState().ToMove
		m := weiqi.PassMove[indexer.Point](color)

		for _, i := range rng.Perm(len(positions)) {
			candidate := weiqi.PlaceMove(color, positions[i])
			if !g.History.CurrentState().Free().Get(positions[i]) {
				continue
			}
			if g.History.LegalMove(g.History.Current(), candidate) {
				m = candidate
				break
			}
			stats.Rejected++
		}

		if err = g.History.PlayCurrent(m); err != nil {
			return stats, err
		}

		recode := g.Record()
		recode.GameUid = uid
		if err = records.Move.Insert(ctx, recode); err != nil {
			return stats, err
		}

		stats.Moves++
		if m.Kind == weiqi.Pass {
			stats.Passes++
		}
	}

	final := g.History.CurrentState()
	stats.Captures = final.Black.Captures + final.White.Captures

	moves, err := records.Move.FindAllByGameUid(ctx, uid)
	if err != nil {
		return stats, err
	}

	replayed, err := game.Replay(start, moves)
	if err != nil {
		return stats, err
	}

	if !replayed.History.CurrentState().Equal(final) {
		return stats, fmt.Errorf("game %s: replay diverged after %d moves", uid, len(moves))
	}
	return stats, nil
}
