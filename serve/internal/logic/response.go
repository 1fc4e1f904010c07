package logic

import (
	"github.com/HuXin0817/weiqi/pkg/models/message"
	"github.com/HuXin0817/weiqi/serve/internal/svc"
	"github.com/HuXin0817/weiqi/serve/internal/types"
)

// gameResponse snapshots s. The caller holds s.
func gameResponse(s *svc.Session) *types.GameResponse {
	state := s.History.CurrentState()
	return &types.GameResponse{
		GameUid:       string(s.Uid),
		Height:        s.Board.Height,
		Width:         s.Board.Width,
		Step:          s.Step(),
		ToMove:        state.ToMove.String(),
		Board:         s.Rows(),
		Moves:         s.Moves(),
		BlackCaptures: state.Black.Captures,
		WhiteCaptures: state.White.Captures,
		Komi:          s.History.Rules().Komi(),
		Over:          s.Over,
		Winner:        s.Winner,
		Reason:        s.Reason,
	}
}

func lookup(svcCtx *svc.ServiceContext, uid string) (*svc.Session, error) {
	s, ok := svcCtx.Games.Get(message.GameUid(uid))
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}
