package logic

import (
	"context"
	"errors"

	"github.com/HuXin0817/weiqi/pkg/models/game"
	"github.com/HuXin0817/weiqi/pkg/models/message"
	"github.com/HuXin0817/weiqi/pkg/models/message/moverecord"
	"github.com/HuXin0817/weiqi/serve/internal/svc"
	"github.com/HuXin0817/weiqi/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type ReplayGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewReplayGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ReplayGameLogic {
	return &ReplayGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// ReplayGame loads a recorded game into this instance, so that it can be
// inspected or continued after a restart.
func (l *ReplayGameLogic) ReplayGame(uid string) (*types.GameResponse, error) {
	gameUid := message.GameUid(uid)
	if _, ok := l.svcCtx.Games.Get(gameUid); ok {
		return nil, ErrGameExists
	}

	start, err := l.svcCtx.Records.GameStart.FindByGameUid(l.ctx, gameUid)
	if errors.Is(err, moverecord.ErrNotFound) {
		return nil, ErrGameNotFound
	} else if err != nil {
		return nil, err
	}

	moves, err := l.svcCtx.Records.Move.FindAllByGameUid(l.ctx, gameUid)
	if err != nil {
		return nil, err
	}

	g, err := game.Replay(start, moves)
	if err != nil {
		return nil, err
	}

	s := &svc.Session{Game: g, Uid: gameUid}

	end, err := l.svcCtx.Records.GameEnd.FindByGameUid(l.ctx, gameUid)
	switch {
	case err == nil:
		s.Over, s.Winner, s.Reason = true, end.Winner, end.Reason
	case !errors.Is(err, moverecord.ErrNotFound):
		return nil, err
	}

	if !l.svcCtx.Games.AddIfAbsent(s) {
		return nil, ErrGameExists
	}
	l.Infof("game %s replayed, %d moves", gameUid, len(moves))

	s.Lock()
	defer s.Unlock()
	return gameResponse(s), nil
}
