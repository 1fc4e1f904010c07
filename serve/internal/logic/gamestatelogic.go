package logic

import (
	"context"

	"github.com/HuXin0817/weiqi/serve/internal/svc"
	"github.com/HuXin0817/weiqi/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type GameStateLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewGameStateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GameStateLogic {
	return &GameStateLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *GameStateLogic) GameState(uid string) (*types.GameResponse, error) {
	s, err := lookup(l.svcCtx, uid)
	if err != nil {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()
	return gameResponse(s), nil
}
