package logic

import (
	"context"
	"fmt"
	"strconv"

	"github.com/HuXin0817/weiqi/pkg/models/game"
	"github.com/HuXin0817/weiqi/pkg/models/message"
	"github.com/HuXin0817/weiqi/pkg/models/message/moverecord"
	"github.com/HuXin0817/weiqi/serve/internal/svc"
	"github.com/HuXin0817/weiqi/serve/internal/types"
	"github.com/bytedance/sonic"
	"github.com/zeromicro/go-zero/core/logx"
)

type NewGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewNewGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *NewGameLogic {
	return &NewGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *NewGameLogic) NewGame(in *types.NewGameRequest) (*types.GameResponse, error) {
	maxSize := l.svcCtx.Config.MaxBoardSize
	if in.Height < 1 || in.Width < 1 || in.Height > maxSize || in.Width > maxSize {
		return nil, ErrBoardSizeOutOfRange
	}

	rules := l.svcCtx.Config.Rules
	if len(in.Rules) > 0 {
		if err := sonic.Unmarshal(in.Rules, &rules); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
		}
	}

	g, err := game.NewGame(in.Height, in.Width, rules)
	if err != nil {
		return nil, err
	}

	if err = g.Handicap(in.Handicap); err != nil {
		return nil, err
	}

	if in.FixedHandicap > 0 {
		if err = g.History.FixedHandicap(in.FixedHandicap); err != nil {
			return nil, err
		}
	}

	s := &svc.Session{Game: g, Uid: message.NewGameUid()}

	recode := &moverecord.GameStartRecode{
		GameUid:  s.Uid,
		Height:   in.Height,
		Width:    in.Width,
		Rules:    rules,
		Handicap: g.HandicapVertices(),
	}
	if err = l.svcCtx.Records.GameStart.Insert(l.ctx, recode); err != nil {
		return nil, err
	}

	if err = l.svcCtx.RedisClient.Setex(s.Uid.StepKey(), strconv.Itoa(0), l.svcCtx.Config.StepExpire); err != nil {
		return nil, err
	}

	l.svcCtx.Games.Add(s)
	l.Infof("game %s started on %dx%d", s.Uid, in.Height, in.Width)

	s.Lock()
	defer s.Unlock()
	return gameResponse(s), nil
}
