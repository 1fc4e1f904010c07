package logic

import (
	"context"
	"strconv"
	"time"

	"github.com/HuXin0817/weiqi/pkg/models/message"
	"github.com/HuXin0817/weiqi/pkg/models/weiqi"
	"github.com/HuXin0817/weiqi/serve/internal/svc"
	"github.com/HuXin0817/weiqi/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type PlayMoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewPlayMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PlayMoveLogic {
	return &PlayMoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *PlayMoveLogic) PlayMove(uid string, in *types.PlayMoveRequest) (*types.GameResponse, error) {
	s, err := lookup(l.svcCtx, uid)
	if err != nil {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()

	if s.Over {
		return nil, ErrGameOver
	}

	m, err := s.ParseMove(in.Color, in.Vertex)
	if err != nil {
		return nil, err
	}

	prev := s.History.Current()
	if err = s.History.PlayCurrent(m); err != nil {
		return nil, err
	}

	recode := s.Record()
	recode.GameUid = s.Uid
	if err = l.svcCtx.Records.Move.Insert(l.ctx, recode); err != nil {
		_ = s.History.Checkout(prev)
		return nil, err
	}

	if err = l.svcCtx.RedisClient.Setex(s.Uid.StepKey(), strconv.Itoa(recode.StepCount), l.svcCtx.Config.StepExpire); err != nil {
		l.Errorf("refresh step of %s: %v", s.Uid, err)
	}

	l.svcCtx.TranscriptPusher.AddMessages(message.MoveMessage{
		TimeStamp: message.NewTimeStamp(time.Now()),
		GameUid:   s.Uid,
		StepCount: recode.StepCount,
		Color:     recode.Color,
		Vertex:    recode.Vertex,
	})

	switch {
	case m.Kind == weiqi.Resign:
		err = finish(l.ctx, l.svcCtx, s, m.Color.Other().String(), "resignation")
	case s.History.ConsecutivePasses(s.History.Current()) >= 2:
		err = finish(l.ctx, l.svcCtx, s, "", "two consecutive passes")
	}
	if err != nil {
		return nil, err
	}

	return gameResponse(s), nil
}
