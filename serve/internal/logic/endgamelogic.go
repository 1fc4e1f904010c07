package logic

import (
	"context"

	"github.com/HuXin0817/weiqi/pkg/models/message"
	"github.com/HuXin0817/weiqi/pkg/models/message/moverecord"
	"github.com/HuXin0817/weiqi/serve/internal/svc"
	"github.com/HuXin0817/weiqi/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type EndGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewEndGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *EndGameLogic {
	return &EndGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// EndGame abandons a running game and unloads it from this instance.
func (l *EndGameLogic) EndGame(uid string) (*types.GameResponse, error) {
	s, err := lookup(l.svcCtx, uid)
	if err != nil {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()

	if !s.Over {
		if err = finish(l.ctx, l.svcCtx, s, "", "abandoned"); err != nil {
			return nil, err
		}
	}

	l.svcCtx.Games.Remove(s.Uid)
	return gameResponse(s), nil
}

// finish records the end of s and queues it for an audit. The caller
// holds s.
func finish(ctx context.Context, svcCtx *svc.ServiceContext, s *svc.Session, winner, reason string) error {
	recode := &moverecord.GameEndRecode{
		GameUid: s.Uid,
		Steps:   s.Step(),
		Winner:  winner,
		Reason:  reason,
	}
	if err := svcCtx.Records.GameEnd.Insert(ctx, recode); err != nil {
		return err
	}

	s.Over, s.Winner, s.Reason = true, winner, reason

	if _, err := svcCtx.RedisClient.Del(s.Uid.StepKey()); err != nil {
		return err
	}

	partition, err := ShortestPartition(svcCtx.RedisClient)
	if err != nil {
		return err
	}
	svcCtx.PartitionPusher[partition].AddMessages(string(s.Uid))

	logx.WithContext(ctx).Infof("game %s over after %d moves: %s", s.Uid, recode.Steps, reason)
	return nil
}

// ShortestPartition picks the audit partition with the fewest waiting games.
func ShortestPartition(rds *redis.Redis) (message.RedisPartition, error) {
	minPartition := message.RedisPartition(-1)
	minLen := 0
	for _, p := range message.RedisPartitions {
		length, err := rds.Llen(p.ListKey())
		if err != nil {
			return -1, err
		}

		if minPartition == -1 || length < minLen {
			minLen = length
			minPartition = p
		}
	}
	return minPartition, nil
}
