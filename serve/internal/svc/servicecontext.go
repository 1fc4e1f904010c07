package svc

import (
	"context"
	"fmt"

	"github.com/HuXin0817/weiqi/pkg/env"
	"github.com/HuXin0817/weiqi/pkg/models/message"
	"github.com/HuXin0817/weiqi/pkg/models/message/moverecord"
	"github.com/HuXin0817/weiqi/pkg/models/model"
	"github.com/HuXin0817/weiqi/pkg/models/pusher"
	"github.com/HuXin0817/weiqi/serve/internal/config"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type ServiceContext struct {
	Config           config.Config
	RedisClient      *redis.Redis
	Records          moverecord.Store
	Games            *Registry
	TranscriptPusher *pusher.Pusher[message.MoveMessage]
	PartitionPusher  map[message.RedisPartition]*pusher.Pusher[string]
}

func NewServiceContext(c config.Config) *ServiceContext {
	if c.Redis.Pass == "" {
		c.Redis.Pass = env.RedisPassWord
	}

	if c.MongoConf.PassWord == "" {
		c.MongoConf.PassWord = env.MongoPassWord
	}

	records := moverecord.NewMemoryStore()
	if c.MongoConf.Url != "" {
		c.MongoConf.Url = fmt.Sprintf(c.MongoConf.Url, c.MongoConf.PassWord)
		records = moverecord.NewStore(c.MongoConf.Url, c.MongoConf.DataBaseName)
	} else {
		logx.Info("no mongo configured, game records are kept in memory")
	}

	return NewServiceContextWith(c, redis.MustNewRedis(c.Redis), records)
}

// NewServiceContextWith builds the context on already connected stores and
// starts its pushers.
func NewServiceContextWith(c config.Config, rds *redis.Redis, records moverecord.Store) *ServiceContext {
	svcCtx := &ServiceContext{
		Config:          c,
		RedisClient:     rds,
		Records:         records,
		Games:           NewRegistry(),
		PartitionPusher: make(map[message.RedisPartition]*pusher.Pusher[string]),
	}

	svcCtx.TranscriptPusher = pusher.NewPusher(pusher.WithPushLogic(svcCtx.pushTranscripts))
	svcCtx.TranscriptPusher.Start()

	for _, redisPartition := range message.RedisPartitions {
		lock := model.NewLock(rds, redisPartition.LockName())

		svcCtx.PartitionPusher[redisPartition] = pusher.NewPusher(pusher.WithPushLogic(func(pushMessages ...string) error {
			return lock.Do(context.Background(), func() error {
				messages := make([]any, 0, len(pushMessages))
				for _, m := range pushMessages {
					messages = append(messages, m)
				}

				if _, err := rds.Lpush(redisPartition.ListKey(), messages...); err != nil {
					return err
				}

				redisPartitionLength, err := rds.Llen(redisPartition.ListKey())
				if err != nil {
					return err
				}

				return rds.Expire(redisPartition.ListKey(), c.StepExpire*redisPartitionLength)
			})
		}))

		svcCtx.PartitionPusher[redisPartition].Start()
	}

	return svcCtx
}

// pushTranscripts appends the buffered moves to the transcript list of
// their games, in playing order.
func (s *ServiceContext) pushTranscripts(moves ...message.MoveMessage) error {
	var (
		order   []message.GameUid
		grouped = make(map[message.GameUid][]any)
	)

	for _, m := range moves {
		if _, ok := grouped[m.GameUid]; !ok {
			order = append(order, m.GameUid)
		}
		grouped[m.GameUid] = append(grouped[m.GameUid], m.String())
	}

	for _, uid := range order {
		err := model.NewLock(s.RedisClient, uid.LockName()).Do(context.Background(), func() error {
			if _, err := s.RedisClient.Rpush(uid.TranscriptKey(), grouped[uid]...); err != nil {
				return err
			}
			return s.RedisClient.Expire(uid.TranscriptKey(), s.Config.StepExpire)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// Stop flushes the pushers.
func (s *ServiceContext) Stop() {
	s.TranscriptPusher.Stop()
	for _, p := range s.PartitionPusher {
		p.Stop()
	}
}
