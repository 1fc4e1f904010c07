package svc

import (
	"testing"
	"time"

	"github.com/HuXin0817/weiqi/pkg/models/game"
	"github.com/HuXin0817/weiqi/pkg/models/message"
	"github.com/HuXin0817/weiqi/pkg/models/message/moverecord"
	"github.com/HuXin0817/weiqi/pkg/models/weiqi"
	"github.com/HuXin0817/weiqi/serve/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"
)

func newServiceContext(t *testing.T) *ServiceContext {
	rds := redistest.CreateRedis(t)
	svcCtx := NewServiceContextWith(config.Config{StepExpire: 120}, rds, moverecord.NewMemoryStore())
	t.Cleanup(svcCtx.Stop)
	return svcCtx
}

func TestRegistry(t *testing.T) {
	g, err := game.NewGame(9, 9, weiqi.DefaultRules())
	require.NoError(t, err)

	r := NewRegistry()
	s := &Session{Game: g, Uid: message.NewGameUid()}
	r.Add(s)

	got, ok := r.Get(s.Uid)
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, r.Len())

	r.Remove(s.Uid)
	_, ok = r.Get(s.Uid)
	assert.False(t, ok)
}

func TestRegistryAddIfAbsent(t *testing.T) {
	g, err := game.NewGame(9, 9, weiqi.DefaultRules())
	require.NoError(t, err)

	r := NewRegistry()
	first := &Session{Game: g, Uid: message.NewGameUid()}
	second := &Session{Game: g, Uid: first.Uid}

	assert.True(t, r.AddIfAbsent(first))
	assert.False(t, r.AddIfAbsent(second))

	got, ok := r.Get(first.Uid)
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestTranscriptPush(t *testing.T) {
	svcCtx := newServiceContext(t)
	uid, other := message.NewGameUid(), message.NewGameUid()
	now := message.NewTimeStamp(time.Now())

	svcCtx.TranscriptPusher.AddMessages(
		message.MoveMessage{TimeStamp: now, GameUid: uid, StepCount: 1, Color: "Black", Vertex: "D4"},
		message.MoveMessage{TimeStamp: now, GameUid: other, StepCount: 1, Color: "Black", Vertex: "C3"},
		message.MoveMessage{TimeStamp: now, GameUid: uid, StepCount: 2, Color: "White", Vertex: "pass"},
	)
	require.NoError(t, svcCtx.TranscriptPusher.PushAll())

	lines, err := svcCtx.RedisClient.Lrange(uid.TranscriptKey(), 0, -1)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	first, err := message.NewMoveMessage(lines[0])
	require.NoError(t, err)
	assert.Equal(t, "D4", first.Vertex)

	second, err := message.NewMoveMessage(lines[1])
	require.NoError(t, err)
	assert.Equal(t, 2, second.StepCount)

	ttl, err := svcCtx.RedisClient.Ttl(uid.TranscriptKey())
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestPartitionPush(t *testing.T) {
	svcCtx := newServiceContext(t)
	partition := message.RedisPartitions[2]

	svcCtx.PartitionPusher[partition].AddMessages("a", "b")
	require.NoError(t, svcCtx.PartitionPusher[partition].PushAll())

	length, err := svcCtx.RedisClient.Llen(partition.ListKey())
	require.NoError(t, err)
	assert.Equal(t, 2, length)
}
