package message

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveMessage(t *testing.T) {
	m := MoveMessage{
		TimeStamp: NewTimeStamp(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)),
		GameUid:   NewGameUid(),
		StepCount: 3,
		Color:     "Black",
		Vertex:    "D4",
	}

	got, err := NewMoveMessage(m.String())
	require.NoError(t, err)
	assert.Equal(t, m, got)

	ts, err := got.TimeStamp.Time()
	require.NoError(t, err)
	assert.Equal(t, 30, ts.Minute())

	_, err = NewMoveMessage("{")
	assert.Error(t, err)
}

func TestAuditVerdict(t *testing.T) {
	v := AuditVerdict{GameUid: NewGameUid(), Moves: 12, FailedStep: 7, Reason: "illegal move"}
	got, err := NewAuditVerdict(v.String())
	require.NoError(t, err)
	assert.Equal(t, v, got)
	assert.Contains(t, AuditKey{GameUid: v.GameUid}.String(), string(v.GameUid))
}

func TestGameUid(t *testing.T) {
	uid := NewGameUid()
	parsed, err := ParseGameUid(string(uid))
	require.NoError(t, err)
	assert.Equal(t, uid, parsed)
	assert.NotEqual(t, uid.StepKey(), uid.TranscriptKey())

	_, err = ParseGameUid("not-a-uuid")
	assert.Error(t, err)
}

func TestRedisPartitions(t *testing.T) {
	require.Len(t, RedisPartitions, partitionNumber)
	seen := make(map[string]bool)
	for _, p := range RedisPartitions {
		for _, key := range []string{p.ListKey(), p.OwnerKey(), p.LockName()} {
			assert.False(t, seen[key], key)
			seen[key] = true
		}
	}
}
