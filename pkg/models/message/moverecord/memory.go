package moverecord

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/HuXin0817/weiqi/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type recode interface {
	meta() (id *primitive.ObjectID, createAt, updateAt *time.Time)
	gameUid() message.GameUid
}

// memoryModel keeps documents of one collection in process memory.
type memoryModel[T any, P interface {
	*T
	recode
}] struct {
	lock sync.RWMutex
	docs []T
}

func (m *memoryModel[T, P]) Insert(_ context.Context, data P) error {
	id, createAt, updateAt := data.meta()
	if id.IsZero() {
		*id = primitive.NewObjectID()
		*createAt = time.Now()
		*updateAt = time.Now()
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	m.docs = append(m.docs, *data)
	return nil
}

func (m *memoryModel[T, P]) indexOf(oid primitive.ObjectID) int {
	for i := range m.docs {
		if id, _, _ := P(&m.docs[i]).meta(); *id == oid {
			return i
		}
	}
	return -1
}

func (m *memoryModel[T, P]) FindOne(_ context.Context, id string) (P, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjectId
	}

	m.lock.RLock()
	defer m.lock.RUnlock()

	i := m.indexOf(oid)
	if i < 0 {
		return nil, ErrNotFound
	}
	doc := m.docs[i]
	return P(&doc), nil
}

func (m *memoryModel[T, P]) Update(_ context.Context, data P) (*mongo.UpdateResult, error) {
	id, _, updateAt := data.meta()
	*updateAt = time.Now()

	m.lock.Lock()
	defer m.lock.Unlock()

	i := m.indexOf(*id)
	if i < 0 {
		return &mongo.UpdateResult{}, nil
	}
	m.docs[i] = *data
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memoryModel[T, P]) Delete(_ context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidObjectId
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	i := m.indexOf(oid)
	if i < 0 {
		return 0, nil
	}
	m.docs = slices.Delete(m.docs, i, i+1)
	return 1, nil
}

func (m *memoryModel[T, P]) findByGameUid(gameUid message.GameUid) []P {
	m.lock.RLock()
	defer m.lock.RUnlock()

	var found []P
	for i := range m.docs {
		if P(&m.docs[i]).gameUid() == gameUid {
			doc := m.docs[i]
			found = append(found, P(&doc))
		}
	}
	return found
}

type (
	memoryGameStartRecodeModel struct {
		*memoryModel[GameStartRecode, *GameStartRecode]
	}

	memoryMoveRecodeModel struct {
		*memoryModel[MoveRecode, *MoveRecode]
	}

	memoryGameEndRecodeModel struct {
		*memoryModel[GameEndRecode, *GameEndRecode]
	}
)

var (
	_ GameStartRecodeModel = memoryGameStartRecodeModel{}
	_ MoveRecodeModel      = memoryMoveRecodeModel{}
	_ GameEndRecodeModel   = memoryGameEndRecodeModel{}
)

func (m memoryGameStartRecodeModel) FindByGameUid(_ context.Context, gameUid message.GameUid) (*GameStartRecode, error) {
	found := m.findByGameUid(gameUid)
	if len(found) == 0 {
		return nil, ErrNotFound
	}
	return found[0], nil
}

func (m memoryGameEndRecodeModel) FindByGameUid(_ context.Context, gameUid message.GameUid) (*GameEndRecode, error) {
	found := m.findByGameUid(gameUid)
	if len(found) == 0 {
		return nil, ErrNotFound
	}
	return found[0], nil
}

func (m memoryMoveRecodeModel) FindAllByGameUid(_ context.Context, gameUid message.GameUid) ([]*MoveRecode, error) {
	found := m.findByGameUid(gameUid)
	slices.SortStableFunc(found, func(a, b *MoveRecode) int {
		return cmp.Compare(a.StepCount, b.StepCount)
	})
	return found, nil
}

// NewMemoryStore keeps records in process memory. They are lost on exit.
func NewMemoryStore() Store {
	return Store{
		GameStart: memoryGameStartRecodeModel{&memoryModel[GameStartRecode, *GameStartRecode]{}},
		Move:      memoryMoveRecodeModel{&memoryModel[MoveRecode, *MoveRecode]{}},
		GameEnd:   memoryGameEndRecodeModel{&memoryModel[GameEndRecode, *GameEndRecode]{}},
	}
}
