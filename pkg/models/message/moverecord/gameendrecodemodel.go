package moverecord

import (
	"context"

	"github.com/HuXin0817/weiqi/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
)

const GameEndRecodeCollectionName = "game_end_recode"

var _ GameEndRecodeModel = (*customGameEndRecodeModel)(nil)

type (
	// GameEndRecodeModel is an interface to be customized, add more methods here,
	// and implement the added methods in customGameEndRecodeModel.
	GameEndRecodeModel interface {
		gameEndRecodeModel
		FindByGameUid(ctx context.Context, gameUid message.GameUid) (*GameEndRecode, error)
	}

	customGameEndRecodeModel struct {
		*defaultGameEndRecodeModel
	}
)

// NewGameEndRecodeModel returns a model for the mongo.
func NewGameEndRecodeModel(url, db string) GameEndRecodeModel {
	conn := mon.MustNewModel(url, db, GameEndRecodeCollectionName)
	return &customGameEndRecodeModel{
		defaultGameEndRecodeModel: newDefaultGameEndRecodeModel(conn),
	}
}

func (m *customGameEndRecodeModel) FindByGameUid(ctx context.Context, gameUid message.GameUid) (*GameEndRecode, error) {
	var data GameEndRecode

	err := m.conn.FindOne(ctx, &data, bson.M{"gameUid": gameUid})
	switch err {
	case nil:
		return &data, nil
	case mon.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
