package moverecord

import (
	"context"

	"github.com/HuXin0817/weiqi/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
)

const GameStartRecodeCollectionName = "game_start_recode"

var _ GameStartRecodeModel = (*customGameStartRecodeModel)(nil)

type (
	// GameStartRecodeModel is an interface to be customized, add more methods here,
	// and implement the added methods in customGameStartRecodeModel.
	GameStartRecodeModel interface {
		gameStartRecodeModel
		FindByGameUid(ctx context.Context, gameUid message.GameUid) (*GameStartRecode, error)
	}

	customGameStartRecodeModel struct {
		*defaultGameStartRecodeModel
	}
)

// NewGameStartRecodeModel returns a model for the mongo.
func NewGameStartRecodeModel(url, db string) GameStartRecodeModel {
	conn := mon.MustNewModel(url, db, GameStartRecodeCollectionName)
	return &customGameStartRecodeModel{
		defaultGameStartRecodeModel: newDefaultGameStartRecodeModel(conn),
	}
}

func (m *customGameStartRecodeModel) FindByGameUid(ctx context.Context, gameUid message.GameUid) (*GameStartRecode, error) {
	var data GameStartRecode

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
