package moverecord

import (
	"context"

	"github.com/HuXin0817/weiqi/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const MoveRecodeCollectionName = "move_recode"

var _ MoveRecodeModel = (*customMoveRecodeModel)(nil)

type (
	// MoveRecodeModel is an interface to be customized, add more methods here,
	// and implement the added methods in customMoveRecodeModel.
	MoveRecodeModel interface {
		moveRecodeModel
		FindAllByGameUid(ctx context.Context, gameUid message.GameUid) ([]*MoveRecode, error)
	}

	customMoveRecodeModel struct {
		*defaultMoveRecodeModel
	}
)

// NewMoveRecodeModel returns a model for the mongo.
func NewMoveRecodeModel(url, db string) MoveRecodeModel {
	conn := mon.MustNewModel(url, db, MoveRecodeCollectionName)
	return &customMoveRecodeModel{
		defaultMoveRecodeModel: newDefaultMoveRecodeModel(conn),
	}
}

// FindAllByGameUid returns the transcript of a game in playing order.
func (m *customMoveRecodeModel) FindAllByGameUid(ctx context.Context, gameUid message.GameUid) ([]*MoveRecode, error) {
	var data []*MoveRecode

	opts := options.Find().SetSort(bson.D{{Key: "stepCount", Value: 1}})
	if err := m.conn.Find(ctx, &data, bson.M{"gameUid": gameUid}, opts); err != nil {
		return nil, err
	}
	return data, nil
}
