package moverecord

import (
	"time"

	"github.com/HuXin0817/weiqi/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameEndRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid message.GameUid `bson:"gameUid"`
	Steps   int             `bson:"steps"`
	Winner  string          `bson:"winner"`
	Reason  string          `bson:"reason"`
}

func (r *GameEndRecode) meta() (*primitive.ObjectID, *time.Time, *time.Time) {
	return &r.ID, &r.CreateAt, &r.UpdateAt
}

func (r *GameEndRecode) gameUid() message.GameUid { return r.GameUid }
