package moverecord

import (
	"time"

	"github.com/HuXin0817/weiqi/pkg/models/message"
	"github.com/HuXin0817/weiqi/pkg/models/weiqi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameStartRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid  message.GameUid `bson:"gameUid"`
	Height   int             `bson:"height"`
	Width    int             `bson:"width"`
	Rules    weiqi.Rules     `bson:"rules"`
	Handicap []string        `bson:"handicap,omitempty"`
}

func (r *GameStartRecode) meta() (*primitive.ObjectID, *time.Time, *time.Time) {
	return &r.ID, &r.CreateAt, &r.UpdateAt
}

func (r *GameStartRecode) gameUid() message.GameUid { return r.GameUid }
