package moverecord

import (
	"time"

	"github.com/HuXin0817/weiqi/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoveRecode is one played move. Vertex is "pass" or "resign" for moves
// without a point.
type MoveRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid       message.GameUid `bson:"gameUid"`
	StepCount     int             `bson:"stepCount"`
	Color         string          `bson:"color"`
	Vertex        string          `bson:"vertex"`
	BlackCaptures int             `bson:"blackCaptures"`
	WhiteCaptures int             `bson:"whiteCaptures"`
}

func (r *MoveRecode) meta() (*primitive.ObjectID, *time.Time, *time.Time) {
	return &r.ID, &r.CreateAt, &r.UpdateAt
}

func (r *MoveRecode) gameUid() message.GameUid { return r.GameUid }
