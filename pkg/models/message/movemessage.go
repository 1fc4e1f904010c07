package message

import "github.com/bytedance/sonic"

// MoveMessage is one line of a game transcript.
type MoveMessage struct {
	TimeStamp
	GameUid
	StepCount int
	Color     string
	Vertex    string
}

func NewMoveMessage(str string) (newMoveMessage MoveMessage, err error) {
	err = sonic.UnmarshalString(str, &newMoveMessage)
	return
}

func (m MoveMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
