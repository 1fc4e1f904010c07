package message

import "github.com/google/uuid"

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

func ParseGameUid(s string) (GameUid, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return GameUid(u.String()), nil
}

// StepKey holds the step count of a running game.
func (g GameUid) StepKey() string {
	return "Step-" + string(g)
}

func (g GameUid) TranscriptKey() string {
	return "Transcript-" + string(g)
}

func (g GameUid) LockName() string {
	return "Lock-" + string(g)
}
