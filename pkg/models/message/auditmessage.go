package message

import "github.com/bytedance/sonic"

type AuditKey struct {
	GameUid
}

func (a AuditKey) String() string {
	str, _ := sonic.MarshalString(a)
	return "Audit-" + str
}

// AuditVerdict is the result of replaying a finished game.
// FailedStep is the first step that could not be replayed, 0 when Legal.
type AuditVerdict struct {
	GameUid
	Moves      int
	Legal      bool
	FailedStep int
	Reason     string `json:",omitempty"`
}

func NewAuditVerdict(s string) (newAuditVerdict AuditVerdict, err error) {
	err = sonic.UnmarshalString(s, &newAuditVerdict)
	return
}

func (a AuditVerdict) String() string {
	str, _ := sonic.MarshalString(a)
	return str
}
