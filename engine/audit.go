package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/HuXin0817/weiqi/pkg/models/game"
	"github.com/HuXin0817/weiqi/pkg/models/message"
	"github.com/HuXin0817/weiqi/pkg/models/message/moverecord"
)

// Audit replays the recorded transcript of a game under its recorded rules.
// An error means the records could not be read; a bad transcript is
// reported in the verdict.
func Audit(ctx context.Context, records moverecord.Store, uid message.GameUid) (message.AuditVerdict, error) {
	verdict := message.AuditVerdict{GameUid: uid}

	start, err := records.GameStart.FindByGameUid(ctx, uid)
	if errors.Is(err, moverecord.ErrNotFound) {
		verdict.Reason = "no start record"
		return verdict, nil
	} else if err != nil {
		return verdict, err
	}

	moves, err := records.Move.FindAllByGameUid(ctx, uid)
	if err != nil {
		return verdict, err
	}
	verdict.Moves = len(moves)

	if _, err = game.Replay(start, moves); err != nil {
		var replayErr *game.ReplayError
		if errors.As(err, &replayErr) {
			verdict.FailedStep = replayErr.Step
		}
		verdict.Reason = err.Error()
		return verdict, nil
	}

	end, err := records.GameEnd.FindByGameUid(ctx, uid)
	switch {
	case errors.Is(err, moverecord.ErrNotFound):
		verdict.Reason = "no end record"
		return verdict, nil
	case err != nil:
		return verdict, err
	case end.Steps != len(moves):
		verdict.Reason = fmt.Sprintf("end record after %d moves, transcript has %d", end.Steps, len(moves))
		return verdict, nil
	}

	verdict.Legal = true
	return verdict, nil
}

// CheckTranscript compares the redis transcript of a game with its recorded
// moves. The service may not have flushed the last moves yet, so a short
// transcript is fine; every line present must match its record.
func CheckTranscript(verdict *message.AuditVerdict, lines []string, moves []*moverecord.MoveRecode) {
	fail := func(step int, reason string) {
		verdict.Legal = false
		verdict.FailedStep = step
		verdict.Reason = reason
	}

	for i, line := range lines {
		m, err := message.NewMoveMessage(line)
		if err != nil {
			fail(i+1, fmt.Sprintf("unreadable transcript line %d", i+1))
			return
		}

		if i >= len(moves) {
			fail(m.StepCount, fmt.Sprintf("transcript has %d moves, records have %d", len(lines), len(moves)))
			return
		}

		r := moves[i]
		if m.StepCount != r.StepCount || m.Color != r.Color || m.Vertex != r.Vertex {
			fail(r.StepCount, fmt.Sprintf("transcript step %d is %s %s, record is %s %s",
				m.StepCount, m.Color, m.Vertex, r.Color, r.Vertex))
			return
		}
	}
}
