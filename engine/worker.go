package main

import (
	"context"
	"errors"
	"time"

	"github.com/HuXin0817/weiqi/pkg/models/message"
	"github.com/HuXin0817/weiqi/pkg/models/message/moverecord"
	"github.com/HuXin0817/weiqi/pkg/models/model"
	"github.com/HuXin0817/weiqi/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type verdictMessage struct {
	message.AuditVerdict
	RollBackFunc func()
}

type Worker struct {
	Redis   *redis.Redis
	Records moverecord.Store
	Pusher  *pusher.Pusher[verdictMessage]

	// WriteVerdict stores one verdict; it defaults to a locked Setex.
	WriteVerdict func(ctx context.Context, v message.AuditVerdict) error
}

func NewWorker(rds *redis.Redis, records moverecord.Store) *Worker {
	w := &Worker{Redis: rds, Records: records}
	w.WriteVerdict = w.setVerdict
	w.Pusher = pusher.NewPusher(pusher.WithPushLogic(w.pushVerdicts))
	return w
}

func (w *Worker) setVerdict(ctx context.Context, v message.AuditVerdict) error {
	key := message.AuditKey{GameUid: v.GameUid}.String()
	return model.NewLock(w.Redis, key+"-Lock").Do(ctx, func() error {
		return w.Redis.SetexCtx(ctx, key, v.String(), SetExpireTime)
	})
}

// pushVerdicts never keeps the batch: a verdict that cannot be written puts
// its game back on the partition to be audited again.
func (w *Worker) pushVerdicts(verdicts ...verdictMessage) error {
	for _, v := range verdicts {
		if err := w.WriteVerdict(context.Background(), v.AuditVerdict); err != nil {
			logx.Errorf("write verdict of %s: %v", v.GameUid, err)
			v.RollBackFunc()
		}
	}

	return nil
}

// audit replays the records and, while the service's transcript has not
// expired, checks it against them.
func (w *Worker) audit(ctx context.Context, uid message.GameUid) (message.AuditVerdict, error) {
	verdict, err := Audit(ctx, w.Records, uid)
	if err != nil || !verdict.Legal {
		return verdict, err
	}

	lines, err := w.Redis.LrangeCtx(ctx, uid.TranscriptKey(), 0, -1)
	if err != nil || len(lines) == 0 {
		return verdict, err
	}

	moves, err := w.Records.Move.FindAllByGameUid(ctx, uid)
	if err != nil {
		return verdict, err
	}

	CheckTranscript(&verdict, lines, moves)
	return verdict, nil
}

// ClaimPartition takes ownership of a partition that has games waiting and
// no owner. ok is false when there is nothing to do.
func (w *Worker) ClaimPartition(ctx context.Context) (partition message.RedisPartition, ok bool, err error) {
	for _, p := range message.RedisPartitions {
		length, err := w.Redis.LlenCtx(ctx, p.ListKey())
		if err != nil {
			return -1, false, err
		}

		if length == 0 {
			continue
		}

		claimed, err := w.Redis.SetnxExCtx(ctx, p.OwnerKey(), string(message.NewTimeStamp(time.Now())), OnceWorkingTime)
		if err != nil {
			return -1, false, err
		}

		if claimed {
			return p, true, nil
		}
	}

	return -1, false, nil
}

// RollBack puts a game back on its partition.
func (w *Worker) RollBack(p message.RedisPartition, uid string) {
	for range 20 {
		if _, err := w.Redis.Lpush(p.ListKey(), uid); err == nil {
			return
		}
		time.Sleep(time.Second / 2)
	}
	logx.Errorf("lost audit of %s", uid)
}

// Work audits the games of an owned partition until it is empty.
func (w *Worker) Work(ctx context.Context, p message.RedisPartition) (err error) {
	logx.Infof("start working at partition: %d", p)

	defer func() {
		if _, delErr := w.Redis.Del(p.OwnerKey()); delErr != nil && err == nil {
			err = delErr
		}
	}()

	for ctx.Err() == nil {
		if err = w.Redis.ExpireCtx(ctx, p.OwnerKey(), OnceWorkingTime); err != nil {
			return err
		}

		l, err := w.Redis.LlenCtx(ctx, p.ListKey())
		if err != nil {
			return err
		}

		if l == 0 {
			return nil
		}

		uid, err := w.Redis.RpopCtx(ctx, p.ListKey())
		if errors.Is(err, redis.Nil) {
			return nil
		} else if err != nil {
			return err
		}

		if uid == "" {
			continue
		}

		done, err := w.Redis.ExistsCtx(ctx, message.AuditKey{GameUid: message.GameUid(uid)}.String())
		if err != nil {
			w.RollBack(p, uid)
			return err
		}

		if done {
			continue
		}

		verdict, err := w.audit(ctx, message.GameUid(uid))
		if err != nil {
			w.RollBack(p, uid)
			return err
		}

		logx.Infof("=> %s", verdict)
		w.Pusher.AddMessages(verdictMessage{
			AuditVerdict: verdict,
			RollBackFunc: func() { w.RollBack(p, uid) },
		})
	}

	return ctx.Err()
}
