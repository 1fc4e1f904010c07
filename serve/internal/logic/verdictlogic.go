package logic

import (
	"context"

	"github.com/HuXin0817/weiqi/pkg/models/message"
	"github.com/HuXin0817/weiqi/serve/internal/svc"
	"github.com/HuXin0817/weiqi/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type VerdictLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewVerdictLogic(ctx context.Context, svcCtx *svc.ServiceContext) *VerdictLogic {
	return &VerdictLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Verdict reads the audit the engine left for a finished game.
func (l *VerdictLogic) Verdict(uid string) (*types.VerdictResponse, error) {
	key := message.AuditKey{GameUid: message.GameUid(uid)}
	value, err := l.svcCtx.RedisClient.GetCtx(l.ctx, key.String())
	if err != nil {
		return nil, err
	}

	if value == "" {
		return &types.VerdictResponse{GameUid: uid}, nil
	}

	verdict, err := message.NewAuditVerdict(value)
	if err != nil {
		return nil, err
	}

	return &types.VerdictResponse{
		GameUid:    uid,
		Audited:    true,
		Moves:      verdict.Moves,
		Legal:      verdict.Legal,
		FailedStep: verdict.FailedStep,
		Reason:     verdict.Reason,
	}, nil
}
