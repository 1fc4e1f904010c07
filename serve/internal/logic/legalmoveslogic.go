package logic

import (
	"context"

	"github.com/HuXin0817/weiqi/pkg/models/weiqi"
	"github.com/HuXin0817/weiqi/serve/internal/svc"
	"github.com/HuXin0817/weiqi/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type LegalMovesLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewLegalMovesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LegalMovesLogic {
	return &LegalMovesLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// LegalMoves lists the vertices color may play; an empty color means the
// side to move. A finished game has none.
func (l *LegalMovesLogic) LegalMoves(uid, color string) (*types.LegalMovesResponse, error) {
	s, err := lookup(l.svcCtx, uid)
	if err != nil {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()

	c := s.History.CurrentState().ToMove
	if color != "" {
		if c, err = weiqi.ParseColor(color); err != nil {
			return nil, err
		}
	}

	resp := &types.LegalMovesResponse{
		GameUid:  string(s.Uid),
		Color:    c.String(),
		Vertices: []string{},
	}
	if !s.Over {
		resp.Vertices = append(resp.Vertices, s.LegalVertices(c)...)
	}
	return resp, nil
}
