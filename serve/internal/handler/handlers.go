package handler

import (
	"errors"
	"net/http"

	"github.com/HuXin0817/weiqi/pkg/models/board"
	"github.com/HuXin0817/weiqi/pkg/models/game"
	"github.com/HuXin0817/weiqi/pkg/models/vertex"
	"github.com/HuXin0817/weiqi/pkg/models/weiqi"
	"github.com/HuXin0817/weiqi/serve/internal/logic"
	"github.com/HuXin0817/weiqi/serve/internal/svc"
	"github.com/HuXin0817/weiqi/serve/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

func NewGameHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.NewGameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
			return
		}

		resp, err := logic.NewNewGameLogic(c.Request.Context(), svcCtx).NewGame(&req)
		respond(c, http.StatusCreated, resp, err)
	}
}

func GameStateHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := logic.NewGameStateLogic(c.Request.Context(), svcCtx).GameState(c.Param("uid"))
		respond(c, http.StatusOK, resp, err)
	}
}

func PlayMoveHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PlayMoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
			return
		}

		resp, err := logic.NewPlayMoveLogic(c.Request.Context(), svcCtx).PlayMove(c.Param("uid"), &req)
		respond(c, http.StatusOK, resp, err)
	}
}

func LegalMovesHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := logic.NewLegalMovesLogic(c.Request.Context(), svcCtx).LegalMoves(c.Param("uid"), c.Query("color"))
		respond(c, http.StatusOK, resp, err)
	}
}

func ReplayGameHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := logic.NewReplayGameLogic(c.Request.Context(), svcCtx).ReplayGame(c.Param("uid"))
		respond(c, http.StatusOK, resp, err)
	}
}

func EndGameHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := logic.NewEndGameLogic(c.Request.Context(), svcCtx).EndGame(c.Param("uid"))
		respond(c, http.StatusOK, resp, err)
	}
}

func VerdictHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := logic.NewVerdictLogic(c.Request.Context(), svcCtx).Verdict(c.Param("uid"))
		respond(c, http.StatusOK, resp, err)
	}
}

func respond(c *gin.Context, status int, resp any, err error) {
	if err != nil {
		code, name := errorStatus(err)
		if code == http.StatusInternalServerError {
			logx.WithContext(c.Request.Context()).Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		}
		c.JSON(code, types.ErrorResponse{Error: err.Error(), Code: name})
		return
	}
	c.JSON(status, resp)
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, logic.ErrGameNotFound):
		return http.StatusNotFound, "GAME_NOT_FOUND"
	case errors.Is(err, weiqi.ErrIllegalMove):
		return http.StatusConflict, "ILLEGAL_MOVE"
	case errors.Is(err, logic.ErrGameOver), errors.Is(err, logic.ErrGameExists), errors.Is(err, weiqi.ErrGameStarted):
		return http.StatusConflict, "GAME_STATE"
	case errors.Is(err, logic.ErrBoardSizeOutOfRange), errors.Is(err, game.ErrBoardSize):
		return http.StatusBadRequest, "BOARD_SIZE"
	case errors.Is(err, vertex.ErrInvalidVertex), errors.Is(err, weiqi.ErrInvalidColor),
		errors.Is(err, weiqi.ErrTooManyStones), errors.Is(err, board.ErrHoshiNotProvided),
		errors.Is(err, logic.ErrInvalidRules):
		return http.StatusBadRequest, "INVALID_REQUEST"
	case errors.Is(err, game.ErrStepOutOfOrder):
		return http.StatusUnprocessableEntity, "CORRUPT_TRANSCRIPT"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}
