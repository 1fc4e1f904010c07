package handler

import (
	"github.com/HuXin0817/weiqi/serve/internal/svc"
	"github.com/gin-gonic/gin"
)

func RegisterHandlers(router *gin.Engine, svcCtx *svc.ServiceContext) {
	games := router.Group("/games")
	{
		games.POST("", NewGameHandler(svcCtx))
		games.GET("/:uid", GameStateHandler(svcCtx))
		games.DELETE("/:uid", EndGameHandler(svcCtx))
		games.POST("/:uid/moves", PlayMoveHandler(svcCtx))
		games.GET("/:uid/legal", LegalMovesHandler(svcCtx))
		games.POST("/:uid/replay", ReplayGameHandler(svcCtx))
		games.GET("/:uid/verdict", VerdictHandler(svcCtx))
	}
}
