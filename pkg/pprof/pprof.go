// Package pprof exposes the runtime profiles over http.
package pprof

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

// Register mounts the profiles under /debug/pprof of router.
func Register(router *gin.Engine) {
	pprof.Register(router)
}

// Serve runs a profile-only server on addr in the background.
func Serve(addr string) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	Register(router)

	go func() {
		logx.Infof("pprof listening on %s", addr)
		if err := router.Run(addr); err != nil {
			logx.Errorf("pprof: %v", err)
		}
	}()
}
