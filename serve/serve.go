package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HuXin0817/weiqi/pkg/pprof"
	"github.com/HuXin0817/weiqi/serve/internal/config"
	"github.com/HuXin0817/weiqi/serve/internal/handler"
	"github.com/HuXin0817/weiqi/serve/internal/svc"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/service"
)

var (
	configFile = flag.String("f", "etc/serve.yaml", "the config file")
	serveAddr  = flag.String("h", "", "the serve address, overrides ListenOn")
)

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	c.MustSetUp()
	if *serveAddr != "" {
		c.ListenOn = *serveAddr
	}

	ctx := svc.NewServiceContext(c)
	defer ctx.Stop()

	if c.Mode == service.ProMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterHandlers(router, ctx)

	if c.Mode == service.DevMode || c.Mode == service.TestMode {
		pprof.Register(router)
	}

	server := &http.Server{Addr: c.ListenOn, Handler: router}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Must(err)
		}
	}()

	fmt.Printf("Starting http server at %s...\n", c.ListenOn)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Errorf("shutdown: %v", err)
	}
}
