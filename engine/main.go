package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"github.com/HuXin0817/weiqi/pkg/pprof"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	OnceWorkingTime = 180                 // second
	SetExpireTime   = OnceWorkingTime * 3 // second
)

var configFile = flag.String("f", "etc/engine.yaml", "the config file")

func main() {
	flag.Parse()

	var c Config
	conf.MustLoad(*configFile, &c)
	c.MustSetUp()

	if c.Pprof != "" {
		pprof.Serve(c.Pprof)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := NewWorker(c.redisClient(), c.records())
	w.Pusher.Start()
	defer w.Pusher.Stop()

	for ctx.Err() == nil {
		partition, ok, err := w.ClaimPartition(ctx)
		if err != nil {
			logx.Must(err)
		}

		if ok {
			if err = w.Work(ctx, partition); err != nil {
				logx.Errorf("partition %d: %v", partition, err)
			}
		}

		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
		}
	}
}
