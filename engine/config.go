package main

import (
	"fmt"

	"github.com/HuXin0817/weiqi/pkg/env"
	"github.com/HuXin0817/weiqi/pkg/models/message/moverecord"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	service.ServiceConf
	Redis     redis.RedisConf
	MongoConf struct {
		Url          string
		DataBaseName string
		PassWord     string `json:",optional"`
	}
	// Pprof is the address profiles are served on, empty to disable.
	Pprof string `json:",optional"`
}

func (c Config) redisClient() *redis.Redis {
	if c.Redis.Pass == "" {
		c.Redis.Pass = env.RedisPassWord
	}
	return redis.MustNewRedis(c.Redis)
}

func (c Config) records() moverecord.Store {
	if c.MongoConf.PassWord == "" {
		c.MongoConf.PassWord = env.MongoPassWord
	}
	url := fmt.Sprintf(c.MongoConf.Url, c.MongoConf.PassWord)
	logx.Infof("auditing records of %s", c.MongoConf.DataBaseName)
	return moverecord.NewStore(url, c.MongoConf.DataBaseName)
}
