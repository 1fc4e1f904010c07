package config

import (
	"github.com/HuXin0817/weiqi/pkg/models/weiqi"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	service.ServiceConf
	ListenOn     string `json:",default=0.0.0.0:8000"`
	MaxBoardSize int    `json:",default=19"`
	StepExpire   int    `json:",default=120"` // seconds an idle game keeps its step key
	Redis        redis.RedisConf

	// An empty Url keeps records in memory.
	MongoConf struct {
		Url          string `json:",optional"`
		DataBaseName string `json:",optional"`
		PassWord     string `json:",optional"`
	}

	Rules weiqi.Rules
}
