// Package env reads the secrets that are kept out of the yaml config files.
package env

import "os"

var (
	RedisPassWord = os.Getenv("REDIS_PASSWORD")
	MongoPassWord = os.Getenv("MONGO_PASSWORD")
)
