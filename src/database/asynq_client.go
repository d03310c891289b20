package database

import (
	"github.com/hibiken/asynq"
)

// InitAsynq returns a queue client on the same Redis, or nil when Redis is
// not configured.
func InitAsynq(redisAddr string) *asynq.Client {
	if redisAddr == "" {
		return nil
	}
	return asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
}
