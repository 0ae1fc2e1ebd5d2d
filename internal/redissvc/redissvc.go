package redissvc

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	logKeyPrefix = "exlog:"
	logTTL       = 5 * time.Minute
)

// RedisService caches full-log responses per user. Entries are append-only,
// so the cache only ever needs invalidation on append.
type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
	}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func (s *RedisService) Ctx() context.Context {
	return s.ctx
}

// CachedLog returns the cached unfiltered log response for a user, if any.
func (s *RedisService) CachedLog(userID string) ([]byte, bool) {
	payload, err := s.rdb.Get(s.ctx, logKeyPrefix+userID).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// StoreLog caches the unfiltered log response for a user.
func (s *RedisService) StoreLog(userID string, response any) {
	payload, err := json.Marshal(response)
	if err != nil {
		return
	}
	if err := s.rdb.Set(s.ctx, logKeyPrefix+userID, payload, logTTL).Err(); err != nil {
		log.Printf("could not cache log for user %s: %v", userID, err)
	}
}

// InvalidateLog drops the cached log response after an append.
func (s *RedisService) InvalidateLog(userID string) {
	if err := s.rdb.Del(s.ctx, logKeyPrefix+userID).Err(); err != nil {
		log.Printf("could not invalidate log cache for user %s: %v", userID, err)
	}
}
