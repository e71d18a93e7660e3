package lockout

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
)

// RedisStore shares lockout state across instances. Failures are a counter
// with the cooldown as TTL; reaching max sets a lock key.
type RedisStore struct {
	rdb      *redis.Client
	max      int
	cooldown time.Duration
	log      zerolog.Logger
}

// NewRedisStore returns a Redis-backed lockout store. maxAttempts 0 = disabled.
func NewRedisStore(rdb *redis.Client, maxAttempts, cooldownSeconds int, log zerolog.Logger) *RedisStore {
	return &RedisStore{rdb: rdb, max: maxAttempts, cooldown: cooldown(cooldownSeconds), log: log}
}

func (s *RedisStore) failKey(email string) string { return "lockout:fail:" + key(email) }
func (s *RedisStore) lockKey(email string) string { return "lockout:lock:" + key(email) }

func (s *RedisStore) IsLocked(ctx context.Context, email string) (bool, int) {
	if s.max <= 0 {
		return false, 0
	}
	ttl, err := s.rdb.TTL(ctx, s.lockKey(email)).Result()
	if err != nil {
		s.log.Warn().Err(err).Msg("lockout: ttl lookup failed")
		return false, 0
	}
	if ttl <= 0 {
		return false, 0
	}
	secs := int(ttl.Seconds())
	if secs < 1 {
		secs = 1
	}
	return true, secs
}

func (s *RedisStore) RecordFailure(ctx context.Context, email string) {
	if s.max <= 0 {
		return
	}
	fk := s.failKey(email)
	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, fk)
	pipe.Expire(ctx, fk, s.cooldown)
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warn().Err(err).Msg("lockout: record failure")
		return
	}
	if incr.Val() >= int64(s.max) {
		if err := s.rdb.Set(ctx, s.lockKey(email), 1, s.cooldown).Err(); err != nil {
			s.log.Warn().Err(err).Msg("lockout: set lock")
		}
		s.rdb.Del(ctx, fk)
	}
}

func (s *RedisStore) RecordSuccess(ctx context.Context, email string) {
	if s.max <= 0 {
		return
	}
	s.rdb.Del(ctx, s.failKey(email), s.lockKey(email))
}

var _ ports.LoginLockoutStore = (*RedisStore)(nil)
