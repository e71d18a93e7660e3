// Package cache fronts hot read paths with Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

const mentorsKey = "mentors:all"

// MentorPool caches the mentor list scored by every suggestion request.
// Redis failures fall through to the source.
type MentorPool struct {
	source ports.MentorPool
	rdb    *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewMentorPool wraps source. ttl <= 0 defaults to one minute.
func NewMentorPool(source ports.MentorPool, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *MentorPool {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &MentorPool{source: source, rdb: rdb, ttl: ttl, log: log}
}

func (c *MentorPool) ListMentors(ctx context.Context) ([]domain.MentorProfile, error) {
	raw, err := c.rdb.Get(ctx, mentorsKey).Bytes()
	if err == nil {
		var out []domain.MentorProfile
		if err := json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
		c.log.Warn().Msg("mentor cache: corrupt entry, reloading")
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Msg("mentor cache: get failed")
	}

	mentors, err := c.source.ListMentors(ctx)
	if err != nil {
		return nil, err
	}
	if body, err := json.Marshal(mentors); err == nil {
		if err := c.rdb.Set(ctx, mentorsKey, body, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Msg("mentor cache: set failed")
		}
	}
	return mentors, nil
}

// Invalidate drops the cached list, e.g. after a mentor registers.
func (c *MentorPool) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, mentorsKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("mentor cache: invalidate failed")
	}
}

var _ ports.MentorPool = (*MentorPool)(nil)
