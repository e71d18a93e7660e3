package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

type staticPool []domain.MentorProfile

func (p staticPool) ListMentors(ctx context.Context) ([]domain.MentorProfile, error) {
	return p, nil
}

func TestMentorPool_FallsBackWhenRedisDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	src := staticPool{{ID: domain.NewUserID(uuid.New()), Name: "Ada"}}
	c := NewMentorPool(src, rdb, 0, zerolog.Nop())
	got, err := c.ListMentors(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Ada" {
		t.Errorf("got %+v", got)
	}
	c.Invalidate(context.Background())
}
