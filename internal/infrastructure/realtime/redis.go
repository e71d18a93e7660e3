package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

// Channel is the Redis pub/sub channel shared by all instances.
const Channel = "mentorship:realtime"

type envelope struct {
	UserID domain.UserID `json:"user_id"`
	Event  ports.Event   `json:"event"`
}

// RedisRelay fans events out across instances: Publish goes through Redis
// and every instance's Run loop hands it to its local Hub.
type RedisRelay struct {
	local *Hub
	rdb   *redis.Client
	log   zerolog.Logger
}

// NewRedisRelay wraps local with Redis pub/sub.
func NewRedisRelay(local *Hub, rdb *redis.Client, log zerolog.Logger) *RedisRelay {
	return &RedisRelay{local: local, rdb: rdb, log: log}
}

func (r *RedisRelay) Join(userID domain.UserID, conn ports.Conn)  { r.local.Join(userID, conn) }
func (r *RedisRelay) Leave(userID domain.UserID, conn ports.Conn) { r.local.Leave(userID, conn) }

func (r *RedisRelay) Publish(ctx context.Context, userID domain.UserID, ev ports.Event) error {
	body, err := json.Marshal(envelope{UserID: userID, Event: ev})
	if err != nil {
		return err
	}
	return r.rdb.Publish(ctx, Channel, body).Err()
}

// Run subscribes to the relay channel until ctx is done.
func (r *RedisRelay) Run(ctx context.Context) error {
	sub := r.rdb.Subscribe(ctx, Channel)
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		return err
	}
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			r.deliver(ctx, []byte(msg.Payload))
		}
	}
}

func (r *RedisRelay) deliver(ctx context.Context, payload []byte) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		r.log.Warn().Err(err).Msg("realtime: bad relay payload")
		return
	}
	_ = r.local.Publish(ctx, env.UserID, env.Event)
}

var _ ports.ConnectionRegistry = (*RedisRelay)(nil)
