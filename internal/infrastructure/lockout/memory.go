package lockout

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
)

type entry struct {
	failures    int
	lockedUntil time.Time
}

// MemoryStore is an in-memory LoginLockoutStore for a single instance.
// Multi-instance deployments use RedisStore.
type MemoryStore struct {
	mu       sync.RWMutex
	data     map[string]*entry
	max      int
	cooldown time.Duration
	now      func() time.Time
}

// NewMemoryStore returns a lockout store with given max attempts and cooldown. maxAttempts 0 = disabled.
func NewMemoryStore(maxAttempts, cooldownSeconds int) *MemoryStore {
	return &MemoryStore{
		data:     make(map[string]*entry),
		max:      maxAttempts,
		cooldown: cooldown(cooldownSeconds),
		now:      time.Now,
	}
}

func cooldown(seconds int) time.Duration {
	cd := time.Duration(seconds) * time.Second
	if cd <= 0 {
		cd = 15 * time.Minute
	}
	return cd
}

func key(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *MemoryStore) IsLocked(ctx context.Context, email string) (locked bool, retryAfterSeconds int) {
	if s.max <= 0 {
		return false, 0
	}
	s.mu.RLock()
	e, ok := s.data[key(email)]
	s.mu.RUnlock()
	if !ok || e == nil {
		return false, 0
	}
	now := s.now()
	if now.Before(e.lockedUntil) {
		secs := int(e.lockedUntil.Sub(now).Seconds())
		if secs < 1 {
			secs = 1
		}
		return true, secs
	}
	return false, 0
}

func (s *MemoryStore) RecordFailure(ctx context.Context, email string) {
	if s.max <= 0 {
		return
	}
	k := key(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.data[k]
	if e == nil {
		e = &entry{}
		s.data[k] = e
	}
	// Expired cooldown starts a fresh window.
	now := s.now()
	if !e.lockedUntil.IsZero() && now.After(e.lockedUntil) {
		e.failures = 0
		e.lockedUntil = time.Time{}
	}
	e.failures++
	if e.failures >= s.max {
		e.lockedUntil = now.Add(s.cooldown)
	}
}

func (s *MemoryStore) RecordSuccess(ctx context.Context, email string) {
	if s.max <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key(email))
}

var _ ports.LoginLockoutStore = (*MemoryStore)(nil)
