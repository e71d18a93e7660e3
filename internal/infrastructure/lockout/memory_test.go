package lockout

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_LocksAfterMaxFailures(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(3, 60)
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	for i := 0; i < 2; i++ {
		s.RecordFailure(ctx, "A@Example.com")
	}
	if locked, _ := s.IsLocked(ctx, "a@example.com"); locked {
		t.Fatal("locked before reaching max")
	}
	s.RecordFailure(ctx, "a@example.com")
	locked, retry := s.IsLocked(ctx, "a@example.com")
	if !locked {
		t.Fatal("expected lock after max failures")
	}
	if retry != 60 {
		t.Errorf("retry after: got %d, want 60", retry)
	}

	clock = clock.Add(61 * time.Second)
	if locked, _ := s.IsLocked(ctx, "a@example.com"); locked {
		t.Error("lock should expire after cooldown")
	}
}

func TestMemoryStore_SuccessClears(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2, 60)
	s.RecordFailure(ctx, "b@example.com")
	s.RecordSuccess(ctx, "b@example.com")
	s.RecordFailure(ctx, "b@example.com")
	if locked, _ := s.IsLocked(ctx, "b@example.com"); locked {
		t.Error("success should reset the failure count")
	}
}

func TestMemoryStore_Disabled(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0, 60)
	for i := 0; i < 10; i++ {
		s.RecordFailure(ctx, "c@example.com")
	}
	if locked, _ := s.IsLocked(ctx, "c@example.com"); locked {
		t.Error("max 0 should disable lockout")
	}
}
