package mq

import (
	"testing"

	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

func TestRoutingKey(t *testing.T) {
	tests := []struct {
		kind domain.NotificationKind
		want string
	}{
		{domain.NotifyNewRequest, "notification.new_request"},
		{domain.NotifyMilestoneRejected, "notification.milestone_rejected"},
	}
	for _, tt := range tests {
		if got := RoutingKey(tt.kind); got != tt.want {
			t.Errorf("RoutingKey(%s): got %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPublisher_IsConnectedZero(t *testing.T) {
	var p Publisher
	if p.IsConnected() {
		t.Error("zero publisher should not report connected")
	}
}
