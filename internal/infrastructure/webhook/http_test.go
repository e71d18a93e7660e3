package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ananya01-bliss/new-student-mentor/internal/domain"
)

func TestHTTPEmitter_PostsEnvelope(t *testing.T) {
	var got envelope
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	e := NewHTTPEmitter(srv.URL, WithHeader("Authorization", "Bearer x"))
	n := domain.Notification{Kind: domain.NotifyMentorshipCompleted, Title: "Mentorship Completed"}
	if err := e.Notify(context.Background(), n); err != nil {
		t.Fatal(err)
	}
	if got.Event != domain.NotifyMentorshipCompleted || got.Payload.Title != n.Title {
		t.Errorf("got %+v", got)
	}
	if auth != "Bearer x" {
		t.Errorf("auth header: got %q", auth)
	}
}

func TestHTTPEmitter_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	if err := NewHTTPEmitter(srv.URL).Notify(context.Background(), domain.Notification{}); err == nil {
		t.Error("expected error for 502")
	}
}
