package usecase

import (
	"context"
	"testing"
	"time"

	"notekeep/model"
)

type fakeSessionStore struct {
	sessions map[string]*model.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*model.Session{}}
}

func (f *fakeSessionStore) Create(ctx context.Context, session *model.Session) error {
	copied := *session
	f.sessions[session.SessionID] = &copied
	return nil
}

func (f *fakeSessionStore) FindByID(ctx context.Context, sessionID string) (*model.Session, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionStore) FindActiveForUser(ctx context.Context, userID string) ([]*model.Session, error) {
	var results []*model.Session
	for _, session := range f.sessions {
		if session.UserID == userID && session.IsActive {
			copied := *session
			results = append(results, &copied)
		}
	}
	return results, nil
}

func (f *fakeSessionStore) CountActive(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, session := range f.sessions {
		if session.UserID == userID && session.IsActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeSessionStore) End(ctx context.Context, sessionID, userID string) (int64, error) {
	session, ok := f.sessions[sessionID]
	if !ok || session.UserID != userID || !session.IsActive {
		return 0, nil
	}
	session.IsActive = false
	return 1, nil
}

func (f *fakeSessionStore) EndAll(ctx context.Context, userID string) (int64, error) {
	var ended int64
	for _, session := range f.sessions {
		if session.UserID == userID && session.IsActive {
			session.IsActive = false
			ended++
		}
	}
	return ended, nil
}

func (f *fakeSessionStore) EndLeastActive(ctx context.Context, userID string) error {
	var oldest *model.Session
	for _, session := range f.sessions {
		if session.UserID != userID || !session.IsActive {
			continue
		}
		if oldest == nil || session.LastActivityAt.Before(oldest.LastActivityAt) {
			oldest = session
		}
	}
	if oldest != nil {
		oldest.IsActive = false
	}
	return nil
}

func (f *fakeSessionStore) Touch(ctx context.Context, sessionID string) error {
	if session, ok := f.sessions[sessionID]; ok {
		session.LastActivityAt = time.Now().UTC()
	}
	return nil
}

func TestSessionStart(t *testing.T) {
	ctx := context.Background()

	t.Run("under the cap", func(t *testing.T) {
		store := newFakeSessionStore()
		svc := NewSessionService(store, time.Hour, 2)

		session, notice, err := svc.Start(ctx, "user-1", "Mozilla/5.0", "10.0.0.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if notice != "" {
			t.Errorf("no notice expected, got %q", notice)
		}
		if !session.IsActive {
			t.Error("new session must be active")
		}
		if session.ExpiresAt.Before(session.CreatedAt) {
			t.Error("expiry must be after creation")
		}
	})

	t.Run("at the cap the least active session is ended", func(t *testing.T) {
		store := newFakeSessionStore()
		svc := NewSessionService(store, time.Hour, 2)

		first, _, err := svc.Start(ctx, "user-1", "", "")
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		// make the first session clearly the stale one
		store.sessions[first.SessionID].LastActivityAt = time.Now().UTC().Add(-time.Hour)

		if _, _, err := svc.Start(ctx, "user-1", "", ""); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		_, notice, err := svc.Start(ctx, "user-1", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if notice == "" {
			t.Error("expected an eviction notice")
		}
		if store.sessions[first.SessionID].IsActive {
			t.Error("least active session must have been ended")
		}

		count, _ := store.CountActive(ctx, "user-1")
		if count != 2 {
			t.Errorf("active count = %d, want 2", count)
		}
	})
}

func TestSessionEnd(t *testing.T) {
	ctx := context.Background()
	store := newFakeSessionStore()
	svc := NewSessionService(store, time.Hour, 5)

	session, _, err := svc.Start(ctx, "user-1", "", "")
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := svc.End(ctx, session.SessionID, "user-2"); err != nil {
		t.Fatalf("cross-owner end must be a no-op, got %v", err)
	}
	if !store.sessions[session.SessionID].IsActive {
		t.Fatal("cross-owner end must not close the session")
	}

	if err := svc.End(ctx, session.SessionID, "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.sessions[session.SessionID].IsActive {
		t.Error("session must be ended")
	}

	if err := svc.End(ctx, session.SessionID, "user-1"); err != nil {
		t.Errorf("ending an ended session must be a no-op: %v", err)
	}
	if err := svc.End(ctx, "", "user-1"); err != nil {
		t.Errorf("empty session id must be a no-op: %v", err)
	}
}

func TestSessionEndAll(t *testing.T) {
	ctx := context.Background()
	store := newFakeSessionStore()
	svc := NewSessionService(store, time.Hour, 5)

	for i := 0; i < 3; i++ {
		if _, _, err := svc.Start(ctx, "user-1", "", ""); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
	if _, _, err := svc.Start(ctx, "user-2", "", ""); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	ended, err := svc.EndAll(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ended != 3 {
		t.Errorf("ended = %d, want 3", ended)
	}

	otherActive, _ := store.CountActive(ctx, "user-2")
	if otherActive != 1 {
		t.Error("other users' sessions must be untouched")
	}
}
