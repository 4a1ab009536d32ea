package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"notekeep/apperror"
	"notekeep/model"
	"notekeep/utils"
)

// SessionService tracks login sessions. Each issued token pair is bound to a
// session id; logout ends the session the token was issued under.
type SessionService struct {
	Sessions  SessionStore
	TTL       time.Duration
	MaxActive int
}

func NewSessionService(sessions SessionStore, ttl time.Duration, maxActive int) *SessionService {
	return &SessionService{Sessions: sessions, TTL: ttl, MaxActive: maxActive}
}

// Start opens a session for a fresh login, ending the least recently active
// one when the user is at the cap. Returns the new session and a notice when
// an old session was ended.
func (s *SessionService) Start(ctx context.Context, userID, userAgent, ipAddress string) (*model.Session, string, error) {
	active, err := s.Sessions.CountActive(ctx, userID)
	if err != nil {
		return nil, "", apperror.Store("failed to count sessions", err)
	}

	var notice string
	if active >= int64(s.MaxActive) {
		if err := s.Sessions.EndLeastActive(ctx, userID); err != nil {
			return nil, "", apperror.Store("failed to end least active session", err)
		}
		notice = "logged out of least active session due to session limit"
	}

	now := time.Now().UTC()
	session := &model.Session{
		SessionID:      uuid.NewString(),
		UserID:         userID,
		DeviceInfo:     utils.DescribeDevice(userAgent),
		IPAddress:      ipAddress,
		CreatedAt:      now,
		ExpiresAt:      now.Add(s.TTL),
		LastActivityAt: now,
		IsActive:       true,
	}

	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, "", apperror.Store("failed to create session", err)
	}

	utils.UpdateActiveSessions(float64(active + 1))
	return session, notice, nil
}

// End closes the given session for the user. Ending an already-ended or
// unknown session is a no-op.
func (s *SessionService) End(ctx context.Context, sessionID, userID string) error {
	if sessionID == "" {
		return nil
	}
	if _, err := s.Sessions.End(ctx, sessionID, userID); err != nil {
		return apperror.Store("failed to end session", err)
	}
	return nil
}

// EndAll closes every active session the user has.
func (s *SessionService) EndAll(ctx context.Context, userID string) (int64, error) {
	ended, err := s.Sessions.EndAll(ctx, userID)
	if err != nil {
		return 0, apperror.Store("failed to end sessions", err)
	}
	return ended, nil
}

// ListActive returns the user's active sessions, most recently used first.
func (s *SessionService) ListActive(ctx context.Context, userID string) ([]*model.Session, error) {
	sessions, err := s.Sessions.FindActiveForUser(ctx, userID)
	if err != nil {
		return nil, apperror.Store("failed to list sessions", err)
	}
	return sessions, nil
}

// Touch refreshes activity on the session; failures are not fatal to the
// request and are swallowed by callers.
func (s *SessionService) Touch(ctx context.Context, sessionID string) error {
	return s.Sessions.Touch(ctx, sessionID)
}
