package repository

import (
	"context"
	"sync"

	"gmls/domain"
)

// sessionAuthService is the in-process stand-in for the hosted auth
// collaborator: it holds the identifier of the signed-in user for the
// lifetime of the process. The identifier itself is always issued remotely
// before the first local write.
type sessionAuthService struct {
	mu  sync.RWMutex
	uid string
}

func NewSessionAuthService() domain.AuthService {
	return &sessionAuthService{}
}

func (s *sessionAuthService) CurrentUserID(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.uid == "" {
		return "", domain.ErrNotAuthenticated
	}
	return s.uid, nil
}

func (s *sessionAuthService) SignIn(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uid = userID
	return nil
}

func (s *sessionAuthService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uid = ""
	return nil
}
