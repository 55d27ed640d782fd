package memory

import (
	"errors"
	"sync"

	"github.com/yoockh/mockview/internal/models"
	"github.com/yoockh/mockview/internal/utils"
)

// SessionRepository is the session store contract. Only the interview
// service writes through it; a persistent backend can be swapped in later
// without touching the service.
type SessionRepository interface {
	Create(s *models.InterviewSession) error
	Get(sessionID string) (*models.InterviewSession, error)
	Delete(sessionID string) bool
	Count() int
}

type sessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*models.InterviewSession
}

func NewSessionRepository() SessionRepository {
	return &sessionRepo{sessions: make(map[string]*models.InterviewSession)}
}

func (r *sessionRepo) Create(s *models.InterviewSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[s.SessionID]; exists {
		return errors.New("session already exists")
	}
	r.sessions[s.SessionID] = s
	return nil
}

func (r *sessionRepo) Get(sessionID string) (*models.InterviewSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return s, nil
}

// Delete reports whether the session was present, so termination can assert
// it removed the session exactly once.
func (r *sessionRepo) Delete(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[sessionID]
	delete(r.sessions, sessionID)
	return ok
}

func (r *sessionRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
