package repository

import (
	"sync"

	"github.com/mirothedj/robocat/internal/domain"
)

// SessionRepository stores assembly sessions. The only implementation is
// in-memory: session state is deliberately transient and vanishes on
// restart, matching the throwaway nature of a classroom session.
type SessionRepository interface {
	Save(session *domain.Session) error
	Get(id string) (*domain.Session, error)
	Delete(id string) error
	Count() int
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewMemorySessionRepository creates an empty in-memory session store.
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]*domain.Session),
	}
}

func (r *memorySessionRepository) Save(session *domain.Session) error {
	if session == nil || session.ID == "" {
		return domain.NewInvalidInputError("session must have an ID")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *memorySessionRepository) Get(id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.NewSessionNotFoundError(id)
	}
	return session, nil
}

func (r *memorySessionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return domain.NewSessionNotFoundError(id)
	}
	delete(r.sessions, id)
	return nil
}

func (r *memorySessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
