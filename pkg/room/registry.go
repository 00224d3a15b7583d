package room

import (
	"sync"

	"knockpoker-server/pkg/playable/knockpoker"

	"github.com/sirupsen/logrus"
)

// Registry tracks the active sessions by UUID
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	logger   logrus.FieldLogger
}

// NewRegistry returns a new session registry
func NewRegistry(logger logrus.FieldLogger) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		logger:   logger,
	}
}

// CreateSession creates a session, starts its run loop, and registers it
func (r *Registry) CreateSession(name string, players []string, opts knockpoker.Options) (*Session, error) {
	session, err := NewSession(r.logger, name, players, opts)
	if err != nil {
		return nil, err
	}

	session.StartShift()

	r.mu.Lock()
	r.sessions[session.UUID] = session
	r.mu.Unlock()

	r.logger.WithFields(logrus.Fields{
		"session": session.UUID,
		"name":    session.Name,
	}).Info("session created")

	return session, nil
}

// Get returns the session with the given UUID
func (r *Registry) Get(uuid string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[uuid]
	return session, ok
}

// Delete stops the session's run loop and removes it from the registry
func (r *Registry) Delete(uuid string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[uuid]
	if !ok {
		return
	}

	session.EndShift()
	delete(r.sessions, uuid)
}

// Count returns the number of active sessions
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
