package repository

import (
	"sync"

	"github.com/neonbook/booking-system/internal/domain"
)

// SelectionStore keeps the active booking selection per session token. There
// is at most one selection per session; putting a new one replaces whatever
// was in progress.
type SelectionStore struct {
	mu         sync.RWMutex
	selections map[string]*domain.Selection
}

func NewSelectionStore() *SelectionStore {
	return &SelectionStore{
		selections: make(map[string]*domain.Selection),
	}
}

// Get returns the session's active selection, or nil when there is none.
func (s *SelectionStore) Get(token string) *domain.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.selections[token]
}

func (s *SelectionStore) Put(token string, selection *domain.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selections[token] = selection
}

func (s *SelectionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.selections, token)
}
