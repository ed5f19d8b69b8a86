package storage

import (
	"sync"

	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
)

// PromptStorage provides in-memory storage for the pending practice prompt of
// each user.
type PromptStorage struct {
	mu      sync.RWMutex
	prompts map[int64]entities.PracticePrompt
}

// NewPromptStorage creates a new PromptStorage.
func NewPromptStorage() *PromptStorage {
	return &PromptStorage{
		prompts: make(map[int64]entities.PracticePrompt),
	}
}

// Store saves the pending prompt of a user, replacing any previous one.
func (s *PromptStorage) Store(userID int64, prompt entities.PracticePrompt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts[userID] = prompt
}

// Get retrieves the pending prompt of a user.
func (s *PromptStorage) Get(userID int64) (entities.PracticePrompt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.prompts[userID]
	return p, ok
}

// IncrementAttempts bumps the attempt counter of the pending prompt and
// returns the new count. It returns 0 when there is no pending prompt.
func (s *PromptStorage) IncrementAttempts(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.prompts[userID]
	if !ok {
		return 0
	}
	p.Attempts++
	s.prompts[userID] = p
	return p.Attempts
}

// Delete removes the pending prompt of a user.
func (s *PromptStorage) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.prompts, userID)
}
