package text

import (
	"go.uber.org/zap"
)

// Service handles reads and writes of the shared text.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new text service.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Submit replaces the current text. It always succeeds.
func (s *Service) Submit(text string) {
	s.store.Set(text)
}

// Retrieve returns the current text, "" before the first submission.
func (s *Service) Retrieve() string {
	return s.store.Get()
}
