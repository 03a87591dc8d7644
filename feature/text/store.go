package text

import "sync"

// Store holds CurrentText, the single shared string of the process.
//
// Writes are serialized by the mutex, so the value observed by every later
// read is the one written by whichever Set acquired the lock last.
type Store struct {
	mu   sync.RWMutex
	text string
}

// NewStore returns a store holding the empty string.
func NewStore() *Store {
	return &Store{}
}

// Set replaces the stored text.
func (s *Store) Set(text string) {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
}

// Get returns the stored text.
func (s *Store) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text
}
