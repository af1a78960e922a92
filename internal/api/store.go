package api

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/dukaan-labs/billing-api/internal/billing"
)

// ErrStoreClosed is reported by readiness probes after shutdown begins.
var ErrStoreClosed = errors.New("session store closed")

// Store holds checkout sessions in process memory. Each session owns one
// cart; the store mutex serializes every access so a cart is only ever
// touched by one request at a time.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*billing.Cart
	closed   bool
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*billing.Cart)}
}

// Create opens a new checkout session and returns its identifier.
func (s *Store) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = billing.NewCart()
	s.mu.Unlock()
	return id
}

// With runs fn against the session's cart while holding the store lock.
// It reports whether the session exists.
func (s *Store) With(id string, fn func(*billing.Cart)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.sessions[id]
	if !ok {
		return false
	}
	fn(cart)
	return true
}

// Delete discards a session. It reports whether the session existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// Len returns the number of open sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close marks the store as draining so readiness probes start failing.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Ping implements the health checker probe.
func (s *Store) Ping(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	return nil
}
