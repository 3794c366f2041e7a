package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/bakery-service/internal/domain/model"
)

// ErrCartNotFound is returned when a session cart id is unknown or expired.
var ErrCartNotFound = errors.New("cart not found")

// session pairs a cart with its creation time for idle expiry.
type session struct {
	cart      *model.Cart
	createdAt time.Time
}

// CartStore holds the in-memory session carts for the HTTP shell. Each
// cart belongs to one session id; the store only serializes access, the
// cart itself stays single-owner. Carts live for the lifetime of the
// process and are never persisted.
type CartStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	maxAge   time.Duration
}

// CartStoreOption configures a CartStore.
type CartStoreOption func(*CartStore)

// WithMaxAge sets how long an untouched session cart is kept before the
// cleanup sweep drops it. Zero disables expiry.
func WithMaxAge(maxAge time.Duration) CartStoreOption {
	return func(s *CartStore) {
		s.maxAge = maxAge
	}
}

// NewCartStore creates an empty session cart store.
func NewCartStore(opts ...CartStoreOption) *CartStore {
	s := &CartStore{
		sessions: make(map[string]*session),
		maxAge:   time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a new empty cart and returns its session id.
func (s *CartStore) Open() string {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{cart: model.NewCart(), createdAt: time.Now()}
	return id
}

// Add appends an item to the session's cart.
func (s *CartStore) Add(id string, item model.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrCartNotFound
	}
	sess.cart.Add(item)
	return nil
}

// Items returns the session cart's entries in insertion order.
func (s *CartStore) Items(id string) ([]model.LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrCartNotFound
	}
	return sess.cart.Items(), nil
}

// Total returns the session cart's running total.
func (s *CartStore) Total(id string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return 0, ErrCartNotFound
	}
	return sess.cart.Total(), nil
}

// Checkout summarizes the session cart. The cart is not cleared: checkout
// review may be repeated, and abandoning the session discards the cart.
func (s *CartStore) Checkout(id string) (model.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return model.Receipt{}, ErrCartNotFound
	}
	return sess.cart.Summarize(), nil
}

// Close discards a session cart.
func (s *CartStore) Close(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of live sessions.
func (s *CartStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions older than the configured max age and returns how
// many were removed.
func (s *CartStore) Sweep() int {
	if s.maxAge <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.maxAge)
	removed := 0
	for id, sess := range s.sessions {
		if sess.createdAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
