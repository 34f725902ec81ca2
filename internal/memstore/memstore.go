// Package memstore keeps a ledger's records in process memory for the lifetime
// of the session. Records are kept newest first and are never deleted.
package memstore

import (
	"context"
	"fmt"
	"sync"
)

// Store is safe for concurrent use. It stores copies of the records it is given
// and hands out copies, so callers never share memory with it.
type Store[T any] struct {
	mu       sync.Mutex
	items    []T
	idOf     func(*T) string
	notFound error
}

// New creates a store. seed is expected newest first, the order List returns.
// notFound is returned by Get and Update for unknown identifiers.
func New[T any](idOf func(*T) string, notFound error, seed ...*T) *Store[T] {
	s := &Store[T]{idOf: idOf, notFound: notFound}
	for _, item := range seed {
		s.items = append(s.items, *item)
	}

	return s
}

// Create prepends a copy of item.
func (s *Store[T]) Create(_ context.Context, item *T) error {
	id := s.idOf(item)
	if id == "" {
		return fmt.Errorf("creating record: empty id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) >= 0 {
		return fmt.Errorf("creating record: duplicate id %s", id)
	}

	s.items = append([]T{*item}, s.items...)

	return nil
}

// List returns every record, newest first.
func (s *Store[T]) List(_ context.Context) ([]*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*T, len(s.items))
	for i := range s.items {
		cp := s.items[i]
		out[i] = &cp
	}

	return out, nil
}

func (s *Store[T]) Get(_ context.Context, id string) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, s.notFound
	}

	cp := s.items[i]

	return &cp, nil
}

// Update applies fn to the record with the given id while holding the lock.
// The record is only replaced when fn succeeds.
func (s *Store[T]) Update(_ context.Context, id string, fn func(*T) error) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, s.notFound
	}

	cp := s.items[i]
	if err := fn(&cp); err != nil {
		return nil, err
	}

	s.items[i] = cp
	out := cp

	return &out, nil
}

func (s *Store[T]) indexOf(id string) int {
	for i := range s.items {
		if s.idOf(&s.items[i]) == id {
			return i
		}
	}

	return -1
}
