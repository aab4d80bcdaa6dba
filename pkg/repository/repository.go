// Package repository provides a concurrent, insertion-ordered in-memory
// record store. The service keeps no durable state; every domain's records
// live for the process lifetime only.
package repository

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds records of type T keyed by UUID, preserving insertion order.
// All methods are safe for concurrent use.
type Store[T any] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]T
	order []uuid.UUID
}

// NewStore creates an empty Store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		items: make(map[uuid.UUID]T),
	}
}

// Insert adds a record under id. Returns ErrDuplicate if the id is taken.
func (s *Store[T]) Insert(id uuid.UUID, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; ok {
		return ErrDuplicate
	}

	s.items[id] = item
	s.order = append(s.order, id)
	return nil
}

// Get returns the record stored under id, or ErrNotFound.
func (s *Store[T]) Get(id uuid.UUID) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return item, nil
}

// Update applies fn to the record under id and stores the result.
// The store lock is held across fn, so fn must not call back into the store.
func (s *Store[T]) Update(id uuid.UUID, fn func(T) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}

	updated, err := fn(item)
	if err != nil {
		var zero T
		return zero, err
	}

	s.items[id] = updated
	return updated, nil
}

// Delete removes the record under id, or returns ErrNotFound.
func (s *Store[T]) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}

	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// All returns every record in insertion order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]T, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id])
	}
	return items
}

// Len returns the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
