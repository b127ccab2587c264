// Package cache implements the client side resource cache: per category
// stores with insertion order, per group endpoint caches with guarded bulk
// loading and snapshot persistence, and a manager that owns the fixed set
// of groups.
package cache

import (
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// KeyFunc derives the canonical cache key for a value.
type KeyFunc[T any] func(v T) string

// IDFunc extracts the numeric service id of a value, 0 when unknown.
type IDFunc[T any] func(v T) int

// Canonicalize normalizes an identifier the way the service spells its
// resource names: trimmed, lower case, spaces as hyphens.
func Canonicalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

// DefaultKey keys a value by its Name field, falling back to the decimal
// ID for resources the service does not name.
func DefaultKey[T any]() KeyFunc[T] {
	return func(v T) string {
		rv := reflect.Indirect(reflect.ValueOf(v))
		if rv.Kind() != reflect.Struct {
			return ""
		}
		if f := rv.FieldByName("Name"); f.IsValid() && f.Kind() == reflect.String && f.String() != "" {
			return Canonicalize(f.String())
		}
		if f := rv.FieldByName("ID"); f.IsValid() && f.CanInt() {
			return strconv.FormatInt(f.Int(), 10)
		}
		return ""
	}
}

// DefaultID reads a value's ID field.
func DefaultID[T any]() IDFunc[T] {
	return func(v T) int {
		rv := reflect.Indirect(reflect.ValueOf(v))
		if rv.Kind() != reflect.Struct {
			return 0
		}
		if f := rv.FieldByName("ID"); f.IsValid() && f.CanInt() {
			return int(f.Int())
		}
		return 0
	}
}

// Store is an ordered key to value map for one resource category. Values
// are held and returned by value, so readers never observe concurrent
// mutation of a stored entry. All operations are safe for concurrent use.
type Store[T any] struct {
	keyFn KeyFunc[T]
	idFn  IDFunc[T]

	mu      sync.RWMutex
	entries map[string]T
	ids     map[int]string
	order   []string
}

// NewStore builds an empty store. Nil key or id functions fall back to
// the reflection based defaults.
func NewStore[T any](keyFn KeyFunc[T], idFn IDFunc[T]) *Store[T] {
	if keyFn == nil {
		keyFn = DefaultKey[T]()
	}
	if idFn == nil {
		idFn = DefaultID[T]()
	}
	return &Store[T]{
		keyFn:   keyFn,
		idFn:    idFn,
		entries: make(map[string]T),
		ids:     make(map[int]string),
	}
}

// Key derives the canonical key for a value without storing it.
func (s *Store[T]) Key(v T) string {
	return s.keyFn(v)
}

// Put upserts a value under its canonical key and returns that key.
// Re-putting an existing key overwrites silently and keeps the original
// insertion position.
func (s *Store[T]) Put(v T) string {
	key := s.keyFn(v)
	if key == "" {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		s.order = append(s.order, key)
	}
	s.entries[key] = v
	if id := s.idFn(v); id != 0 {
		s.ids[id] = key
	}
	return key
}

// Get looks up a value by canonical key. Pure lookup, no side effects.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[Canonicalize(key)]
	return v, ok
}

// GetByID looks up a value by its numeric service id.
func (s *Store[T]) GetByID(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.ids[id]
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := s.entries[key]
	return v, ok
}

// Has reports whether the canonical key is present.
func (s *Store[T]) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[Canonicalize(key)]
	return ok
}

// Len returns the number of stored entries.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Keys returns the stored keys in insertion order.
func (s *Store[T]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys
}

// All returns the stored values in insertion order. The returned slice is
// a snapshot and is not invalidated by later puts.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values := make([]T, 0, len(s.order))
	for _, key := range s.order {
		values = append(values, s.entries[key])
	}
	return values
}

// Clear drops every entry.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]T)
	s.ids = make(map[int]string)
	s.order = nil
}
