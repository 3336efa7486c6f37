package models

import "sync"

// KeyedStore is a mutex-guarded map holding one record type.
// A missing key is reported as (zero, false), never as an error.
type KeyedStore[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]V
}

func NewKeyedStore[K comparable, V any]() *KeyedStore[K, V] {
	return &KeyedStore[K, V]{
		data: make(map[K]V),
	}
}

func (s *KeyedStore[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	return val, ok
}

// GetOrDefault returns the stored value or def when the key is absent.
func (s *KeyedStore[K, V]) GetOrDefault(key K, def V) V {
	if val, ok := s.Get(key); ok {
		return val
	}
	return def
}

func (s *KeyedStore[K, V]) Set(key K, val V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = val
}

func (s *KeyedStore[K, V]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

func (s *KeyedStore[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *KeyedStore[K, V]) PutData(data map[K]V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[K]V, len(data))
	for k, v := range data {
		s.data[k] = v
	}
}

func (s *KeyedStore[K, V]) GetData() map[K]V {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[K]V, len(s.data))
	for k, v := range s.data {
		result[k] = v
	}
	return result
}
