// SPDX-License-Identifier: MIT
// Package: linkcut/lctree
//
// synced.go - a Forest guarded by one exclusive lock.
//
// Every method, queries included, mutates splay structure, so a RWMutex
// would buy nothing: all calls take the same sync.Mutex.

package lctree

import "sync"

// Synced wraps a Forest for use from several goroutines. Each call holds the
// lock for its whole duration.
type Synced[V, Q any] struct {
	mu sync.Mutex
	f  *Forest[V, Q]
}

// NewSynced wraps f. f must not be used directly afterwards.
func NewSynced[V, Q any](f *Forest[V, Q]) *Synced[V, Q] {
	return &Synced[V, Q]{f: f}
}

// Do runs fn with exclusive access to the underlying forest, for callers
// that need several operations to happen atomically.
func (s *Synced[V, Q]) Do(fn func(f *Forest[V, Q])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.f)
}

func (s *Synced[V, Q]) Len() int {
	return s.f.Len() // immutable after construction
}

func (s *Synced[V, Q]) Evert(x int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.Evert(x)
}

func (s *Synced[V, Q]) Link(u, v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Link(u, v)
}

func (s *Synced[V, Q]) Cut(u, v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Cut(u, v)
}

func (s *Synced[V, Q]) PathQuery(u, v int) (Q, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.PathQuery(u, v)
}

func (s *Synced[V, Q]) LCA(root, u, v int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.LCA(root, u, v)
}

func (s *Synced[V, Q]) Parent(root, x int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Parent(root, x)
}

func (s *Synced[V, Q]) FindRoot(x int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.FindRoot(x)
}

func (s *Synced[V, Q]) Connected(u, v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Connected(u, v)
}

func (s *Synced[V, Q]) Value(x int) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.f.Value(x)
}

func (s *Synced[V, Q]) SetValue(x int, v V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.SetValue(x, v)
}
