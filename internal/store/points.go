package store

import (
	"sync"

	"hazardwatch/internal/types"
)

// PointStore is an append-only, insertion-ordered record of every analysis
// performed during the process lifetime. It is shared across requests, so
// access is mutex-guarded. Points are never updated or deleted.
type PointStore struct {
	mu     sync.Mutex
	points []types.Point
}

func NewPointStore() *PointStore {
	return &PointStore{}
}

// Append adds a point to the end of the sequence
func (s *PointStore) Append(point types.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = append(s.points, point)
}

// List returns all points in insertion order. The returned slice is a copy;
// callers cannot mutate the store through it.
func (s *PointStore) List() []types.Point {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Point, len(s.points))
	copy(out, s.points)
	return out
}

// FindByID scans the sequence for a point with the given identifier
func (s *PointStore) FindByID(id string) (types.Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.points {
		if p.ID == id {
			return p, true
		}
	}
	return types.Point{}, false
}

// Len reports the number of stored points
func (s *PointStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.points)
}
