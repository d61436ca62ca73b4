package engine

import (
	"sync"

	"github.com/lixenwraith/deadrun/core"
)

// Store is a generic container for a specific component type T.
// Components live in a dense slice with an entity index map on top, so
// per-tick iteration walks contiguous memory
type Store[T any] struct {
	mu       sync.RWMutex
	index    map[core.Entity]int // Entity → position in the dense arrays
	entities []core.Entity
	data     []T
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[core.Entity]int),
		entities: make([]core.Entity, 0, 64),
		data:     make([]T, 0, 64),
	}
}

// SetComponent inserts or updates a component for an entity
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[e]; ok {
		s.data[i] = val
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.data = append(s.data, val)
}

// GetComponent retrieves a component for an entity
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.index[e]; ok {
		return s.data[i], true
	}
	var zero T
	return zero, false
}

// RemoveEntity deletes a component from an entity
func (s *Store[T]) RemoveEntity(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(e)
}

// removeLocked swap-removes e; iteration order is not stable
func (s *Store[T]) removeLocked(e core.Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}

	last := len(s.entities) - 1
	if i != last {
		moved := s.entities[last]
		s.entities[i] = moved
		s.data[i] = s.data[last]
		s.index[moved] = i
	}
	s.entities = s.entities[:last]
	s.data = s.data[:last]
	delete(s.index, e)
}

// HasEntity checks if entity has this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[e]
	return ok
}

// GetAllEntities returns all entities with this component type
func (s *Store[T]) GetAllEntities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// CountEntities returns number of entities with this component
func (s *Store[T]) CountEntities() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// ClearAllComponents removes all components from this store
func (s *Store[T]) ClearAllComponents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = make(map[core.Entity]int)
	s.entities = s.entities[:0]
	s.data = s.data[:0]
}

// RemoveBatch deletes multiple entities in one compaction pass
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entities) == 0 {
		return
	}

	toRemove := make(map[core.Entity]struct{}, len(entities))
	for _, e := range entities {
		if _, ok := s.index[e]; ok {
			toRemove[e] = struct{}{}
		}
	}
	if len(toRemove) == 0 {
		return
	}

	write := 0
	for i, e := range s.entities {
		if _, remove := toRemove[e]; remove {
			delete(s.index, e)
			continue
		}
		s.entities[write] = e
		s.data[write] = s.data[i]
		s.index[e] = write
		write++
	}
	s.entities = s.entities[:write]
	s.data = s.data[:write]
}
