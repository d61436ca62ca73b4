package engine

import (
	"sync"
	"testing"

	"github.com/lixenwraith/deadrun/core"
)

type testComponent struct {
	Value int
}

// TestStoreSetGet verifies basic insert and lookup
func TestStoreSetGet(t *testing.T) {
	s := NewStore[testComponent]()

	s.SetComponent(1, testComponent{Value: 10})
	s.SetComponent(2, testComponent{Value: 20})

	val, ok := s.GetComponent(1)
	if !ok || val.Value != 10 {
		t.Errorf("Expected (10, true), got (%d, %v)", val.Value, ok)
	}

	// Update in place
	s.SetComponent(1, testComponent{Value: 11})
	val, _ = s.GetComponent(1)
	if val.Value != 11 {
		t.Errorf("Expected updated value 11, got %d", val.Value)
	}

	if s.CountEntities() != 2 {
		t.Errorf("Expected 2 entities after update, got %d", s.CountEntities())
	}

	_, ok = s.GetComponent(99)
	if ok {
		t.Error("Expected missing entity lookup to fail")
	}
}

// TestStoreRemove verifies removal keeps the dense slice consistent
func TestStoreRemove(t *testing.T) {
	s := NewStore[testComponent]()

	for i := core.Entity(1); i <= 5; i++ {
		s.SetComponent(i, testComponent{Value: int(i)})
	}

	s.RemoveEntity(3)

	if s.HasEntity(3) {
		t.Error("Expected entity 3 removed")
	}
	if s.CountEntities() != 4 {
		t.Errorf("Expected 4 entities, got %d", s.CountEntities())
	}

	// Remaining entities all resolvable through the dense list
	for _, e := range s.GetAllEntities() {
		if _, ok := s.GetComponent(e); !ok {
			t.Errorf("Entity %d in dense list but has no component", e)
		}
	}

	// Removing a non-member is a no-op
	s.RemoveEntity(42)
	if s.CountEntities() != 4 {
		t.Errorf("Expected 4 entities after no-op remove, got %d", s.CountEntities())
	}
}

// TestStoreRemoveBatch verifies single-pass batch removal
func TestStoreRemoveBatch(t *testing.T) {
	s := NewStore[testComponent]()

	for i := core.Entity(1); i <= 10; i++ {
		s.SetComponent(i, testComponent{Value: int(i)})
	}

	// Mix of present and absent entities
	s.RemoveBatch([]core.Entity{2, 4, 6, 8, 100})

	if s.CountEntities() != 6 {
		t.Errorf("Expected 6 entities after batch remove, got %d", s.CountEntities())
	}
	for _, e := range []core.Entity{2, 4, 6, 8} {
		if s.HasEntity(e) {
			t.Errorf("Expected entity %d removed", e)
		}
	}
	for _, e := range []core.Entity{1, 3, 5, 7, 9, 10} {
		if !s.HasEntity(e) {
			t.Errorf("Expected entity %d to survive", e)
		}
	}

	// Empty batch is a no-op
	s.RemoveBatch(nil)
	if s.CountEntities() != 6 {
		t.Errorf("Expected 6 entities after empty batch, got %d", s.CountEntities())
	}
}

// TestStoreClear verifies ClearAllComponents empties the store
func TestStoreClear(t *testing.T) {
	s := NewStore[testComponent]()

	s.SetComponent(1, testComponent{Value: 1})
	s.SetComponent(2, testComponent{Value: 2})
	s.ClearAllComponents()

	if s.CountEntities() != 0 {
		t.Errorf("Expected empty store, got %d entities", s.CountEntities())
	}
	if len(s.GetAllEntities()) != 0 {
		t.Error("Expected empty entity list after clear")
	}
}

// TestStoreGetAllReturnsCopy verifies callers cannot corrupt the dense list
func TestStoreGetAllReturnsCopy(t *testing.T) {
	s := NewStore[testComponent]()

	s.SetComponent(1, testComponent{Value: 1})
	s.SetComponent(2, testComponent{Value: 2})

	list := s.GetAllEntities()
	list[0] = 999

	for _, e := range s.GetAllEntities() {
		if e == 999 {
			t.Error("Mutating the returned slice affected the store")
		}
	}
}

// TestStoreConcurrentAccess verifies store survives mixed readers and writers
func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore[testComponent]()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				e := core.Entity(base*50 + j + 1)
				s.SetComponent(e, testComponent{Value: j})
				s.GetComponent(e)
				if j%10 == 0 {
					s.RemoveEntity(e)
				}
			}
		}(i)
	}
	wg.Wait()

	// All surviving entities must resolve
	for _, e := range s.GetAllEntities() {
		if _, ok := s.GetComponent(e); !ok {
			t.Errorf("Dangling entity %d after concurrent churn", e)
		}
	}
}
