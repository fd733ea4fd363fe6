// Package store provides the keyed entity store each service owns for its own
// entity type. Identifier allocation and insertion happen as one atomic unit,
// so two concurrent inserts can never be assigned the same id.
package store

import (
	"context"
	"sync"
)

// Store is the persistence port shared by all services. E is the entity type.
type Store[E any] interface {
	// Insert allocates the next id and persists the entity returned by build
	// in a single atomic operation.
	Insert(ctx context.Context, build func(id int64) E) (E, error)

	// Get returns the entity and whether it exists. A missing entity is not
	// an error.
	Get(ctx context.Context, id int64) (E, bool, error)

	// List returns every entity in insertion order.
	List(ctx context.Context) ([]E, error)

	// Put persists an entity at a fixed id and advances the id allocator past
	// it. Used to seed data at startup, before any concurrent access.
	Put(ctx context.Context, id int64, entity E) error
}

// Memory is the default in-process Store implementation.
type Memory[E any] struct {
	mu     sync.RWMutex
	nextID int64
	ids    []int64
	items  map[int64]E
}

var _ Store[struct{}] = (*Memory[struct{}])(nil)

func NewMemory[E any]() *Memory[E] {
	return &Memory[E]{items: make(map[int64]E)}
}

func (m *Memory[E]) Insert(_ context.Context, build func(id int64) E) (E, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	entity := build(id)
	m.items[id] = entity
	m.ids = append(m.ids, id)
	return entity, nil
}

func (m *Memory[E]) Get(_ context.Context, id int64) (E, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entity, ok := m.items[id]
	return entity, ok, nil
}

func (m *Memory[E]) List(_ context.Context) ([]E, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]E, 0, len(m.ids))
	for _, id := range m.ids {
		out = append(out, m.items[id])
	}
	return out, nil
}

func (m *Memory[E]) Put(_ context.Context, id int64, entity E) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[id]; !exists {
		m.ids = append(m.ids, id)
	}
	m.items[id] = entity
	if id > m.nextID {
		m.nextID = id
	}
	return nil
}
