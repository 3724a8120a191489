package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// memoryCollection is an insertion-ordered in-memory document set keyed by ID.
type memoryCollection[T any] struct {
	name  string
	id    func(*T) *string
	docs  map[string]T
	order []string
	mu    sync.RWMutex
}

func newMemoryCollection[T any](name string, id func(*T) *string) *memoryCollection[T] {
	return &memoryCollection[T]{
		name: name,
		id:   id,
		docs: make(map[string]T),
	}
}

func (c *memoryCollection[T]) all(keep func(*T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := make([]T, 0, len(c.order))
	for _, id := range c.order {
		doc := c.docs[id]
		if keep == nil || keep(&doc) {
			list = append(list, doc)
		}
	}
	return list
}

func (c *memoryCollection[T]) get(id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.docs[id]
	if !ok {
		return nil, fmt.Errorf("%s with ID %s: %w", c.name, id, ErrNotFound)
	}
	return &doc, nil
}

func (c *memoryCollection[T]) insert(doc *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.id(doc)
	if *id == "" {
		*id = uuid.New().String()
	}
	if _, exists := c.docs[*id]; exists {
		return fmt.Errorf("%s with ID %s already exists", c.name, *id)
	}
	c.docs[*id] = *doc
	c.order = append(c.order, *id)
	return nil
}

func (c *memoryCollection[T]) replace(doc *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := *c.id(doc)
	if _, ok := c.docs[id]; !ok {
		return fmt.Errorf("%s with ID %s for update: %w", c.name, id, ErrNotFound)
	}
	c.docs[id] = *doc
	return nil
}

func (c *memoryCollection[T]) remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[id]; !ok {
		return fmt.Errorf("%s with ID %s for deletion: %w", c.name, id, ErrNotFound)
	}
	delete(c.docs, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}
