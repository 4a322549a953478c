package main

import (
	"fmt"
	"sync"

	"github.com/pthm/weba/example/components"
)

// memStore keeps todos in insertion order and implements
// components.TodoStore.
type memStore struct {
	mu    sync.RWMutex
	todos []components.Todo
}

func newMemStore() *memStore {
	s := &memStore{}
	s.add("Buy groceries", components.TagPersonal)
	s.add("Review pull request", components.TagWork, components.TagUrgent)
	s.add("Write documentation", components.TagWork)
	s.add("Fix login bug", components.TagWork, components.TagUrgent)
	return s
}

func (s *memStore) add(title string, tags ...components.Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = append(s.todos, components.Todo{
		ID:     fmt.Sprintf("todo-%d", len(s.todos)+1),
		Title:  title,
		Status: components.StatusPending,
		Tags:   tags,
	})
}

// toggle flips a todo between pending and completed. It reports false for
// unknown ids.
func (s *memStore) toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID != id {
			continue
		}
		if s.todos[i].Status == components.StatusCompleted {
			s.todos[i].Status = components.StatusPending
		} else {
			s.todos[i].Status = components.StatusCompleted
		}
		return true
	}
	return false
}

// List returns copies of the stored todos matching status.
func (s *memStore) List(status *components.Status) []*components.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*components.Todo
	for _, t := range s.todos {
		if status != nil && t.Status != *status {
			continue
		}
		out = append(out, &t)
	}
	return out
}

func (s *memStore) Stats() components.TodoStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := components.TodoStats{Total: len(s.todos)}
	for _, t := range s.todos {
		if t.Status == components.StatusCompleted {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}
