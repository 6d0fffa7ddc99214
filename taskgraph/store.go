package taskgraph

import (
	"fmt"

	"github.com/Krahos/planter-core/task"
)

// Store is an insertion-ordered collection of tasks addressed by
// stable handles. Removal tombstones a handle forever; it is never
// handed out again.
type Store struct {
	next  Handle
	tasks map[Handle]*task.Task
	order []Handle
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{tasks: make(map[Handle]*task.Task)}
}

// Add appends t to the store and returns its handle. It never fails.
func (s *Store) Add(t task.Task) Handle {
	h := s.next
	s.next++
	s.tasks[h] = &t
	s.order = append(s.order, h)
	return h
}

// Get returns the task addressed by h. The second return is false when
// h was never issued or was removed. The returned pointer is live:
// mutations through it are visible to later lookups.
func (s *Store) Get(h Handle) (*task.Task, bool) {
	t, ok := s.tasks[h]
	return t, ok
}

// Contains reports whether h currently addresses a task.
func (s *Store) Contains(h Handle) bool {
	_, ok := s.tasks[h]
	return ok
}

// Remove deletes the task addressed by h. The handle becomes
// permanently invalid.
func (s *Store) Remove(h Handle) error {
	if _, ok := s.tasks[h]; !ok {
		return fmt.Errorf("removing task %d: %w", h, ErrHandleNotFound)
	}
	delete(s.tasks, h)
	for i, o := range s.order {
		if o == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Tasks returns the live tasks in insertion order.
func (s *Store) Tasks() []*task.Task {
	out := make([]*task.Task, 0, len(s.order))
	for _, h := range s.order {
		out = append(out, s.tasks[h])
	}
	return out
}

// Handles returns the live handles in insertion order.
func (s *Store) Handles() []Handle {
	out := make([]Handle, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of live tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}
