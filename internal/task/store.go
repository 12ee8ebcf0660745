package task

// Store is an ordered collection of tasks. Insertion order is display order.
type Store struct {
	tasks []Task
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds t to the end and returns its index. A task without an ID gets
// one.
func (s *Store) Append(t Task) int {
	if t.ID == "" {
		t.ID = NewID()
	}
	s.tasks = append(s.tasks, t)
	return len(s.tasks) - 1
}

// At returns a copy of the task at index.
func (s *Store) At(index int) (Task, error) {
	if err := s.check("at", index); err != nil {
		return Task{}, err
	}
	return s.tasks[index], nil
}

// ReplaceFieldsAt mutates the task at index in place. The task keeps its ID
// whatever the updater does.
func (s *Store) ReplaceFieldsAt(index int, updater func(*Task)) error {
	if err := s.check("replace", index); err != nil {
		return err
	}
	id := s.tasks[index].ID
	updater(&s.tasks[index])
	s.tasks[index].ID = id
	return nil
}

// RemoveAt removes the task at index and returns it. Later tasks shift down
// by one.
func (s *Store) RemoveAt(index int) (Task, error) {
	if err := s.check("remove", index); err != nil {
		return Task{}, err
	}
	removed := s.tasks[index]
	copy(s.tasks[index:], s.tasks[index+1:])
	s.tasks[len(s.tasks)-1] = Task{}
	s.tasks = s.tasks[:len(s.tasks)-1]
	return removed, nil
}

// Size returns the number of tasks.
func (s *Store) Size() int {
	return len(s.tasks)
}

// IsEmpty reports whether the store holds no tasks.
func (s *Store) IsEmpty() bool {
	return len(s.tasks) == 0
}

// IndexOf returns the current index of the task with id, or -1.
func (s *Store) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Tasks returns a snapshot of the store contents.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) check(op string, index int) error {
	if index < 0 || index >= len(s.tasks) {
		return &IndexError{Op: op, Index: index, Size: len(s.tasks)}
	}
	return nil
}
