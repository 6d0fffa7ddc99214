package taskgraph

// SubtaskRelation records that a task is decomposed into a subtask.
type SubtaskRelation struct {
	Task    Handle
	Subtask Handle
}

// Subtasks is a flat list of composition pairs. Unlike Graph it
// performs no existence or acyclicity checks and keeps duplicate pairs
// as they are added; callers that need a checked composition hierarchy
// must validate on their side.
type Subtasks struct {
	relations []SubtaskRelation
}

// Add records subtask as a component of task.
func (s *Subtasks) Add(task, subtask Handle) {
	s.relations = append(s.relations, SubtaskRelation{Task: task, Subtask: subtask})
}

// Relations returns a copy of every recorded pair, in insertion order.
func (s *Subtasks) Relations() []SubtaskRelation {
	out := make([]SubtaskRelation, len(s.relations))
	copy(out, s.relations)
	return out
}

// Of returns the subtasks recorded for task, in insertion order.
func (s *Subtasks) Of(task Handle) []Handle {
	var out []Handle
	for _, r := range s.relations {
		if r.Task == task {
			out = append(out, r.Subtask)
		}
	}
	return out
}

// Parents returns the tasks that list subtask as a component, in
// insertion order.
func (s *Subtasks) Parents(subtask Handle) []Handle {
	var out []Handle
	for _, r := range s.relations {
		if r.Subtask == subtask {
			out = append(out, r.Task)
		}
	}
	return out
}

// Len returns the number of recorded pairs, duplicates included.
func (s *Subtasks) Len() int {
	return len(s.relations)
}
