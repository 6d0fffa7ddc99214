package taskgraph

import "testing"

func TestSubtasks_AddAndQuery(t *testing.T) {
	var s Subtasks
	s.Add(0, 1)
	s.Add(0, 2)
	s.Add(3, 1)

	if got := s.Of(0); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Of(0) = %v, want [1 2]", got)
	}
	if got := s.Parents(1); len(got) != 2 || got[0] != 0 || got[1] != 3 {
		t.Errorf("Parents(1) = %v, want [0 3]", got)
	}
	if got := s.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestSubtasks_KeepsDuplicates(t *testing.T) {
	var s Subtasks
	s.Add(0, 1)
	s.Add(0, 1)

	if got := s.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2: duplicates are not collapsed", got)
	}
}

func TestSubtasks_NoValidation(t *testing.T) {
	// Composition pairs are deliberately unchecked: handles need not
	// exist anywhere and mutual composition is representable.
	var s Subtasks
	s.Add(100, 200)
	s.Add(200, 100)

	if got := s.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := s.Of(100); len(got) != 1 || got[0] != 200 {
		t.Errorf("Of(100) = %v, want [200]", got)
	}
}

func TestSubtasks_RelationsIsACopy(t *testing.T) {
	var s Subtasks
	s.Add(0, 1)

	rels := s.Relations()
	rels[0].Subtask = 9

	if got := s.Of(0); len(got) != 1 || got[0] != 1 {
		t.Errorf("Of(0) = %v, want [1]: mutating the returned slice must not affect the set", got)
	}
}
