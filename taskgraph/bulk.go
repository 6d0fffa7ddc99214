package taskgraph

import "fmt"

// ReplacePredecessors makes the predecessor set of t exactly the given
// handles, as one all-or-nothing operation. Existing predecessor edges
// not in the list are removed; new edges carry the default
// FinishToStart relationship. An empty list clears every predecessor,
// and duplicate handles collapse to a single edge.
//
// Validation happens in full before any mutation: ErrHandleNotFound
// when t or any listed handle is unregistered, ErrCycleDetected when
// any proposed edge would close a cycle (listing t itself always does).
// A failure during the commit phase means the validation above was
// wrong, which is a bug; it surfaces as ErrInvariantViolation.
func (g *Graph) ReplacePredecessors(t Handle, predecessors []Handle) error {
	if err := g.validateHandles(t, predecessors); err != nil {
		return fmt.Errorf("setting predecessors of %d: %w", t, err)
	}

	// An edge p -> t can only close a cycle through a path t ~> p, and
	// incoming edges of t never lie on a path that starts at t in an
	// acyclic graph. Each proposed edge can therefore be validated
	// independently against the graph as it stands, which makes the
	// structural copy the simulation would otherwise need unnecessary.
	for _, p := range predecessors {
		if g.reachable(t, p) {
			return fmt.Errorf("setting predecessors of %d: edge %d -> %d: %w", t, p, t, ErrCycleDetected)
		}
	}

	for _, p := range g.Predecessors(t) {
		if err := g.RemoveEdge(p, t); err != nil {
			return fmt.Errorf("clearing predecessor %d of %d: %v: %w", p, t, err, ErrInvariantViolation)
		}
	}
	for _, p := range predecessors {
		if err := g.UpsertEdge(p, t, FinishToStart); err != nil {
			return fmt.Errorf("applying validated predecessor %d of %d: %v: %w", p, t, err, ErrInvariantViolation)
		}
	}
	return nil
}

// ReplaceSuccessors mirrors ReplacePredecessors for the successor set
// of t: after it returns successfully the tasks t points at are exactly
// the given handles, connected with FinishToStart edges, and on any
// failure the graph is untouched.
func (g *Graph) ReplaceSuccessors(t Handle, successors []Handle) error {
	if err := g.validateHandles(t, successors); err != nil {
		return fmt.Errorf("setting successors of %d: %w", t, err)
	}

	// Each accepted edge t -> s cannot create a path s' ~> t for a
	// later candidate s' that did not already exist, so here too every
	// proposed edge is checked against the unmodified graph.
	for _, s := range successors {
		if g.reachable(s, t) {
			return fmt.Errorf("setting successors of %d: edge %d -> %d: %w", t, t, s, ErrCycleDetected)
		}
	}

	for _, s := range g.Successors(t) {
		if err := g.RemoveEdge(t, s); err != nil {
			return fmt.Errorf("clearing successor %d of %d: %v: %w", s, t, err, ErrInvariantViolation)
		}
	}
	for _, s := range successors {
		if err := g.UpsertEdge(t, s, FinishToStart); err != nil {
			return fmt.Errorf("applying validated successor %d of %d: %v: %w", s, t, err, ErrInvariantViolation)
		}
	}
	return nil
}

func (g *Graph) validateHandles(t Handle, related []Handle) error {
	if !g.Contains(t) {
		return fmt.Errorf("task %d is not in the graph: %w", t, ErrHandleNotFound)
	}
	for _, h := range related {
		if !g.Contains(h) {
			return fmt.Errorf("related task %d is not in the graph: %w", h, ErrHandleNotFound)
		}
	}
	return nil
}
