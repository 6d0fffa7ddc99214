package taskgraph

import (
	"fmt"
	"sort"
)

// Graph is a directed graph of time relationships between task handles.
// It maintains a single global invariant: no sequence of successful
// mutations can ever produce a cycle. Every mutator validates before it
// touches graph state, so a rejected call leaves the graph exactly as
// it was.
//
// The graph tracks handles, not tasks. Callers register the handles a
// Store issued via AddNode; the graph never consults the store.
type Graph struct {
	succ map[Handle]map[Handle]TimeRelationship
	pred map[Handle]map[Handle]struct{}
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		succ: make(map[Handle]map[Handle]TimeRelationship),
		pred: make(map[Handle]map[Handle]struct{}),
	}
}

// AddNode registers h with the graph. Registering a handle twice is a
// no-op.
func (g *Graph) AddNode(h Handle) {
	if _, ok := g.succ[h]; ok {
		return
	}
	g.succ[h] = make(map[Handle]TimeRelationship)
	g.pred[h] = make(map[Handle]struct{})
}

// Contains reports whether h is registered with the graph.
func (g *Graph) Contains(h Handle) bool {
	_, ok := g.succ[h]
	return ok
}

// UpsertEdge records a relationship of the given kind from predecessor
// to successor. When the ordered pair already has an edge, its label is
// replaced and no other state changes; at most one edge ever exists
// between an ordered pair.
//
// It fails with ErrHandleNotFound when either handle is unregistered
// and with ErrCycleDetected when a new edge would close a path from
// successor back to predecessor (a self-relationship is the one-node
// case of this).
func (g *Graph) UpsertEdge(predecessor, successor Handle, kind TimeRelationship) error {
	if !g.Contains(predecessor) || !g.Contains(successor) {
		return fmt.Errorf("relating %d -> %d: %w", predecessor, successor, ErrHandleNotFound)
	}
	if _, exists := g.succ[predecessor][successor]; !exists {
		// Replacing a label cannot close a cycle; only a new edge can.
		if g.reachable(successor, predecessor) {
			return fmt.Errorf("relating %d -> %d: %w", predecessor, successor, ErrCycleDetected)
		}
	}
	g.succ[predecessor][successor] = kind
	g.pred[successor][predecessor] = struct{}{}
	return nil
}

// RemoveEdge deletes the relationship between exactly that ordered
// pair. It fails with ErrEdgeNotFound when no such edge exists; whether
// the handles themselves are registered is irrelevant.
func (g *Graph) RemoveEdge(predecessor, successor Handle) error {
	if _, ok := g.succ[predecessor][successor]; !ok {
		return fmt.Errorf("unrelating %d -> %d: %w", predecessor, successor, ErrEdgeNotFound)
	}
	delete(g.succ[predecessor], successor)
	delete(g.pred[successor], predecessor)
	return nil
}

// RemoveNode deletes h and every edge incident to it in either
// direction. Removing an unregistered handle is a no-op.
func (g *Graph) RemoveNode(h Handle) {
	for s := range g.succ[h] {
		delete(g.pred[s], h)
	}
	for p := range g.pred[h] {
		delete(g.succ[p], h)
	}
	delete(g.succ, h)
	delete(g.pred, h)
}

// Relationship returns the label on the predecessor -> successor edge,
// or false when that ordered pair has no edge.
func (g *Graph) Relationship(predecessor, successor Handle) (TimeRelationship, bool) {
	kind, ok := g.succ[predecessor][successor]
	return kind, ok
}

// Successors returns the handles h points at. A handle with no outgoing
// edges (or one never registered) yields an empty slice.
func (g *Graph) Successors(h Handle) []Handle {
	return sortedKeys(g.succ[h])
}

// Predecessors returns the handles pointing at h. A handle with no
// incoming edges (or one never registered) yields an empty slice.
func (g *Graph) Predecessors(h Handle) []Handle {
	out := make([]Handle, 0, len(g.pred[h]))
	for p := range g.pred[h] {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// reachable reports whether to can be reached from from by following
// relationship edges. Every handle reaches itself. Iterative DFS,
// O(V+E).
func (g *Graph) reachable(from, to Handle) bool {
	if from == to {
		return true
	}
	seen := map[Handle]bool{from: true}
	stack := []Handle{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range g.succ[n] {
			if next == to {
				return true
			}
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}

func sortedKeys(m map[Handle]TimeRelationship) []Handle {
	out := make([]Handle, 0, len(m))
	for h := range m {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
