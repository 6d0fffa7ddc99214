package taskgraph

import "errors"

var (
	// ErrHandleNotFound reports an operation that referenced a handle
	// absent from the store or graph.
	ErrHandleNotFound = errors.New("taskgraph: handle not found")

	// ErrEdgeNotFound reports removal of a relationship that does not
	// exist between the given ordered pair of handles.
	ErrEdgeNotFound = errors.New("taskgraph: relationship not found")

	// ErrCycleDetected reports a relationship that would create a path
	// from a task back to itself.
	ErrCycleDetected = errors.New("taskgraph: relationship would create a cycle")

	// ErrInvariantViolation reports a change failing to apply after it
	// was already validated. It indicates a bug in the graph itself,
	// never a caller mistake.
	ErrInvariantViolation = errors.New("taskgraph: internal invariant violation")
)
