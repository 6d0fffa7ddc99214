package taskgraph

// Handle identifies a task held by a Store. Handles are issued
// monotonically and never reused: once a task is removed, its handle is
// permanently invalid and every lookup with it reports the task as
// missing instead of silently resolving to a newer task.
type Handle int
