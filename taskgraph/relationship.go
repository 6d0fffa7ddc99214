package taskgraph

// TimeRelationship labels a directed edge between a predecessor task
// and a successor task with which endpoints of the two are temporally
// linked.
type TimeRelationship string

const (
	// StartToStart: the predecessor has to start for the successor to start.
	StartToStart TimeRelationship = "start_to_start"
	// StartToFinish: the predecessor has to start for the successor to finish.
	StartToFinish TimeRelationship = "start_to_finish"
	// FinishToStart: the predecessor has to finish for the successor to
	// start. This is the default for new relationships.
	FinishToStart TimeRelationship = "finish_to_start"
	// FinishToFinish: the predecessor has to finish for the successor to finish.
	FinishToFinish TimeRelationship = "finish_to_finish"
)

var validRelationships = map[TimeRelationship]bool{
	StartToStart:   true,
	StartToFinish:  true,
	FinishToStart:  true,
	FinishToFinish: true,
}

// Valid reports whether r is one of the four known relationship kinds.
func (r TimeRelationship) Valid() bool {
	return validRelationships[r]
}
