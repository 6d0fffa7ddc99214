// Package project ties the planning core together: a project owns its
// task store, the dependency graph over it, subtask composition, and
// the resources and stakeholders attached to the plan.
package project

import (
	"fmt"
	"time"

	"github.com/Krahos/planter-core/resource"
	"github.com/Krahos/planter-core/stakeholder"
	"github.com/Krahos/planter-core/task"
	"github.com/Krahos/planter-core/taskgraph"
)

// Project is the single owner of a task store and its relationship
// graph. All mutation goes through it synchronously; sharing a project
// across goroutines requires one external mutual-exclusion boundary
// around the whole value.
type Project struct {
	name         string
	description  string
	startDate    *time.Time
	store        *taskgraph.Store
	graph        *taskgraph.Graph
	subtasks     taskgraph.Subtasks
	resources    []resource.Resource
	stakeholders []stakeholder.Stakeholder
}

// New creates an empty project with the given name.
func New(name string) *Project {
	return &Project{
		name:  name,
		store: taskgraph.NewStore(),
		graph: taskgraph.NewGraph(),
	}
}

// WithDescription sets the description and returns the project, for
// chained construction.
func (p *Project) WithDescription(description string) *Project {
	p.description = description
	return p
}

// WithStartDate sets the start date and returns the project, for
// chained construction.
func (p *Project) WithStartDate(startDate time.Time) *Project {
	p.startDate = &startDate
	return p
}

// WithTask adds a task and returns the project, for chained
// construction.
func (p *Project) WithTask(t task.Task) *Project {
	p.AddTask(t)
	return p
}

// WithTasks adds tasks in order and returns the project, for chained
// construction.
func (p *Project) WithTasks(tasks ...task.Task) *Project {
	for _, t := range tasks {
		p.AddTask(t)
	}
	return p
}

// Name returns the name of the project.
func (p *Project) Name() string { return p.name }

// Description returns the description of the project.
func (p *Project) Description() string { return p.description }

// StartDate returns the start date and whether one is set.
func (p *Project) StartDate() (time.Time, bool) {
	if p.startDate == nil {
		return time.Time{}, false
	}
	return *p.startDate, true
}

// AddTask stores t and registers its handle with the dependency graph.
func (p *Project) AddTask(t task.Task) taskgraph.Handle {
	h := p.store.Add(t)
	p.graph.AddNode(h)
	return h
}

// RemoveTask deletes the task and every relationship referencing it,
// in either direction. The handle is invalid afterwards.
func (p *Project) RemoveTask(h taskgraph.Handle) error {
	if err := p.store.Remove(h); err != nil {
		return fmt.Errorf("removing task from project: %w", err)
	}
	p.graph.RemoveNode(h)
	return nil
}

// Task returns the task addressed by h and whether it exists. The
// returned pointer is live; edits through it stick.
func (p *Project) Task(h taskgraph.Handle) (*task.Task, bool) {
	return p.store.Get(h)
}

// Tasks returns the live tasks in insertion order.
func (p *Project) Tasks() []*task.Task {
	return p.store.Tasks()
}

// TaskCount returns the number of live tasks.
func (p *Project) TaskCount() int {
	return p.store.Len()
}

// AddRelationship records a relationship of the given kind from
// predecessor to successor, replacing the kind if the pair is already
// related. It fails rather than allow a cycle.
func (p *Project) AddRelationship(predecessor, successor taskgraph.Handle, kind taskgraph.TimeRelationship) error {
	if err := p.graph.UpsertEdge(predecessor, successor, kind); err != nil {
		return fmt.Errorf("adding relationship to project: %w", err)
	}
	return nil
}

// RemoveRelationship deletes the relationship between exactly that
// ordered pair of tasks.
func (p *Project) RemoveRelationship(predecessor, successor taskgraph.Handle) error {
	if err := p.graph.RemoveEdge(predecessor, successor); err != nil {
		return fmt.Errorf("removing relationship from project: %w", err)
	}
	return nil
}

// SuccessorHandles returns the handles of the tasks that depend on h.
func (p *Project) SuccessorHandles(h taskgraph.Handle) []taskgraph.Handle {
	return p.graph.Successors(h)
}

// Successors returns the tasks that depend on h.
func (p *Project) Successors(h taskgraph.Handle) []*task.Task {
	return p.resolve(p.graph.Successors(h))
}

// PredecessorHandles returns the handles of the tasks h depends on.
func (p *Project) PredecessorHandles(h taskgraph.Handle) []taskgraph.Handle {
	return p.graph.Predecessors(h)
}

// Predecessors returns the tasks h depends on.
func (p *Project) Predecessors(h taskgraph.Handle) []*task.Task {
	return p.resolve(p.graph.Predecessors(h))
}

// ReplacePredecessors makes the predecessors of t exactly the given
// handles, atomically: on any error nothing has changed.
func (p *Project) ReplacePredecessors(t taskgraph.Handle, predecessors []taskgraph.Handle) error {
	if err := p.graph.ReplacePredecessors(t, predecessors); err != nil {
		return fmt.Errorf("updating predecessors within the project: %w", err)
	}
	return nil
}

// ReplaceSuccessors makes the successors of t exactly the given
// handles, atomically: on any error nothing has changed.
func (p *Project) ReplaceSuccessors(t taskgraph.Handle, successors []taskgraph.Handle) error {
	if err := p.graph.ReplaceSuccessors(t, successors); err != nil {
		return fmt.Errorf("updating successors within the project: %w", err)
	}
	return nil
}

// AddSubtask records subtask as a component of parent. Composition is
// tracked separately from time relationships and is not cycle-checked.
func (p *Project) AddSubtask(parent, subtask taskgraph.Handle) {
	p.subtasks.Add(parent, subtask)
}

// Subtasks returns the handles recorded as components of parent.
func (p *Project) Subtasks(parent taskgraph.Handle) []taskgraph.Handle {
	return p.subtasks.Of(parent)
}

// AddResource attaches a resource to the project.
func (p *Project) AddResource(r resource.Resource) {
	p.resources = append(p.resources, r)
}

// Resources returns the resources attached to the project.
func (p *Project) Resources() []resource.Resource {
	return p.resources
}

// AddStakeholder attaches a stakeholder to the project.
func (p *Project) AddStakeholder(s stakeholder.Stakeholder) {
	p.stakeholders = append(p.stakeholders, s)
}

// Stakeholders returns the stakeholders attached to the project.
func (p *Project) Stakeholders() []stakeholder.Stakeholder {
	return p.stakeholders
}

func (p *Project) resolve(handles []taskgraph.Handle) []*task.Task {
	out := make([]*task.Task, 0, len(handles))
	for _, h := range handles {
		if t, ok := p.store.Get(h); ok {
			out = append(out, t)
		}
	}
	return out
}
