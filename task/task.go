// Package task provides the task value type and the derivation rules
// that keep its start, finish and duration fields consistent.
package task

import (
	"fmt"
	"time"

	"github.com/Krahos/planter-core/duration"
	"github.com/Krahos/planter-core/resource"
)

// Task is a unit of work within a project plan. Its schedule fields
// are all optional but kept mutually consistent: whenever start and
// finish are both set, finish >= start, and the duration (when set)
// is exactly their distance. Every mutator restores this before it
// returns; a mutator that fails changes nothing.
type Task struct {
	title       string
	description string
	completed   bool
	start       *time.Time
	finish      *time.Time
	dur         *duration.Duration
	resources   []resource.Resource
}

// New creates a task with the given title and no schedule.
func New(title string) Task {
	return Task{title: title}
}

// Title returns the title of the task.
func (t *Task) Title() string { return t.title }

// EditTitle replaces the title of the task.
func (t *Task) EditTitle(title string) {
	t.title = title
}

// Description returns the description of the task.
func (t *Task) Description() string { return t.description }

// EditDescription replaces the description of the task.
func (t *Task) EditDescription(description string) {
	t.description = description
}

// Completed reports whether the task is done. False by default.
func (t *Task) Completed() bool { return t.completed }

// MarkCompleted flags the task as done.
func (t *Task) MarkCompleted() {
	t.completed = true
}

// AddResource assigns a resource to the task.
func (t *Task) AddResource(r resource.Resource) {
	t.resources = append(t.resources, r)
}

// Resources returns the resources assigned to the task.
func (t *Task) Resources() []resource.Resource {
	return t.resources
}

// Start returns the start time and whether one is set.
func (t *Task) Start() (time.Time, bool) {
	if t.start == nil {
		return time.Time{}, false
	}
	return *t.start, true
}

// Finish returns the finish time and whether one is set.
func (t *Task) Finish() (time.Time, bool) {
	if t.finish == nil {
		return time.Time{}, false
	}
	return *t.finish, true
}

// Duration returns the duration and whether one is set.
func (t *Task) Duration() (duration.Duration, bool) {
	if t.dur == nil {
		return duration.Duration{}, false
	}
	return *t.dur, true
}

// SetStart stores a new start time and rederives the dependent fields.
// An existing duration wins: the finish moves to start + duration. With
// only a finish set, a finish earlier than the new start is pulled up
// to it (zero-length task), and a missing duration is derived from the
// two instants. Deriving a duration beyond the representable bound
// fails with the duration package's error and leaves every field
// unchanged.
func (t *Task) SetStart(start time.Time) error {
	newStart := start
	newFinish := t.finish
	newDur := t.dur

	switch {
	case t.dur != nil:
		f := start.Add(t.dur.Std())
		newFinish = &f
	case t.finish != nil:
		f := *t.finish
		if f.Before(start) {
			f = start
		}
		d, err := duration.New(f.Sub(start))
		if err != nil {
			return fmt.Errorf("deriving duration from start and finish: %w", err)
		}
		newFinish = &f
		newDur = &d
	}

	t.start = &newStart
	t.finish = newFinish
	t.dur = newDur
	return nil
}

// SetFinish stores a new finish time and rederives the dependent
// fields. With a start set, a finish earlier than it pushes the start
// back down to the finish (finish wins over a conflicting start), and
// the duration always becomes the distance between the two. Deriving a
// duration beyond the representable bound fails and leaves every field
// unchanged.
func (t *Task) SetFinish(finish time.Time) error {
	newFinish := finish
	newStart := t.start
	newDur := t.dur

	if t.start != nil {
		s := *t.start
		if finish.Before(s) {
			s = finish
		}
		d, err := duration.New(finish.Sub(s))
		if err != nil {
			return fmt.Errorf("deriving duration from start and finish: %w", err)
		}
		newStart = &s
		newDur = &d
	}

	t.finish = &newFinish
	t.start = newStart
	t.dur = newDur
	return nil
}

// SetDuration stores a new duration. With a start set, the finish
// moves to start + duration unconditionally, overriding any previous
// finish. The duration itself is pre-validated by its constructor, so
// this cannot fail.
func (t *Task) SetDuration(d duration.Duration) {
	t.dur = &d
	if t.start != nil {
		f := t.start.Add(d.Std())
		t.finish = &f
	}
}
