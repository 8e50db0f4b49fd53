package domain

import "time"

type TaskKind string

const (
	TaskRegular   TaskKind = "regular"
	TaskMilestone TaskKind = "milestone"
)

// TaskRecord is one normalized input row. ID is the 1-based position of the
// row in the source sequence, assigned once at normalization; it is the only
// join key carried across pipeline stages.
type TaskRecord struct {
	ID              int
	Name            string
	Start           time.Time
	Finish          time.Time
	DurationDays    int
	OutlineLevel    int
	HideDescendants bool
	PredecessorIDs  []int
	Kind            TaskKind
}

// IsMilestone reports whether the task has zero duration and renders as a
// point marker instead of a bar.
func (t TaskRecord) IsMilestone() bool {
	return t.Kind == TaskMilestone
}

// Label returns the display label for the task: two spaces of indent per
// hierarchy level below root, then the name.
func (t TaskRecord) Label(indent string) string {
	label := t.Name
	for i := 1; i < t.OutlineLevel; i++ {
		label = indent + label
	}
	return label
}
