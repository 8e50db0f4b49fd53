package gantt

import "github.com/alexanderramin/ganttflow/internal/domain"

// Layout is the vertical row assignment: one display row per distinct label
// in first-appearance order, plus the task-id → position index used by the
// geometry builder.
type Layout struct {
	Rows      []domain.DisplayRow
	positions map[int]int
}

// AssignRows walks the visible tasks (both kinds) in original id order and
// assigns positions per distinct label string. Two visible tasks with an
// identical label share one position — a deliberate carry-over from the
// reference chart, covered by an explicit test. Position 0 is the first
// visible row; the renderer draws positions top to bottom.
func AssignRows(tasks []domain.TaskRecord, vis Visibility, cfg Config) Layout {
	byLabel := make(map[string]int)
	l := Layout{positions: make(map[int]int, len(tasks))}

	for _, t := range tasks {
		if !vis[t.ID] {
			continue
		}
		label := t.Label(cfg.Indent)
		pos, ok := byLabel[label]
		if !ok {
			pos = len(l.Rows)
			byLabel[label] = pos
			l.Rows = append(l.Rows, domain.DisplayRow{Label: label, Position: pos})
		}
		l.positions[t.ID] = pos
	}
	return l
}

// Position returns the display position for a task id, if the task has a
// visible row.
func (l Layout) Position(id int) (int, bool) {
	pos, ok := l.positions[id]
	return pos, ok
}
