package gantt

import "github.com/alexanderramin/ganttflow/internal/domain"

// collapseState is the two-state machine threaded through the row scan:
// either inactive, or collapsing everything deeper than parentLevel.
type collapseState struct {
	active      bool
	parentLevel int
}

// step advances the machine by one row and reports whether that row is
// hidden. A collapse marker row is never hidden itself; it opens (or
// re-anchors) a collapse span at its own level. A row at or above the parent
// level closes the span and stays visible.
func (s collapseState) step(t domain.TaskRecord) (collapseState, bool) {
	if t.HideDescendants {
		return collapseState{active: true, parentLevel: t.OutlineLevel}, false
	}
	if s.active {
		if t.OutlineLevel > s.parentLevel {
			return s, true
		}
		return collapseState{}, false
	}
	return s, false
}

// Visibility records, per task id, whether the task survives both the
// outline-level filter and the collapse filter.
type Visibility map[int]bool

// ApplyCollapse runs a single forward scan over all tasks in original order
// and combines the collapse result with the allowed-level filter. There is
// no lookahead and no backtracking; the scan state carries across the whole
// sequence regardless of task kind, so a milestone inside a collapsed
// subtree is hidden exactly like a regular task.
func ApplyCollapse(tasks []domain.TaskRecord, cfg Config) Visibility {
	vis := make(Visibility, len(tasks))
	state := collapseState{}
	for _, t := range tasks {
		var hidden bool
		state, hidden = state.step(t)
		vis[t.ID] = !hidden && cfg.levelAllowed(t.OutlineLevel)
	}
	return vis
}
