package gantt

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/ganttflow/internal/domain"
)

// ParsePredecessors parses a comma-separated id list, trimming whitespace
// around each token. If any token fails to parse as an integer the whole
// list resolves to empty: partial lists are never produced.
func ParsePredecessors(s string) []int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil
		}
		ids = append(ids, n)
	}
	return ids
}

// DropReason classifies why a predecessor reference produced no edge.
type DropReason string

const (
	DropUnknownID DropReason = "unknown_id"
	DropHidden    DropReason = "hidden_target"
)

// DroppedRef is a diagnostic record for a predecessor reference that did not
// become an edge. Drops are never fatal and never affect rendering; they
// exist so a caller can log why an expected connector is missing.
type DroppedRef struct {
	TaskID int
	Ref    int
	Reason DropReason
}

// Resolution is the resolver's output: the dependency edges to render plus
// the references that were dropped along the way.
type Resolution struct {
	Edges   []domain.DependencyEdge
	Dropped []DroppedRef
}

// ResolveDependencies emits one edge per predecessor reference of each
// visible regular task whose target is itself visible. Milestones can be
// predecessor targets but never consume edges as dependents. Edge order is
// deterministic: dependents in id order, references in list order.
func ResolveDependencies(tasks []domain.TaskRecord, vis Visibility) Resolution {
	byID := make(map[int]domain.TaskRecord, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	var res Resolution
	for _, t := range tasks {
		if !vis[t.ID] || t.Kind != domain.TaskRegular {
			continue
		}
		for _, ref := range t.PredecessorIDs {
			pred, ok := byID[ref]
			if !ok {
				res.Dropped = append(res.Dropped, DroppedRef{TaskID: t.ID, Ref: ref, Reason: DropUnknownID})
				continue
			}
			if !vis[pred.ID] {
				res.Dropped = append(res.Dropped, DroppedRef{TaskID: t.ID, Ref: ref, Reason: DropHidden})
				continue
			}
			res.Edges = append(res.Edges, domain.DependencyEdge{FromID: ref, ToID: t.ID})
		}
	}
	return res
}
