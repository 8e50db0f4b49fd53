package gantt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ganttflow/internal/domain"
)

func TestParsePredecessors(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"", nil},
		{"   ", nil},
		{"3", []int{3}},
		{"1,2,3", []int{1, 2, 3}},
		{" 1 , 3 ", []int{1, 3}},
		{"1, abc, 3", nil},
		{"1,,3", nil},
		{"1.5", nil},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParsePredecessors(tc.in), "input %q", tc.in)
	}
}

func allVisible(tasks []domain.TaskRecord) Visibility {
	vis := make(Visibility, len(tasks))
	for _, t := range tasks {
		vis[t.ID] = true
	}
	return vis
}

func TestResolveDependencies_EmitsEdgesForVisibleTargets(t *testing.T) {
	tasks := []domain.TaskRecord{
		levelTask(1, 1, false),
		levelTask(2, 1, false),
	}
	tasks[1].PredecessorIDs = []int{1}

	res := ResolveDependencies(tasks, allVisible(tasks))

	require.Len(t, res.Edges, 1)
	assert.Equal(t, domain.DependencyEdge{FromID: 1, ToID: 2}, res.Edges[0])
	assert.Empty(t, res.Dropped)
}

func TestResolveDependencies_MilestonePredecessorTarget(t *testing.T) {
	tasks := []domain.TaskRecord{
		levelTask(1, 1, false),
		levelTask(2, 1, false),
	}
	tasks[0].DurationDays = 0
	tasks[0].Kind = domain.TaskMilestone
	tasks[1].PredecessorIDs = []int{1}

	res := ResolveDependencies(tasks, allVisible(tasks))

	require.Len(t, res.Edges, 1, "milestones are valid predecessor targets")
}

func TestResolveDependencies_MilestonesNeverConsumeEdges(t *testing.T) {
	tasks := []domain.TaskRecord{
		levelTask(1, 1, false),
		levelTask(2, 1, false),
	}
	tasks[1].DurationDays = 0
	tasks[1].Kind = domain.TaskMilestone
	tasks[1].PredecessorIDs = []int{1}

	res := ResolveDependencies(tasks, allVisible(tasks))

	assert.Empty(t, res.Edges, "milestone dependents render no connectors")
	assert.Empty(t, res.Dropped)
}

func TestResolveDependencies_DropsUnknownID(t *testing.T) {
	tasks := []domain.TaskRecord{levelTask(1, 1, false)}
	tasks[0].PredecessorIDs = []int{99}

	res := ResolveDependencies(tasks, allVisible(tasks))

	assert.Empty(t, res.Edges)
	require.Len(t, res.Dropped, 1)
	assert.Equal(t, DroppedRef{TaskID: 1, Ref: 99, Reason: DropUnknownID}, res.Dropped[0])
}

func TestResolveDependencies_DropsHiddenTarget(t *testing.T) {
	tasks := []domain.TaskRecord{
		levelTask(1, 1, false),
		levelTask(2, 1, false),
	}
	tasks[1].PredecessorIDs = []int{1}
	vis := Visibility{1: false, 2: true}

	res := ResolveDependencies(tasks, vis)

	assert.Empty(t, res.Edges)
	require.Len(t, res.Dropped, 1)
	assert.Equal(t, DropHidden, res.Dropped[0].Reason)
}

func TestResolveDependencies_HiddenDependentEmitsNothing(t *testing.T) {
	tasks := []domain.TaskRecord{
		levelTask(1, 1, false),
		levelTask(2, 1, false),
	}
	tasks[1].PredecessorIDs = []int{1}
	vis := Visibility{1: true, 2: false}

	res := ResolveDependencies(tasks, vis)

	assert.Empty(t, res.Edges)
	assert.Empty(t, res.Dropped, "hidden dependents are skipped entirely")
}
