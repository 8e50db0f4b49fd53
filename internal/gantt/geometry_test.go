package gantt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ganttflow/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func spanTask(id, level int, start, finish time.Time) domain.TaskRecord {
	task := levelTask(id, level, false)
	task.Start = start
	task.Finish = finish
	return task
}

func buildAll(tasks []domain.TaskRecord, cfg Config) *domain.ChartGeometry {
	vis := ApplyCollapse(tasks, cfg)
	res := ResolveDependencies(tasks, vis)
	layout := AssignRows(tasks, vis, cfg)
	return BuildGeometry(tasks, vis, res, layout, cfg)
}

func TestBuildGeometry_AxisPadding(t *testing.T) {
	tasks := []domain.TaskRecord{
		spanTask(1, 1, day(2024, 1, 1), day(2024, 2, 1)),
		spanTask(2, 1, day(2024, 2, 1), day(2024, 3, 1)),
	}

	geo := buildAll(tasks, DefaultConfig())

	assert.Equal(t, day(2023, 12, 27), geo.Axis.Start, "5 days of lookback")
	assert.Equal(t, day(2024, 3, 31), geo.Axis.End, "30 days of lookahead")
}

func TestBuildGeometry_AxisIgnoresHiddenTasks(t *testing.T) {
	tasks := []domain.TaskRecord{
		spanTask(1, 1, day(2024, 2, 1), day(2024, 3, 1)),
		spanTask(2, 5, day(2023, 1, 1), day(2025, 1, 1)), // filtered out
	}

	geo := buildAll(tasks, DefaultConfig())

	assert.Equal(t, day(2024, 1, 27), geo.Axis.Start)
	assert.Equal(t, day(2024, 3, 31), geo.Axis.End)
}

func TestBuildGeometry_BarGeometryAndColorTiers(t *testing.T) {
	cfg := DefaultConfig()
	tasks := []domain.TaskRecord{
		spanTask(1, 1, day(2024, 1, 1), day(2024, 1, 10)),
		spanTask(2, 2, day(2024, 1, 1), day(2024, 1, 10)),
		spanTask(3, 3, day(2024, 1, 1), day(2024, 1, 10)),
		spanTask(4, 4, day(2024, 1, 1), day(2024, 1, 10)),
	}
	for i := range tasks {
		tasks[i].Name = string(rune('a' + i))
	}

	geo := buildAll(tasks, cfg)

	require.Len(t, geo.Bars, 4)
	assert.Equal(t, "black", geo.Bars[0].Color)
	assert.Equal(t, "dimgray", geo.Bars[1].Color)
	assert.Equal(t, "darkgray", geo.Bars[2].Color)
	assert.Equal(t, "steelblue", geo.Bars[3].Color)

	for _, bar := range geo.Bars {
		assert.Equal(t, 0.2, bar.HalfHeight)
	}
	assert.Equal(t, 0, geo.Bars[0].Position)
	assert.Equal(t, 3, geo.Bars[3].Position)
}

func TestBuildGeometry_MilestoneMarkers(t *testing.T) {
	tasks := []domain.TaskRecord{
		spanTask(1, 1, day(2024, 1, 1), day(2024, 1, 10)),
		spanTask(2, 1, day(2024, 1, 15), day(2024, 1, 15)),
	}
	tasks[1].Name = "Launch"
	tasks[1].DurationDays = 0
	tasks[1].Kind = domain.TaskMilestone

	geo := buildAll(tasks, DefaultConfig())

	require.Len(t, geo.Milestones, 1)
	m := geo.Milestones[0]
	assert.Equal(t, day(2024, 1, 15), m.Date, "marker sits at the finish date")
	assert.Equal(t, 1, m.Position)

	// A milestone never doubles as a bar.
	for _, bar := range geo.Bars {
		assert.NotEqual(t, m.TaskID, bar.TaskID)
	}
}

func TestBuildGeometry_NoMilestonesMeansNoMarkerSet(t *testing.T) {
	tasks := []domain.TaskRecord{
		spanTask(1, 1, day(2024, 1, 1), day(2024, 1, 10)),
	}

	geo := buildAll(tasks, DefaultConfig())

	assert.Empty(t, geo.Milestones)
}

func TestBuildGeometry_ConnectorEndpoints(t *testing.T) {
	tasks := []domain.TaskRecord{
		spanTask(1, 1, day(2024, 1, 1), day(2024, 1, 10)),
		spanTask(2, 1, day(2024, 1, 12), day(2024, 1, 20)),
	}
	tasks[0].Name = "First"
	tasks[1].Name = "Second"
	tasks[1].PredecessorIDs = []int{1}

	geo := buildAll(tasks, DefaultConfig())

	require.Len(t, geo.Connectors, 1)
	c := geo.Connectors[0]
	assert.Equal(t, day(2024, 1, 10), c.FromDate, "from the predecessor's finish")
	assert.Equal(t, day(2024, 1, 12), c.ToDate, "to the dependent's start")
	assert.Equal(t, 0, c.FromPosition)
	assert.Equal(t, 1, c.ToPosition)
}

func TestBuildGeometry_ConnectorsOnlyBetweenVisibleTasks(t *testing.T) {
	tasks := []domain.TaskRecord{
		spanTask(1, 1, day(2024, 1, 1), day(2024, 1, 10)),
		spanTask(2, 2, day(2024, 1, 1), day(2024, 1, 5)),
		spanTask(3, 3, day(2024, 1, 5), day(2024, 1, 8)),
		spanTask(4, 2, day(2024, 1, 8), day(2024, 1, 10)),
	}
	tasks[1].HideDescendants = true
	tasks[3].PredecessorIDs = []int{3} // row 3 is inside the collapsed span

	geo := buildAll(tasks, DefaultConfig())

	assert.Empty(t, geo.Connectors, "edges to hidden rows never render")
}

func TestBuildGeometry_StatsSpanCoversHiddenTasks(t *testing.T) {
	tasks := []domain.TaskRecord{
		spanTask(1, 1, day(2024, 1, 10), day(2024, 2, 1)),
		spanTask(2, 1, day(2024, 1, 15), day(2024, 1, 20)),
		spanTask(3, 1, day(2024, 1, 15), day(2024, 1, 25)),
		spanTask(4, 1, day(2024, 2, 1), day(2024, 2, 1)),
		spanTask(5, 5, day(2024, 1, 1), day(2024, 3, 1)), // hidden by level filter
	}
	tasks[3].DurationDays = 0
	tasks[3].Kind = domain.TaskMilestone

	geo := buildAll(tasks, DefaultConfig())

	assert.Equal(t, 3, geo.Stats.RegularCount, "visible regular tasks only")
	assert.Equal(t, 1, geo.Stats.MilestoneCount)
	// Span runs over all tasks, including the hidden level-5 row.
	assert.Equal(t, 60, geo.Stats.SpanDays)
}

func TestBuildGeometry_AxisLabelsMatchRowOrder(t *testing.T) {
	tasks := []domain.TaskRecord{
		spanTask(1, 1, day(2024, 1, 1), day(2024, 1, 10)),
		spanTask(2, 2, day(2024, 1, 1), day(2024, 1, 5)),
	}
	tasks[0].Name = "Top"
	tasks[1].Name = "Nested"

	geo := buildAll(tasks, DefaultConfig())

	assert.Equal(t, []string{"Top", "  Nested"}, geo.Axis.Labels)
}

func TestBuildGeometry_EmptyInput(t *testing.T) {
	geo := buildAll(nil, DefaultConfig())

	assert.Empty(t, geo.Bars)
	assert.Empty(t, geo.Milestones)
	assert.Empty(t, geo.Connectors)
	assert.True(t, geo.Axis.Start.IsZero())
	assert.Zero(t, geo.Stats.SpanDays)
}
