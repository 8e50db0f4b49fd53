package gantt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ganttflow/internal/ingest"
)

// projectDataset is a small but representative input: a hierarchy, one
// collapsed subtree, one milestone, and dependencies that cross into the
// hidden rows.
func projectDataset() ingest.Dataset {
	return newDataset(
		taskRow(map[string]string{ColName: "Project", ColStart: "2024-01-01", ColFinish: "2024-03-01", ColDuration: "60 days", ColOutlineLevel: "1"}),
		taskRow(map[string]string{ColName: "Design", ColStart: "2024-01-01", ColFinish: "2024-01-20", ColDuration: "19 days", ColOutlineLevel: "2", ColNotAppear: "True"}),
		taskRow(map[string]string{ColName: "Wireframes", ColStart: "2024-01-01", ColFinish: "2024-01-10", ColDuration: "9 days", ColOutlineLevel: "3"}),
		taskRow(map[string]string{ColName: "Build", ColStart: "2024-01-21", ColFinish: "2024-02-20", ColDuration: "30 days", ColOutlineLevel: "2", ColPredecessors: "2"}),
		taskRow(map[string]string{ColName: "QA", ColStart: "2024-02-21", ColFinish: "2024-02-28", ColDuration: "7 days", ColOutlineLevel: "2", ColPredecessors: "3, 4"}),
		taskRow(map[string]string{ColName: "Launch", ColStart: "2024-03-01", ColFinish: "2024-03-01", ColDuration: "0 days", ColOutlineLevel: "2"}),
	)
}

func TestBuild_EndToEnd(t *testing.T) {
	geo, report, err := Build(projectDataset(), DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, geo)

	// Row 3 (Wireframes) is collapsed away; everything else shows.
	assert.Equal(t, 4, geo.Stats.RegularCount)
	assert.Equal(t, 1, geo.Stats.MilestoneCount)
	assert.Len(t, geo.Rows, 5)

	// QA's reference to the hidden row 3 drops; Build→QA and Design→Build stay.
	assert.Len(t, geo.Connectors, 2)
	require.Len(t, report.Dropped, 1)
	assert.Equal(t, DroppedRef{TaskID: 5, Ref: 3, Reason: DropHidden}, report.Dropped[0])
}

func TestBuild_Deterministic(t *testing.T) {
	cfg := DefaultConfig()

	first, _, err := Build(projectDataset(), cfg)
	require.NoError(t, err)
	second, _, err := Build(projectDataset(), cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same input and config, same geometry")
}

func TestBuild_FatalErrorYieldsNoPartialChart(t *testing.T) {
	ds := newDataset(
		taskRow(nil),
		taskRow(map[string]string{ColStart: "not a date"}),
	)

	geo, report, err := Build(ds, DefaultConfig())
	require.Error(t, err)
	assert.Nil(t, geo, "no partial geometry on fatal errors")
	assert.Nil(t, report)
}

func TestBuild_EmptyDataset(t *testing.T) {
	geo, report, err := Build(newDataset(), DefaultConfig())
	require.NoError(t, err)

	assert.Empty(t, geo.Rows)
	assert.True(t, geo.Axis.Start.IsZero())
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "empty dataset")
}

func TestBuild_MilestoneOnlyInMarkerSet(t *testing.T) {
	ds := newDataset(
		taskRow(map[string]string{ColName: "Kickoff", ColDuration: "0 days"}),
	)

	geo, _, err := Build(ds, DefaultConfig())
	require.NoError(t, err)

	assert.Empty(t, geo.Bars, "a zero-duration row never becomes a bar")
	assert.Len(t, geo.Milestones, 1)
}
