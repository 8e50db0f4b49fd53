package domain

import "time"

// DependencyEdge links a predecessor's finish point to a dependent's start
// point. The resolver only emits edges whose endpoints are both visible.
type DependencyEdge struct {
	FromID int
	ToID   int
}

// DisplayRow is one labeled row of the chart. Position is the 0-based display
// order; rows render top to bottom in ascending position.
type DisplayRow struct {
	Label    string
	Position int
}

// Bar is the rectangle for one visible regular task. The y-span is centered
// on Position with the given half-height in row units.
type Bar struct {
	TaskID     int
	Name       string
	Start      time.Time
	Finish     time.Time
	Position   int
	HalfHeight float64
	Color      string
}

// MilestoneMarker is the diamond glyph for one visible milestone, placed at
// its finish date on its row.
type MilestoneMarker struct {
	TaskID   int
	Name     string
	Date     time.Time
	Position int
}

// Connector is one dependency line from a predecessor's finish to a
// dependent's start.
type Connector struct {
	FromID       int
	ToID         int
	FromDate     time.Time
	FromPosition int
	ToDate       time.Time
	ToPosition   int
}

// AxisRange is the chart's axis extent: a padded date span on x and the
// ordered row labels on y (index = position, rendered top to bottom).
type AxisRange struct {
	Start  time.Time
	End    time.Time
	Labels []string
}

// ChartStats are the aggregate figures shown next to the chart. SpanDays is
// computed over all tasks, hidden ones included.
type ChartStats struct {
	RegularCount   int
	MilestoneCount int
	SpanDays       int
}

// ChartGeometry is the complete renderable model handed to a rendering
// collaborator. It is derived in one pass and never mutated afterwards.
// An empty Milestones slice means no marker trace (and no legend entry)
// is emitted at all.
type ChartGeometry struct {
	Bars       []Bar
	Milestones []MilestoneMarker
	Connectors []Connector
	Rows       []DisplayRow
	Axis       AxisRange
	Stats      ChartStats
}
