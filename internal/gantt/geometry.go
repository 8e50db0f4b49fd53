package gantt

import (
	"time"

	"github.com/alexanderramin/ganttflow/internal/domain"
)

// BuildGeometry derives the complete renderable model: bar rectangles for
// visible regular tasks, diamond markers for visible milestones, connector
// paths for resolved dependency edges, the padded axis range, and the
// aggregate stats. The result is a new value; nothing from earlier stages is
// retained or mutated.
func BuildGeometry(tasks []domain.TaskRecord, vis Visibility, res Resolution, layout Layout, cfg Config) *domain.ChartGeometry {
	geo := &domain.ChartGeometry{Rows: layout.Rows}

	var (
		haveVisible      bool
		minStart, maxEnd time.Time

		haveAny                bool
		minAllStart, maxAllEnd time.Time
	)

	for _, t := range tasks {
		if !haveAny || t.Start.Before(minAllStart) {
			minAllStart = t.Start
		}
		if !haveAny || t.Finish.After(maxAllEnd) {
			maxAllEnd = t.Finish
		}
		haveAny = true

		if !vis[t.ID] {
			continue
		}
		pos, ok := layout.Position(t.ID)
		if !ok {
			// Every visible task got a row in AssignRows; skip defensively.
			continue
		}

		if !haveVisible || t.Start.Before(minStart) {
			minStart = t.Start
		}
		if !haveVisible || t.Finish.After(maxEnd) {
			maxEnd = t.Finish
		}
		haveVisible = true

		switch t.Kind {
		case domain.TaskMilestone:
			geo.Milestones = append(geo.Milestones, domain.MilestoneMarker{
				TaskID:   t.ID,
				Name:     t.Name,
				Date:     t.Finish,
				Position: pos,
			})
			geo.Stats.MilestoneCount++
		default:
			geo.Bars = append(geo.Bars, domain.Bar{
				TaskID:     t.ID,
				Name:       t.Name,
				Start:      t.Start,
				Finish:     t.Finish,
				Position:   pos,
				HalfHeight: cfg.BarHalfHeight,
				Color:      cfg.ColorForLevel(t.OutlineLevel),
			})
			geo.Stats.RegularCount++
		}
	}

	byID := make(map[int]domain.TaskRecord, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	for _, e := range res.Edges {
		fromPos, okFrom := layout.Position(e.FromID)
		toPos, okTo := layout.Position(e.ToID)
		if !okFrom || !okTo {
			continue
		}
		geo.Connectors = append(geo.Connectors, domain.Connector{
			FromID:       e.FromID,
			ToID:         e.ToID,
			FromDate:     byID[e.FromID].Finish,
			FromPosition: fromPos,
			ToDate:       byID[e.ToID].Start,
			ToPosition:   toPos,
		})
	}

	if haveVisible {
		geo.Axis.Start = minStart.AddDate(0, 0, -cfg.PadBeforeDays)
		geo.Axis.End = maxEnd.AddDate(0, 0, cfg.PadAfterDays)
	}
	geo.Axis.Labels = make([]string, len(layout.Rows))
	for i, r := range layout.Rows {
		geo.Axis.Labels[i] = r.Label
	}

	if haveAny {
		geo.Stats.SpanDays = int(maxAllEnd.Sub(minAllStart).Hours() / 24)
	}

	return geo
}
