package gantt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/ganttflow/internal/domain"
	"github.com/alexanderramin/ganttflow/internal/ingest"
)

// Column names the ingestion collaborator must supply.
const (
	ColName         = "Name"
	ColStart        = "Start_Date"
	ColFinish       = "Finish_Date"
	ColDuration     = "Duration"
	ColOutlineLevel = "Outline_Level"
	ColPredecessors = "Predecessors"
	ColNotAppear    = "Not appear"
)

// RequiredColumns is the full column contract, in canonical order.
var RequiredColumns = []string{
	ColName, ColStart, ColFinish, ColDuration,
	ColOutlineLevel, ColPredecessors, ColNotAppear,
}

var digitRun = regexp.MustCompile(`\d+`)

// dateLayouts are tried in order when parsing Start_Date / Finish_Date.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Normalized is the normalizer's output: typed task records in input order
// plus non-fatal warnings.
type Normalized struct {
	Tasks    []domain.TaskRecord
	Warnings []string
}

// Normalize validates the dataset's column set once, then converts every row
// into a typed TaskRecord. Ids are 1-based sequential integers in input
// order, independent of any identifier present in the source. Any date or
// duration that fails to parse aborts the whole run; no partial record set
// is returned.
func Normalize(ds ingest.Dataset) (Normalized, error) {
	var missing []string
	for _, col := range RequiredColumns {
		if !ds.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return Normalized{}, &SchemaError{Missing: missing}
	}

	out := Normalized{Tasks: make([]domain.TaskRecord, 0, len(ds.Rows))}
	if len(ds.Rows) == 0 {
		out.Warnings = append(out.Warnings, "empty dataset: no data rows")
		return out, nil
	}

	for i, row := range ds.Rows {
		id := i + 1

		start, ok := parseDate(row[ColStart])
		if !ok {
			return Normalized{}, &ParseError{Field: ColStart, Value: row[ColStart], Row: id}
		}
		finish, ok := parseDate(row[ColFinish])
		if !ok {
			return Normalized{}, &ParseError{Field: ColFinish, Value: row[ColFinish], Row: id}
		}
		days, ok := extractDays(row[ColDuration])
		if !ok {
			return Normalized{}, &ParseError{Field: ColDuration, Value: row[ColDuration], Row: id}
		}
		level, err := strconv.Atoi(strings.TrimSpace(row[ColOutlineLevel]))
		if err != nil || level < 1 {
			return Normalized{}, &ParseError{Field: ColOutlineLevel, Value: row[ColOutlineLevel], Row: id}
		}

		kind := domain.TaskRegular
		if days == 0 {
			kind = domain.TaskMilestone
		}

		rec := domain.TaskRecord{
			ID:              id,
			Name:            row[ColName],
			Start:           start,
			Finish:          finish,
			DurationDays:    days,
			OutlineLevel:    level,
			HideDescendants: parseFlag(row[ColNotAppear]),
			PredecessorIDs:  ParsePredecessors(row[ColPredecessors]),
			Kind:            kind,
		}

		if raw := strings.TrimSpace(row[ColPredecessors]); raw != "" && len(rec.PredecessorIDs) == 0 {
			out.Warnings = append(out.Warnings, fmt.Sprintf("task %d: unparsable predecessor list %q ignored", id, raw))
		}
		if rec.Finish.Before(rec.Start) {
			out.Warnings = append(out.Warnings, fmt.Sprintf("task %d: finish %s precedes start %s", id, rec.Finish.Format("2006-01-02"), rec.Start.Format("2006-01-02")))
		}

		out.Tasks = append(out.Tasks, rec)
	}
	return out, nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// extractDays pulls the first digit run out of a duration string such as
// "5 days" or "0 days". A string with no digits at all is a parse failure.
func extractDays(s string) (int, bool) {
	m := digitRun.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseFlag reads the collapse marker column. Only an explicit true value
// marks a row; anything else (empty, "False", stray text) reads as false,
// matching the source format's loose boolean cells.
func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
