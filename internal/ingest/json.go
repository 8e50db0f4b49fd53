package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// LoadJSON reads a JSON export: an array of flat objects, one per task row.
// Scalar values are coerced to their string form so the dataset shape matches
// the CSV loader. Column order is alphabetical (JSON objects carry no order);
// the normalizer only checks presence, so ordering is cosmetic.
func LoadJSON(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, err
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return Dataset{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	seen := make(map[string]bool)
	var columns []string
	rows := make([]Row, 0, len(records))

	for _, rec := range records {
		row := make(Row, len(rec))
		for k, v := range rec {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
			row[k] = stringify(v)
		}
		rows = append(rows, row)
	}
	sort.Strings(columns)

	return Dataset{Columns: columns, Rows: rows}, nil
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
