package ingest

// Row is one raw record keyed by column name. Rows stay loosely keyed only
// up to the normalization boundary; every later stage works on typed task
// records.
type Row map[string]string

// Dataset is the raw output of a loader: the column set as read from the
// source plus the data rows in original order.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the source carried the named column, even if
// every cell in it is empty.
func (d Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}
