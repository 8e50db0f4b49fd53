package gantt

import (
	"github.com/alexanderramin/ganttflow/internal/domain"
	"github.com/alexanderramin/ganttflow/internal/ingest"
)

// Report carries the non-fatal diagnostics produced during a build: parse
// warnings from normalization and predecessor references that resolved to
// nothing. Diagnostics never change the rendered chart.
type Report struct {
	Warnings []string
	Dropped  []DroppedRef
}

// Build runs the full pipeline over a raw dataset: normalize, collapse
// filter, dependency resolution, row layout, geometry. Each stage consumes
// the previous stage's output and returns a new structure. On a fatal error
// the geometry is nil; no partial chart is ever produced. The build is
// deterministic: the same dataset and config always yield the same geometry.
func Build(ds ingest.Dataset, cfg Config) (*domain.ChartGeometry, *Report, error) {
	norm, err := Normalize(ds)
	if err != nil {
		return nil, nil, err
	}

	vis := ApplyCollapse(norm.Tasks, cfg)
	res := ResolveDependencies(norm.Tasks, vis)
	layout := AssignRows(norm.Tasks, vis, cfg)
	geo := BuildGeometry(norm.Tasks, vis, res, layout, cfg)

	return geo, &Report{Warnings: norm.Warnings, Dropped: res.Dropped}, nil
}
