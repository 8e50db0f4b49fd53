package cli

import (
	"path/filepath"
	"strings"

	"github.com/alexanderramin/ganttflow/internal/domain"
	"github.com/alexanderramin/ganttflow/internal/gantt"
	"github.com/alexanderramin/ganttflow/internal/ingest"
)

// loadDataset picks the loader by file extension: .json for JSON exports,
// anything else is read as CSV.
func loadDataset(path string) (ingest.Dataset, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ingest.LoadJSON(path)
	}
	return ingest.LoadCSV(path)
}

// buildChart runs the pipeline for an input file and logs the build report:
// warnings at warn level, dropped predecessor references at debug level.
func buildChart(app *App, path string) (*domain.ChartGeometry, error) {
	ds, err := loadDataset(path)
	if err != nil {
		return nil, err
	}

	geo, report, err := gantt.Build(ds, app.Config)
	if err != nil {
		return nil, err
	}

	if app.Logger != nil {
		for _, w := range report.Warnings {
			app.Logger.Warn(w)
		}
		for _, d := range report.Dropped {
			app.Logger.Debug("dropped predecessor reference",
				"task", d.TaskID, "ref", d.Ref, "reason", string(d.Reason))
		}
	}
	return geo, nil
}
