package workbench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/desim-project/desim/sim"
)

// LoadJobsCSV reads job/workunit definitions from r. Expected columns
// are job, workunit, duration_seconds; rows are grouped by job in
// first-seen order, and work units within a job keep file order. An
// optional header row is detected and skipped.
func LoadJobsCSV(r io.Reader) ([]Job, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading job csv: %w", err)
	}

	var order []string
	byName := make(map[string]*Job)
	for i, rec := range records {
		if i == 0 && looksLikeHeader(rec) {
			continue
		}
		jobName, unitName, durationField := rec[0], rec[1], rec[2]
		duration, err := strconv.ParseFloat(durationField, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing duration %q: %w", i, durationField, err)
		}
		j, ok := byName[jobName]
		if !ok {
			j = &Job{Name: jobName}
			byName[jobName] = j
			order = append(order, jobName)
		}
		j.Units = append(j.Units, Workunit{Name: unitName, Duration: sim.VirtualTime(duration)})
	}

	jobs := make([]Job, 0, len(order))
	for _, name := range order {
		jobs = append(jobs, *byName[name])
	}
	return jobs, nil
}

func looksLikeHeader(rec []string) bool {
	_, err := strconv.ParseFloat(rec[2], 64)
	return err != nil
}
