package workbench

import (
	"strings"
	"testing"

	"github.com/desim-project/desim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJobsCSV_GroupsByJobInFirstSeenOrder(t *testing.T) {
	input := "ingest,fetch,1.5\n" +
		"render,draw,0.5\n" +
		"ingest,parse,2\n" +
		"render,flush,0.25\n"

	jobs, err := LoadJobsCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "ingest", jobs[0].Name)
	require.Len(t, jobs[0].Units, 2)
	assert.Equal(t, Workunit{Name: "fetch", Duration: sim.VirtualTime(1.5)}, jobs[0].Units[0])
	assert.Equal(t, Workunit{Name: "parse", Duration: sim.VirtualTime(2)}, jobs[0].Units[1])

	assert.Equal(t, "render", jobs[1].Name)
	require.Len(t, jobs[1].Units, 2)
	assert.Equal(t, Workunit{Name: "draw", Duration: sim.VirtualTime(0.5)}, jobs[1].Units[0])
	assert.Equal(t, Workunit{Name: "flush", Duration: sim.VirtualTime(0.25)}, jobs[1].Units[1])
}

func TestLoadJobsCSV_SkipsHeaderRow(t *testing.T) {
	input := "job,workunit,duration_seconds\n" +
		"ingest,fetch,1\n"

	jobs, err := LoadJobsCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "ingest", jobs[0].Name)
	require.Len(t, jobs[0].Units, 1)
	assert.Equal(t, "fetch", jobs[0].Units[0].Name)
}

func TestLoadJobsCSV_NoHeaderWhenFirstRowIsData(t *testing.T) {
	input := "ingest,fetch,1\n"

	jobs, err := LoadJobsCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	require.Len(t, jobs[0].Units, 1)
}

func TestLoadJobsCSV_MalformedDurationReturnsError(t *testing.T) {
	input := "ingest,fetch,not-a-number\n"

	_, err := LoadJobsCSV(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing duration")
}

func TestLoadJobsCSV_WrongColumnCountReturnsError(t *testing.T) {
	input := "ingest,fetch\n"

	_, err := LoadJobsCSV(strings.NewReader(input))
	require.Error(t, err)
}
