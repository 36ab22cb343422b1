package workbench

import (
	"testing"
	"time"

	"github.com/desim-project/desim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJob_RunRecordsLifecycle(t *testing.T) {
	d := sim.New()
	log := NewSimlog()
	job := Job{
		Name: "ingest",
		Units: []Workunit{
			{Name: "fetch", Duration: 1.0},
			{Name: "parse", Duration: 2.0},
		},
	}
	d.Register(job.Run(log))

	report := d.Simulate(10.0, true)
	require.Eventually(t, func() bool { return len(log.Entries()) == 4 }, time.Second, time.Millisecond)

	assert.Equal(t, sim.Unset, report.Termination)
	entries := log.Entries()
	assert.Equal(t, EventJobStarted, entries[0].Kind)
	assert.Equal(t, EventWorkunitFinished, entries[1].Kind)
	assert.Equal(t, "fetch", entries[1].Detail)
	assert.Equal(t, sim.VirtualTime(1.0), entries[1].Time)
	assert.Equal(t, EventWorkunitFinished, entries[2].Kind)
	assert.Equal(t, "parse", entries[2].Detail)
	assert.Equal(t, sim.VirtualTime(3.0), entries[2].Time)
	assert.Equal(t, EventJobFinished, entries[3].Kind)
}

// TestJob_RunRecordsFailureWhenFinished drives a job past the horizon so
// its outstanding Delay is still suspended when finish=true injects
// FINISHED (spec §8 scenario 6's shape, exercised through workbench).
// Simulate's return only guarantees the scheduler has handed the error
// to the client's rendezvous, not that the client goroutine has finished
// reacting to it, so the assertion polls rather than reading the log
// immediately.
func TestJob_RunRecordsFailureWhenFinished(t *testing.T) {
	d := sim.New()
	log := NewSimlog()
	job := Job{Name: "ingest", Units: []Workunit{{Name: "slow", Duration: 10.0}}}
	d.Register(job.Run(log))

	report := d.Simulate(1.0, true)
	require.Eventually(t, func() bool { return len(log.Entries()) == 2 }, time.Second, time.Millisecond)

	assert.Equal(t, sim.Done, report.Termination)
	entries := log.Entries()
	assert.Equal(t, EventJobStarted, entries[0].Kind)
	assert.Equal(t, EventJobFailed, entries[1].Kind)
}
