package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCmd_LogFlag_DefaultsToInfo(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("log")
	require.NotNil(t, flag, "log flag must be registered")
	assert.Equal(t, "info", flag.DefValue)
}

func TestReplayCmd_JobsFlag_DefaultsToEmpty(t *testing.T) {
	flag := replayCmd.Flags().Lookup("jobs")
	require.NotNil(t, flag, "jobs flag must be registered")
	assert.Equal(t, "", flag.DefValue)
}

func TestResolveJobs_NoConfigReturnsBuiltinDemo(t *testing.T) {
	configPath = ""
	cfg, jobs, err := resolveJobs()
	require.NoError(t, err)
	assert.Equal(t, 100.0, cfg.HorizonSeconds)
	assert.True(t, cfg.Finish)
	assert.Len(t, jobs, 2)
}

func TestDemoJobs_HasOrderedWorkunits(t *testing.T) {
	jobs := demoJobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, "ingest", jobs[0].Name)
	require.Len(t, jobs[0].Units, 2)
	assert.Equal(t, "fetch", jobs[0].Units[0].Name)
	assert.Equal(t, "parse", jobs[0].Units[1].Name)
}

func TestSimulate_RunsDemoJobsToCompletion(t *testing.T) {
	cfg := RunConfig{HorizonSeconds: 100, Finish: true}
	report, log := simulate(cfg, demoJobs())

	assert.Greater(t, report.EventsDelivered, 0)
	assert.NotEmpty(t, log.Entries())
}

func TestJitterJob_PreservesUnitCountAndNames(t *testing.T) {
	job := demoJobs()[0]
	rng := mustRNG(t)

	jittered := jitterJob(job, rng, 0.1)

	require.Len(t, jittered.Units, len(job.Units))
	for i, u := range job.Units {
		assert.Equal(t, u.Name, jittered.Units[i].Name)
	}
}
