package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/desim-project/desim/sim"
	"github.com/desim-project/desim/workbench"
)

// RunConfig is the YAML shape accepted by `workbench run` and
// `workbench replay`. All top-level fields must be listed here to
// satisfy KnownFields(true) strict parsing, grounded in the teacher's
// cmd/default_config.go Config struct.
type RunConfig struct {
	HorizonSeconds     float64     `yaml:"horizon_seconds"`
	Finish             bool        `yaml:"finish"`
	WatchdogIntervalMS int         `yaml:"watchdog_interval_ms"`
	Seed               int64       `yaml:"seed"`
	JitterSpread       float64     `yaml:"jitter_spread"`
	Jobs               []JobConfig `yaml:"jobs"`
}

// JobConfig is the inline job/workunit definition used by `workbench run`.
// `workbench replay` takes its jobs from the CSV batch file and ignores it.
type JobConfig struct {
	Name  string           `yaml:"name"`
	Units []WorkunitConfig `yaml:"units"`
}

type WorkunitConfig struct {
	Name            string  `yaml:"name"`
	DurationSeconds float64 `yaml:"duration_seconds"`
}

func loadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("reading run config %s: %w", path, err)
	}
	var cfg RunConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parsing run config %s: %w", path, err)
	}
	return cfg, nil
}

func (c RunConfig) jobs() []workbench.Job {
	jobs := make([]workbench.Job, 0, len(c.Jobs))
	for _, jc := range c.Jobs {
		units := make([]workbench.Workunit, 0, len(jc.Units))
		for _, uc := range jc.Units {
			units = append(units, workbench.Workunit{Name: uc.Name, Duration: sim.VirtualTime(uc.DurationSeconds)})
		}
		jobs = append(jobs, workbench.Job{Name: jc.Name, Units: units})
	}
	return jobs
}

func (c RunConfig) watchdogInterval() time.Duration {
	if c.WatchdogIntervalMS <= 0 {
		return 0
	}
	return time.Duration(c.WatchdogIntervalMS) * time.Millisecond
}
