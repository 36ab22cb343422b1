// cmd/root.go
package cmd

import (
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/desim-project/desim/sim"
	"github.com/desim-project/desim/workbench"
)

var (
	configPath  string
	jobsCSVPath string
	logLevel    string
	horizonFlag float64
	finishFlag  bool
	seedFlag    int64
	jitterFlag  float64
)

var rootCmd = &cobra.Command{
	Use:   "workbench",
	Short: "Discrete-event simulation kernel demo harness",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a batch of jobs through the simulation kernel",
	RunE: func(cmd *cobra.Command, args []string) error {
		setLogLevel()

		cfg, jobs, err := resolveJobs()
		if err != nil {
			return err
		}

		report, log := simulate(cfg, jobs)
		report.Log(logrus.StandardLogger())
		for _, entry := range log.Entries() {
			logrus.WithFields(logrus.Fields{
				"time": entry.Time,
				"job":  entry.Job,
				"kind": entry.Kind.String(),
			}).Info(entry.Detail)
		}
		return nil
	},
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a CSV-defined job batch through the simulation kernel",
	RunE: func(cmd *cobra.Command, args []string) error {
		setLogLevel()
		if jobsCSVPath == "" {
			logrus.Fatal("replay requires --jobs")
		}

		f, err := os.Open(jobsCSVPath)
		if err != nil {
			logrus.Fatalf("opening job batch %s: %v", jobsCSVPath, err)
		}
		defer f.Close()

		jobs, err := workbench.LoadJobsCSV(f)
		if err != nil {
			logrus.Fatalf("loading job batch: %v", err)
		}

		var cfg RunConfig
		if configPath != "" {
			cfg, err = loadRunConfig(configPath)
			if err != nil {
				logrus.Fatalf("loading run config: %v", err)
			}
		}
		if seedFlag != 0 {
			cfg.Seed = seedFlag
		}
		if jitterFlag != 0 {
			cfg.JitterSpread = jitterFlag
		}
		if horizonFlag != 0 {
			cfg.HorizonSeconds = horizonFlag
		}
		if finishFlag {
			cfg.Finish = true
		}

		report, log := simulate(cfg, jobs)
		report.Log(logrus.StandardLogger())
		for _, entry := range log.Entries() {
			logrus.WithFields(logrus.Fields{
				"time": entry.Time,
				"job":  entry.Job,
				"kind": entry.Kind.String(),
			}).Info(entry.Detail)
		}
		return nil
	},
}

// resolveJobs builds the job set for `run`: a YAML config when --config is
// given, else a small built-in demo batch.
func resolveJobs() (RunConfig, []workbench.Job, error) {
	if configPath == "" {
		return RunConfig{HorizonSeconds: 100, Finish: true}, demoJobs(), nil
	}
	cfg, err := loadRunConfig(configPath)
	if err != nil {
		return RunConfig{}, nil, err
	}
	return cfg, cfg.jobs(), nil
}

func demoJobs() []workbench.Job {
	return []workbench.Job{
		{Name: "ingest", Units: []workbench.Workunit{
			{Name: "fetch", Duration: 1},
			{Name: "parse", Duration: 2},
		}},
		{Name: "render", Units: []workbench.Workunit{
			{Name: "draw", Duration: 0.5},
			{Name: "flush", Duration: 0.25},
		}},
	}
}

// simulate registers jobs onto a fresh DES, applying duration jitter when
// cfg.JitterSpread is set, then runs it to horizon.
func simulate(cfg RunConfig, jobs []workbench.Job) (sim.Report, *workbench.Simlog) {
	var opts []sim.DESOption
	if iv := cfg.watchdogInterval(); iv > 0 {
		opts = append(opts, sim.WithWatchdogInterval(iv))
	}
	d := sim.New(opts...)
	log := workbench.NewSimlog()

	rng := workbench.NewPartitionedRNG(workbench.SeedKey(cfg.Seed))
	durations := rng.ForSubsystem(workbench.SubsystemDurations)
	for _, j := range jobs {
		if cfg.JitterSpread > 0 {
			j = jitterJob(j, durations, cfg.JitterSpread)
		}
		d.Register(j.Run(log))
	}

	horizon := sim.VirtualTime(cfg.HorizonSeconds)
	if horizon <= 0 {
		horizon = 100
	}
	return d.Simulate(horizon, cfg.Finish), log
}

func jitterJob(j workbench.Job, rng *rand.Rand, spread float64) workbench.Job {
	units := make([]workbench.Workunit, len(j.Units))
	for i, u := range j.Units {
		units[i] = workbench.Workunit{Name: u.Name, Duration: workbench.JitterDuration(rng, u.Duration, spread)}
	}
	return workbench.Job{Name: j.Name, Units: units}
}

func setLogLevel() {
	if logLevel == "" {
		return
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")

	runCmd.Flags().StringVar(&configPath, "config", "", "YAML run config (inline jobs, horizon, watchdog interval)")

	replayCmd.Flags().StringVar(&jobsCSVPath, "jobs", "", "CSV job batch file (job,workunit,duration_seconds)")
	replayCmd.Flags().StringVar(&configPath, "config", "", "YAML run config (horizon, watchdog interval, jitter)")
	replayCmd.Flags().Float64Var(&horizonFlag, "horizon", 0, "Simulation horizon in seconds (overrides config)")
	replayCmd.Flags().BoolVar(&finishFlag, "finish", false, "Inject FINISHED into suspended clients at horizon (overrides config)")
	replayCmd.Flags().Int64Var(&seedFlag, "seed", 0, "RNG seed for duration jitter (overrides config)")
	replayCmd.Flags().Float64Var(&jitterFlag, "jitter", 0, "Duration jitter spread, e.g. 0.1 for +/-10% (overrides config)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
}
