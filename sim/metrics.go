package sim

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Report summarizes a completed Simulate run: spec §6's termination,
// duration, and event count, enriched per SPEC_FULL §11.2 with a
// total count of interrupted clients, a per-reason interrupt breakdown, and the
// final virtual clock reading. Grounded in the teacher's Metrics/
// Metrics.Print.
type Report struct {
	Termination        TerminationReason
	Duration           time.Duration
	EventsDelivered    int
	ClientsInterrupted int
	InterruptsByReason map[TerminationReason]int
	FinalTime          VirtualTime
}

// Log writes the report through a structured logger, replacing the
// teacher's fmt.Println-based Metrics.Print with logrus fields, per the
// ambient logging convention (SPEC_FULL §10.1).
func (r Report) Log(logger logrus.FieldLogger) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	breakdown := make(map[string]int, len(r.InterruptsByReason))
	for reason, n := range r.InterruptsByReason {
		breakdown[reason.String()] = n
	}
	logger.WithFields(logrus.Fields{
		"termination":          r.Termination.String(),
		"duration":             r.Duration,
		"events_delivered":     r.EventsDelivered,
		"clients_interrupted":  r.ClientsInterrupted,
		"interrupts_by_reason": breakdown,
		"final_time":           float64(r.FinalTime),
	}).Info("simulation complete")
}
