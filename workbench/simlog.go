package workbench

import (
	"sync"

	"github.com/desim-project/desim/sim"
)

// EventKind classifies one Simlog entry.
type EventKind int

const (
	EventJobStarted EventKind = iota
	EventWorkunitFinished
	EventJobFailed
	EventJobFinished
)

func (k EventKind) String() string {
	switch k {
	case EventJobStarted:
		return "job_started"
	case EventWorkunitFinished:
		return "workunit_finished"
	case EventJobFailed:
		return "job_failed"
	case EventJobFinished:
		return "job_finished"
	default:
		return "unknown"
	}
}

// LogEntry is one append-only record in a Simlog.
type LogEntry struct {
	Time   sim.VirtualTime
	Job    string
	Kind   EventKind
	Detail string
}

// Simlog is an append-only, timestamp-ordered-by-append log of job
// lifecycle events. Every Job.Run closure runs as its own sim.Client
// goroutine and may append concurrently, so mutation is mutex-guarded;
// application code reads it after DES.Simulate returns.
type Simlog struct {
	mu      sync.Mutex
	entries []LogEntry
}

func NewSimlog() *Simlog {
	return &Simlog{}
}

func (l *Simlog) record(t sim.VirtualTime, job string, kind EventKind, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Time: t, Job: job, Kind: kind, Detail: detail})
}

// Entries returns a copy of the log in append order. Concurrent jobs
// append in whatever order their virtual-time delays resolve, not
// necessarily sorted by Time; callers needing strict time order should
// sort the result.
func (l *Simlog) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
