// Package workbench is a thin demonstration application built entirely
// on the sim Library surface (register/delay/delayUntil/interrupt/now).
// It shows what an "external collaborator" looks like: CSV-driven job
// definitions, a Workunit/Job/Simlog model, deterministic duration
// jitter. It never imports sim's unexported internals and is never
// imported back by sim, preserving the core/collaborator boundary.
package workbench
