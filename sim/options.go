package sim

import (
	"time"

	"github.com/sirupsen/logrus"
)

// desOptions holds configuration options for DES creation.
type desOptions struct {
	startTime         VirtualTime
	logger            logrus.FieldLogger
	watchdogInterval  time.Duration
	requestBufferHint int
}

// --- DES Options ---

// DESOption configures a DES instance.
type DESOption interface {
	applyDES(*desOptions)
}

// desOptionImpl implements DESOption.
type desOptionImpl struct {
	applyDESFunc func(*desOptions)
}

func (o *desOptionImpl) applyDES(opts *desOptions) {
	o.applyDESFunc(opts)
}

// WithStartTime sets the clock's initial value (spec §6 default 0.0).
func WithStartTime(t VirtualTime) DESOption {
	return &desOptionImpl{func(opts *desOptions) {
		opts.startTime = t
	}}
}

// WithLogger overrides the structured logger used for scheduler,
// watchdog, and interrupt diagnostics. Defaults to logrus.StandardLogger.
func WithLogger(l logrus.FieldLogger) DESOption {
	return &desOptionImpl{func(opts *desOptions) {
		if l != nil {
			opts.logger = l
		}
	}}
}

// WithWatchdogInterval sets the wall-clock sampling cadence the Watchdog
// uses to detect stalled virtual time (spec §4.5 names ~100ms; §9 flags
// the cadence as an open question this resolves by making it
// configurable rather than hardcoded).
func WithWatchdogInterval(d time.Duration) DESOption {
	return &desOptionImpl{func(opts *desOptions) {
		if d > 0 {
			opts.watchdogInterval = d
		}
	}}
}

// WithRequestBufferHint sizes the RequestBus's initial backing slice.
// Purely an allocation hint; the bus remains unbounded regardless.
func WithRequestBufferHint(n int) DESOption {
	return &desOptionImpl{func(opts *desOptions) {
		if n > 0 {
			opts.requestBufferHint = n
		}
	}}
}

// resolveDESOptions applies DESOption instances to desOptions.
func resolveDESOptions(opts []DESOption) *desOptions {
	cfg := &desOptions{
		startTime:         0,
		logger:            logrus.StandardLogger(),
		watchdogInterval:  100 * time.Millisecond,
		requestBufferHint: 16,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyDES(cfg)
	}
	return cfg
}
