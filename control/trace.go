// File: control/trace.go
// Author: momentics <momentics@gmail.com>
//
// Registration trace counters for system-level monitoring.
// Counting is off by default and enabled per process; counters are atomics
// so tracing never serializes concurrent registration calls.

package control

import "sync/atomic"

var traceEnabled atomic.Bool

// RegistrationStats is a snapshot of registration churn since tracing began.
type RegistrationStats struct {
	Registers   uint64
	Reregisters uint64
	Deregisters uint64
	Failures    uint64
}

var stats struct {
	registers   atomic.Uint64
	reregisters atomic.Uint64
	deregisters atomic.Uint64
	failures    atomic.Uint64
}

// EnableTracing turns registration counting on or off.
func EnableTracing(on bool) {
	traceEnabled.Store(on)
}

// TracingEnabled reports the current tracing state.
func TracingEnabled() bool {
	return traceEnabled.Load()
}

// TraceRegister records the outcome of a register call.
func TraceRegister(err error) {
	if !traceEnabled.Load() {
		return
	}
	stats.registers.Add(1)
	if err != nil {
		stats.failures.Add(1)
	}
}

// TraceReregister records the outcome of a reregister call.
func TraceReregister(err error) {
	if !traceEnabled.Load() {
		return
	}
	stats.reregisters.Add(1)
	if err != nil {
		stats.failures.Add(1)
	}
}

// TraceDeregister records the outcome of a deregister call.
func TraceDeregister(err error) {
	if !traceEnabled.Load() {
		return
	}
	stats.deregisters.Add(1)
	if err != nil {
		stats.failures.Add(1)
	}
}

// Snapshot returns the current counter values.
func Snapshot() RegistrationStats {
	return RegistrationStats{
		Registers:   stats.registers.Load(),
		Reregisters: stats.reregisters.Load(),
		Deregisters: stats.deregisters.Load(),
		Failures:    stats.failures.Load(),
	}
}

// ResetStats zeroes all counters.
func ResetStats() {
	stats.registers.Store(0)
	stats.reregisters.Store(0)
	stats.deregisters.Store(0)
	stats.failures.Store(0)
}
