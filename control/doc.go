// Package control
// Author: momentics <momentics@gmail.com>
//
// Optional runtime introspection for hioload-poll: registration trace
// counters fed by the internal binding, and a debug probe registry for
// dumping library state. Tracing is disabled by default and has no effect
// on registration outcomes.
package control
