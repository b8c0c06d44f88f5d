// Package fake
// Author: momentics <momentics@gmail.com>
//
// Test doubles for hioload-poll. Registry is an in-memory readiness registry
// that stands in for an OS selector or completion-port binding in tests and
// examples.
package fake
