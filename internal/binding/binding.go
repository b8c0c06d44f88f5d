// File: internal/binding/binding.go
// Package binding holds the per-call registry binding behind the source adapters.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A Binding is scoped to a single borrowed handle reference and a single
// registration call. It performs no buffering, retry, or caching: the outcome
// of each method is exactly the outcome of the registry call.

package binding

import (
	"github.com/momentics/hioload-poll/api"
	"github.com/momentics/hioload-poll/control"
)

// Binding is a short-lived view of a borrowed handle. Construct it right
// before a registry call and discard it after; it carries no state besides
// the handle value read from the caller's reference.
type Binding struct {
	handle uintptr
}

// New wraps a raw handle value for one registration call. It performs no I/O
// and cannot fail.
func New(handle uintptr) Binding {
	return Binding{handle: handle}
}

// Register delegates a new subscription to the registry.
func (b Binding) Register(r api.Registry, tok api.Token, in api.Interest) error {
	err := r.Register(b.handle, tok, in)
	control.TraceRegister(err)
	return err
}

// Reregister delegates a token/interest replacement to the registry.
func (b Binding) Reregister(r api.Registry, tok api.Token, in api.Interest) error {
	err := r.Reregister(b.handle, tok, in)
	control.TraceReregister(err)
	return err
}

// Deregister delegates subscription removal to the registry.
func (b Binding) Deregister(r api.Registry) error {
	err := r.Deregister(b.handle)
	control.TraceDeregister(err)
	return err
}
