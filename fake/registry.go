// File: fake/registry.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-poll/api"
)

// registration is the per-handle state the registry tracks.
type registration struct {
	tok api.Token
	in  api.Interest
}

// Registry is an in-memory api.Registry for tests and examples. It enforces
// the unregistered -> registered -> unregistered state machine per handle
// and delivers readiness events injected via Ready through a pending queue.
//
// Concurrency rules: all operations are serialized on one mutex. Reregister
// swaps token and interests atomically under that lock, but events already
// queued under the old token are delivered as queued. Deregister of an
// unregistered handle always fails; it never silently succeeds.
type Registry struct {
	mu      sync.Mutex
	regs    map[uintptr]registration
	pending *queue.Queue
}

// NewRegistry creates an empty in-memory registry.
func NewRegistry() *Registry {
	return &Registry{
		regs:    make(map[uintptr]registration),
		pending: queue.New(),
	}
}

// Register adds a new subscription for handle.
func (r *Registry) Register(handle uintptr, tok api.Token, in api.Interest) error {
	if handle == 0 {
		return api.NewError(api.ErrCodeInvalidHandle, "register: zero handle")
	}
	if in == 0 {
		return api.NewError(api.ErrCodeInvalidInterest, "register: empty interest set").
			WithContext("handle", handle)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.regs[handle]; ok {
		return api.NewError(api.ErrCodeAlreadyRegistered, "register: handle already registered").
			WithContext("handle", handle)
	}
	r.regs[handle] = registration{tok: tok, in: in}
	return nil
}

// Reregister replaces token and interests of an existing subscription.
func (r *Registry) Reregister(handle uintptr, tok api.Token, in api.Interest) error {
	if in == 0 {
		return api.NewError(api.ErrCodeInvalidInterest, "reregister: empty interest set").
			WithContext("handle", handle)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.regs[handle]; !ok {
		return api.NewError(api.ErrCodeNotRegistered, "reregister: handle not registered").
			WithContext("handle", handle)
	}
	r.regs[handle] = registration{tok: tok, in: in}
	return nil
}

// Deregister removes the subscription for handle.
func (r *Registry) Deregister(handle uintptr) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.regs[handle]; !ok {
		return api.NewError(api.ErrCodeNotRegistered, "deregister: handle not registered").
			WithContext("handle", handle)
	}
	delete(r.regs, handle)
	return nil
}

// Registered reports whether handle currently has a subscription.
func (r *Registry) Registered(handle uintptr) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.regs[handle]
	return ok
}

// Ready simulates the handle becoming ready for the given conditions.
// An event tagged with the current token is queued, masked by the current
// interest set; readiness the subscription does not care about is dropped.
// Ready on an unregistered handle is a no-op, matching a selector that has
// already disarmed the handle.
func (r *Registry) Ready(handle uintptr, readiness api.Interest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.regs[handle]
	if !ok {
		return
	}
	delivered := readiness & reg.in
	if delivered == 0 {
		return
	}
	r.pending.Add(api.Event{Token: reg.tok, Readiness: delivered})
}

// Drain pops pending events into out and returns how many were written.
func (r *Registry) Drain(out []api.Event) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for n < len(out) && r.pending.Length() > 0 {
		out[n] = r.pending.Remove().(api.Event)
		n++
	}
	return n
}

// Pending returns the number of queued events.
func (r *Registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending.Length()
}
