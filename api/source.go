// File: api/source.go
// Author: momentics <momentics@gmail.com>
//
// The registration capability contract and the registry collaborator
// boundary it is exercised against.

package api

// Registry is the central readiness registry a Source registers with.
// Implementations own all per-handle event state (selector, completion port,
// or an in-memory table); this library only talks to them through this
// interface and never inspects their internals.
//
// Idempotence and concurrency guarantees of Reregister/Deregister are
// registry-defined. Implementations must document them; see fake.Registry
// for the rules the bundled in-memory registry follows.
type Registry interface {
	// Register establishes a new subscription for handle under tok/in.
	// Registering an already-registered handle is an error, not a merge.
	Register(handle uintptr, tok Token, in Interest) error

	// Reregister replaces token and interests of an existing subscription.
	// The handle must currently be registered.
	Reregister(handle uintptr, tok Token, in Interest) error

	// Deregister removes the subscription entirely. The handle itself is
	// left untouched; closing it remains the caller's responsibility.
	Deregister(handle uintptr) error
}

// Source is anything that can be registered with a Registry.
//
// Implementations wrapping a borrowed OS handle must not take ownership of
// it: no closing, no duplicating, no retaining beyond the call. The caller
// keeps the handle valid for as long as it stays registered.
type Source interface {
	// Register subscribes the source on r under tok and in.
	Register(r Registry, tok Token, in Interest) error

	// Reregister atomically swaps token and/or interests of an existing
	// subscription. Notifications already queued under the old token are
	// delivered as queued.
	Reregister(r Registry, tok Token, in Interest) error

	// Deregister removes the subscription from r.
	Deregister(r Registry) error
}
