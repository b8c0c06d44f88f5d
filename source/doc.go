// Package source
// Author: momentics <momentics@gmail.com>
//
// Adapters that let a borrowed, caller-owned raw handle participate in a
// readiness registry. Each adapter holds a single non-owning pointer to the
// caller's handle variable and implements api.Source by delegating every
// call through a fresh per-call binding. The adapters never close,
// duplicate, or mutate the handle, and they are meant to be constructed
// immediately before a registry call and discarded after — only the raw
// handle underneath may be long-lived, and only the caller manages that
// lifetime.
package source
