// File: source/source.go
// Author: momentics <momentics@gmail.com>
//
// Portable borrowed-handle adapter over an opaque uintptr handle value.

package source

import (
	"github.com/momentics/hioload-poll/api"
	"github.com/momentics/hioload-poll/internal/binding"
)

// SourceHandle adapts any raw OS handle, carried as uintptr, to api.Source.
//
// SourceHandle does not take ownership of the handle: it will not manage any
// lifecycle operation such as closing it, and the caller must keep the
// handle valid for as long as it is registered. Construct a SourceHandle
// right before the registry call:
//
//	h := uintptr(fd)
//	err := (&source.SourceHandle{H: &h}).Register(reg, tok, api.Readable)
type SourceHandle struct {
	H *uintptr
}

// Register establishes a new subscription for the wrapped handle.
func (s *SourceHandle) Register(r api.Registry, tok api.Token, in api.Interest) error {
	return binding.New(*s.H).Register(r, tok, in)
}

// Reregister replaces token and interests of the current subscription.
func (s *SourceHandle) Reregister(r api.Registry, tok api.Token, in api.Interest) error {
	return binding.New(*s.H).Reregister(r, tok, in)
}

// Deregister removes the subscription. The handle stays open.
func (s *SourceHandle) Deregister(r api.Registry) error {
	return binding.New(*s.H).Deregister(r)
}
