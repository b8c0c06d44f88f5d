//go:build unix
// +build unix

// File: source/source_fd_unix.go
// Author: momentics <momentics@gmail.com>
//
// Unix borrowed-handle adapter over a raw file descriptor.

package source

import (
	"github.com/momentics/hioload-poll/api"
	"github.com/momentics/hioload-poll/internal/binding"
)

// SourceFd adapts a raw file descriptor to api.Source. Any fd the registry's
// underlying selector accepts can be registered this way; SourceFd is the
// bridge for types the library has no dedicated adapter for.
//
// SourceFd holds a pointer to the caller's fd because it does not own the
// descriptor: it never closes it, and the caller keeps it valid for the
// lifetime of the registration.
type SourceFd struct {
	FD *int
}

// Register establishes a new subscription for the wrapped descriptor.
func (s *SourceFd) Register(r api.Registry, tok api.Token, in api.Interest) error {
	return binding.New(uintptr(*s.FD)).Register(r, tok, in)
}

// Reregister replaces token and interests of the current subscription.
func (s *SourceFd) Reregister(r api.Registry, tok api.Token, in api.Interest) error {
	return binding.New(uintptr(*s.FD)).Reregister(r, tok, in)
}

// Deregister removes the subscription. The descriptor stays open.
func (s *SourceFd) Deregister(r api.Registry) error {
	return binding.New(uintptr(*s.FD)).Deregister(r)
}
