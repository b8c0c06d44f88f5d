//go:build windows
// +build windows

// File: source/source_socket_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows borrowed-handle adapter over a raw SOCKET handle.

package source

import (
	"golang.org/x/sys/windows"

	"github.com/momentics/hioload-poll/api"
	"github.com/momentics/hioload-poll/internal/binding"
)

// SourceSocket adapts a raw SOCKET handle to api.Source, bridging any
// socket-backed type to a registry regardless of how the socket was created.
//
// SourceSocket holds a pointer to the caller's handle because it does not
// own the socket: it never closes it, and the caller keeps it valid for the
// lifetime of the registration.
type SourceSocket struct {
	Sock *windows.Handle
}

// Register establishes a new subscription for the wrapped socket.
func (s *SourceSocket) Register(r api.Registry, tok api.Token, in api.Interest) error {
	return binding.New(uintptr(*s.Sock)).Register(r, tok, in)
}

// Reregister replaces token and interests of the current subscription.
func (s *SourceSocket) Reregister(r api.Registry, tok api.Token, in api.Interest) error {
	return binding.New(uintptr(*s.Sock)).Reregister(r, tok, in)
}

// Deregister removes the subscription. The socket stays open.
func (s *SourceSocket) Deregister(r api.Registry) error {
	return binding.New(uintptr(*s.Sock)).Deregister(r)
}
