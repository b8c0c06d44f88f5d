// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared value types carried through every registration call.

package api

// Token is an opaque caller-chosen identifier correlating readiness
// notifications back to a registration. The library never interprets it;
// uniqueness and reuse rules belong to the registry and its callers.
type Token uintptr

// Interest is a bitset of readiness conditions a registration cares about.
type Interest uint8

const (
	// Readable requests read-readiness notifications.
	Readable Interest = 1 << iota
	// Writable requests write-readiness notifications.
	Writable
)

// Add returns the union of both interest sets.
func (i Interest) Add(other Interest) Interest {
	return i | other
}

// Remove returns i without the conditions in other.
func (i Interest) Remove(other Interest) Interest {
	return i &^ other
}

// IsReadable reports whether the set includes read-readiness.
func (i Interest) IsReadable() bool {
	return i&Readable != 0
}

// IsWritable reports whether the set includes write-readiness.
func (i Interest) IsWritable() bool {
	return i&Writable != 0
}

func (i Interest) String() string {
	switch {
	case i.IsReadable() && i.IsWritable():
		return "readable|writable"
	case i.IsReadable():
		return "readable"
	case i.IsWritable():
		return "writable"
	default:
		return "empty"
	}
}

// Event is a single readiness notification delivered by a registry.
type Event struct {
	Token     Token    // token supplied at (re)registration time
	Readiness Interest // conditions the handle currently satisfies
}
