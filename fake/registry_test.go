// File: fake/registry_test.go
// Author: momentics <momentics@gmail.com>

package fake_test

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-poll/api"
	"github.com/momentics/hioload-poll/fake"
)

var _ api.Registry = (*fake.Registry)(nil)

func TestRegisterValidation(t *testing.T) {
	reg := fake.NewRegistry()

	if err := reg.Register(0, api.Token(1), api.Readable); !errors.Is(err, api.ErrInvalidHandle) {
		t.Errorf("zero handle: want ErrInvalidHandle, got %v", err)
	}
	if err := reg.Register(1, api.Token(1), 0); !errors.Is(err, api.ErrInvalidInterest) {
		t.Errorf("empty interests: want ErrInvalidInterest, got %v", err)
	}
}

func TestReadyMasksByInterest(t *testing.T) {
	reg := fake.NewRegistry()
	if err := reg.Register(1, api.Token(1), api.Readable); err != nil {
		t.Fatalf("register: %v", err)
	}

	reg.Ready(1, api.Writable) // not subscribed, dropped
	if reg.Pending() != 0 {
		t.Fatalf("pending = %d after unsubscribed readiness", reg.Pending())
	}

	reg.Ready(1, api.Readable.Add(api.Writable))
	var evs [1]api.Event
	if n := reg.Drain(evs[:]); n != 1 {
		t.Fatalf("drained %d, want 1", n)
	}
	if evs[0].Readiness != api.Readable {
		t.Errorf("readiness = %v, want readable only", evs[0].Readiness)
	}
}

func TestReadyOnUnregisteredIsNoop(t *testing.T) {
	reg := fake.NewRegistry()
	reg.Ready(1, api.Readable)
	if reg.Pending() != 0 {
		t.Errorf("pending = %d, want 0", reg.Pending())
	}
}

func TestDrainIsFIFO(t *testing.T) {
	reg := fake.NewRegistry()
	if err := reg.Register(1, api.Token(1), api.Readable); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(2, api.Token(2), api.Writable); err != nil {
		t.Fatalf("register: %v", err)
	}

	reg.Ready(1, api.Readable)
	reg.Ready(2, api.Writable)

	var evs [4]api.Event
	n := reg.Drain(evs[:])
	if n != 2 {
		t.Fatalf("drained %d, want 2", n)
	}
	if evs[0].Token != 1 || evs[1].Token != 2 {
		t.Errorf("order = %d,%d, want 1,2", evs[0].Token, evs[1].Token)
	}
}

func TestEventsQueuedUnderOldTokenSurvive(t *testing.T) {
	reg := fake.NewRegistry()
	if err := reg.Register(1, api.Token(1), api.Readable); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Queued before the swap, delivered as queued.
	reg.Ready(1, api.Readable)
	if err := reg.Reregister(1, api.Token(2), api.Readable); err != nil {
		t.Fatalf("reregister: %v", err)
	}
	reg.Ready(1, api.Readable)

	var evs [2]api.Event
	if n := reg.Drain(evs[:]); n != 2 {
		t.Fatalf("drained %d, want 2", n)
	}
	if evs[0].Token != 1 || evs[1].Token != 2 {
		t.Errorf("tokens = %d,%d, want 1,2", evs[0].Token, evs[1].Token)
	}
}

func TestDeregisterStopsDelivery(t *testing.T) {
	reg := fake.NewRegistry()
	if err := reg.Register(1, api.Token(1), api.Readable); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Deregister(1); err != nil {
		t.Fatalf("deregister: %v", err)
	}
	reg.Ready(1, api.Readable)
	if reg.Pending() != 0 {
		t.Errorf("pending = %d after deregister, want 0", reg.Pending())
	}
}
