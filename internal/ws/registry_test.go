package ws

import (
	"errors"
	"testing"
)

type fakeWire struct {
	sent   []interface{}
	closed bool
	fail   bool
}

func (f *fakeWire) WriteJSON(v interface{}) error {
	if f.fail {
		return errors.New("write failed")
	}
	f.sent = append(f.sent, v)
	return nil
}

func (f *fakeWire) Close() error {
	f.closed = true
	return nil
}

func TestConnSendAfterClose(t *testing.T) {
	wire := &fakeWire{}
	conn := NewConn(wire, "u1")

	if !conn.Send("hello") {
		t.Error("Send failed on an open connection")
	}
	conn.close()
	if conn.Send("dropped") {
		t.Error("Send succeeded on a closed connection")
	}
	if len(wire.sent) != 1 {
		t.Errorf("wire received %d payloads, want 1", len(wire.sent))
	}
}

func TestConnSendWriteFailureCloses(t *testing.T) {
	wire := &fakeWire{fail: true}
	conn := NewConn(wire, "u1")

	if conn.Send("first") {
		t.Error("Send reported success despite a write failure")
	}
	wire.fail = false
	if conn.Send("second") {
		t.Error("connection stayed open after a write failure")
	}
}

func TestRegistryReplacesConnection(t *testing.T) {
	r := NewRegistry()
	oldWire := &fakeWire{}
	oldConn := NewConn(oldWire, "u1")
	r.Register(oldConn)

	newConn := NewConn(&fakeWire{}, "u1")
	r.Register(newConn)

	if !oldWire.closed {
		t.Error("replaced connection was not closed")
	}
	if got := r.UserConn("u1"); got != newConn {
		t.Error("registry does not return the replacement connection")
	}

	// Unregistering the stale connection must not evict the new one.
	r.Unregister(oldConn)
	if got := r.UserConn("u1"); got != newConn {
		t.Error("stale unregister evicted the live connection")
	}
}

func TestRegistryRooms(t *testing.T) {
	r := NewRegistry()
	wireA, wireB, wireC := &fakeWire{}, &fakeWire{}, &fakeWire{}
	connA := NewConn(wireA, "a")
	connB := NewConn(wireB, "b")
	connC := NewConn(wireC, "c")
	for _, c := range []*Conn{connA, connB, connC} {
		r.Register(c)
	}
	r.JoinRoom("room1", connA)
	r.JoinRoom("room1", connB)
	r.JoinRoom("room2", connC)

	r.BroadcastToRoom("room1", "msg")

	if len(wireA.sent) != 1 || len(wireB.sent) != 1 {
		t.Errorf("room members received %d/%d payloads, want 1/1", len(wireA.sent), len(wireB.sent))
	}
	if len(wireC.sent) != 0 {
		t.Error("broadcast leaked into another room")
	}

	r.Unregister(connB)
	r.BroadcastToRoom("room1", "again")
	if len(wireB.sent) != 1 {
		t.Error("unregistered connection still receives broadcasts")
	}
	if len(wireA.sent) != 2 {
		t.Error("remaining member missed a broadcast")
	}
}

func TestRegistrySendToUser(t *testing.T) {
	r := NewRegistry()
	wire := &fakeWire{}
	r.Register(NewConn(wire, "u1"))

	if !r.SendToUser("u1", "hello") {
		t.Error("SendToUser failed for a registered user")
	}
	if r.SendToUser("nobody", "hello") {
		t.Error("SendToUser succeeded for an unknown user")
	}
	if len(wire.sent) != 1 {
		t.Errorf("wire received %d payloads, want 1", len(wire.sent))
	}
}
