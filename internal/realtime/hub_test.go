package realtime

import (
	"errors"
	"testing"
)

type fakeClient struct {
	events []Event
	failed bool
	closed bool
}

func (f *fakeClient) WriteJSON(v interface{}) error {
	if f.failed {
		return errors.New("write: broken pipe")
	}
	f.events = append(f.events, v.(Event))
	return nil
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func (f *fakeClient) count(event string) int {
	n := 0
	for _, e := range f.events {
		if e.Event == event {
			n++
		}
	}
	return n
}

func TestNewOrderReachesAdminsOnly(t *testing.T) {
	hub := NewHub()
	admin := &fakeClient{}
	guest := &fakeClient{}
	hub.Register(admin)
	hub.Register(guest)
	hub.JoinAdmin(admin)

	hub.ToAdmins(EventNewOrder, map[string]string{"order_number": "HE1"})

	if admin.count(EventNewOrder) != 1 {
		t.Errorf("admin expected 1 newOrder event, got %d", admin.count(EventNewOrder))
	}
	if guest.count(EventNewOrder) != 0 {
		t.Errorf("guest expected no newOrder events, got %d", guest.count(EventNewOrder))
	}
}

func TestOrderUpdateOnlyReachesThatOrdersRoom(t *testing.T) {
	hub := NewHub()
	trackerX := &fakeClient{}
	trackerY := &fakeClient{}
	bystander := &fakeClient{}
	for _, c := range []*fakeClient{trackerX, trackerY, bystander} {
		hub.Register(c)
	}
	hub.TrackOrder(trackerX, "HE-X")
	hub.TrackOrder(trackerY, "HE-Y")

	hub.ToOrder("HE-X", EventOrderUpdate, map[string]string{"status": "preparing"})

	if trackerX.count(EventOrderUpdate) != 1 {
		t.Errorf("tracker of HE-X expected 1 orderUpdate, got %d", trackerX.count(EventOrderUpdate))
	}
	if trackerY.count(EventOrderUpdate) != 0 {
		t.Errorf("tracker of HE-Y must not receive updates for HE-X")
	}
	if bystander.count(EventOrderUpdate) != 0 {
		t.Errorf("unsubscribed client must not receive order updates")
	}
}

func TestLeaveOrderStopsDelivery(t *testing.T) {
	hub := NewHub()
	tracker := &fakeClient{}
	hub.Register(tracker)
	hub.TrackOrder(tracker, "HE-1")
	hub.LeaveOrder(tracker, "HE-1")

	hub.ToOrder("HE-1", EventOrderUpdate, nil)

	if tracker.count(EventOrderUpdate) != 0 {
		t.Error("client that left the room must not receive updates")
	}
}

func TestOrderStatusUpdateBroadcast(t *testing.T) {
	hub := NewHub()
	admin := &fakeClient{}
	guest := &fakeClient{}
	hub.Register(admin)
	hub.Register(guest)
	hub.JoinAdmin(admin)

	// Mirrors the emit sequence on a status change: one global broadcast
	// plus one admin-audience emit.
	hub.Broadcast(EventOrderStatusUpdate, map[string]string{"status": "confirmed"})
	hub.ToAdmins(EventOrderStatusUpdate, map[string]string{"status": "confirmed"})

	if guest.count(EventOrderStatusUpdate) != 1 {
		t.Errorf("guest expected 1 orderStatusUpdate, got %d", guest.count(EventOrderStatusUpdate))
	}
	if admin.count(EventOrderStatusUpdate) != 2 {
		t.Errorf("admin expected broadcast plus admin copy, got %d", admin.count(EventOrderStatusUpdate))
	}
}

func TestFailedWriteDropsClient(t *testing.T) {
	hub := NewHub()
	broken := &fakeClient{failed: true}
	healthy := &fakeClient{}
	hub.Register(broken)
	hub.Register(healthy)
	hub.JoinAdmin(broken)
	hub.TrackOrder(broken, "HE-2")

	hub.Broadcast(EventOrderStatusUpdate, nil)

	if !broken.closed {
		t.Error("client with failed write should be closed")
	}

	// The dropped client is out of every audience.
	hub.ToAdmins(EventNewOrder, nil)
	hub.ToOrder("HE-2", EventOrderUpdate, nil)
	if len(broken.events) != 0 {
		t.Errorf("dropped client received %d events", len(broken.events))
	}
	if healthy.count(EventOrderStatusUpdate) != 1 {
		t.Error("healthy client should still receive the broadcast")
	}
}

func TestUnregisterRemovesFromAllAudiences(t *testing.T) {
	hub := NewHub()
	c := &fakeClient{}
	hub.Register(c)
	hub.JoinAdmin(c)
	hub.TrackOrder(c, "HE-3")
	hub.Unregister(c)

	hub.Broadcast(EventNewOrder, nil)
	hub.ToAdmins(EventNewOrder, nil)
	hub.ToOrder("HE-3", EventOrderUpdate, nil)

	if len(c.events) != 0 {
		t.Errorf("unregistered client received %d events", len(c.events))
	}
	if !c.closed {
		t.Error("unregistered client should be closed")
	}
}
