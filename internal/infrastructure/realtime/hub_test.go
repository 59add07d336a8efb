package realtime

import (
	"encoding/json"
	"errors"
	"testing"
)

type fakeSession struct {
	frames [][]byte
	fail   bool
}

func (f *fakeSession) Send(payload []byte) error {
	if f.fail {
		return errors.New("send fail")
	}
	f.frames = append(f.frames, payload)
	return nil
}

func TestHub_PublishReachesAttachedSessions(t *testing.T) {
	hub := NewHub()

	a := &fakeSession{}
	b := &fakeSession{}
	hub.Attach("acc1", "s1", a)
	hub.Attach("acc1", "s2", b)

	n := hub.Publish("acc1", Event{Type: "newMessage", Data: map[string]string{"text": "hi"}})
	if n != 2 {
		t.Fatalf("expected 2 deliveries, got %d", n)
	}
	if len(a.frames) != 1 || len(b.frames) != 1 {
		t.Fatalf("both sessions should have one frame, got %d and %d", len(a.frames), len(b.frames))
	}

	var ev Event
	if err := json.Unmarshal(a.frames[0], &ev); err != nil {
		t.Fatalf("frame is not valid JSON: %v", err)
	}
	if ev.Type != "newMessage" {
		t.Fatalf("expected type newMessage, got %q", ev.Type)
	}
}

func TestHub_LateSubscriberMissesEarlierPublish(t *testing.T) {
	hub := NewHub()

	early := &fakeSession{}
	hub.Attach("acc1", "s1", early)
	hub.Publish("acc1", Event{Type: "conversationUpdate"})

	late := &fakeSession{}
	hub.Attach("acc1", "s2", late)

	if len(early.frames) != 1 {
		t.Fatalf("early session should have received the publish")
	}
	if len(late.frames) != 0 {
		t.Fatalf("late session must not receive events published before attach")
	}
}

func TestHub_PublishScopedToAccount(t *testing.T) {
	hub := NewHub()

	mine := &fakeSession{}
	other := &fakeSession{}
	hub.Attach("acc1", "s1", mine)
	hub.Attach("acc2", "s2", other)

	hub.Publish("acc1", Event{Type: "newMessage"})

	if len(mine.frames) != 1 {
		t.Fatalf("owning account session should receive the event")
	}
	if len(other.frames) != 0 {
		t.Fatalf("other account session must not receive the event")
	}
}

func TestHub_DetachStopsDelivery(t *testing.T) {
	hub := NewHub()

	s := &fakeSession{}
	hub.Attach("acc1", "s1", s)
	hub.Detach("acc1", "s1")

	if n := hub.Publish("acc1", Event{Type: "newMessage"}); n != 0 {
		t.Fatalf("expected 0 deliveries after detach, got %d", n)
	}
}

func TestHub_FailedSendDropsSession(t *testing.T) {
	hub := NewHub()

	ok := &fakeSession{}
	bad := &fakeSession{fail: true}
	hub.Attach("acc1", "s1", ok)
	hub.Attach("acc1", "s2", bad)

	hub.Publish("acc1", Event{Type: "newMessage"})
	if got := hub.Sessions("acc1"); got != 1 {
		t.Fatalf("failing session should be dropped, have %d sessions", got)
	}

	hub.Publish("acc1", Event{Type: "conversationUpdate"})
	if len(ok.frames) != 2 {
		t.Fatalf("healthy session should keep receiving, got %d frames", len(ok.frames))
	}
}

func TestHub_SameCallOrderPreserved(t *testing.T) {
	hub := NewHub()

	s := &fakeSession{}
	hub.Attach("acc1", "s1", s)

	hub.Publish("acc1", Event{Type: "newMessage", Data: 1})
	hub.Publish("acc1", Event{Type: "conversationUpdate", Data: 2})

	if len(s.frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(s.frames))
	}
	var first, second Event
	_ = json.Unmarshal(s.frames[0], &first)
	_ = json.Unmarshal(s.frames[1], &second)
	if first.Type != "newMessage" || second.Type != "conversationUpdate" {
		t.Fatalf("frames out of order: %q then %q", first.Type, second.Type)
	}
}
