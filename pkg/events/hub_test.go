package events

import (
	"testing"
	"time"

	"github.com/rclab/rclab/pkg/circuit"
)

func TestHubPublishSubscribe(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	payload := ParamsChangedEvent{
		Parameters: circuit.Parameters{
			Resistance:    1000,
			Capacitance:   100,
			SupplyVoltage: 5.0,
			Mode:          circuit.Charging,
		},
		TauMs:   100,
		Summary: "summary",
		Ts:      time.Now().Unix(),
	}
	h.Publish(ParamsChanged, payload)

	select {
	case ev := <-ch:
		if ev.Name != ParamsChanged {
			t.Fatalf("event name = %q, want %q", ev.Name, ParamsChanged)
		}
		got, err := DecodeAs[ParamsChangedEvent](ev)
		if err != nil {
			t.Fatalf("DecodeAs failed: %v", err)
		}
		if got.Parameters != payload.Parameters {
			t.Errorf("decoded parameters = %+v, want %+v", got.Parameters, payload.Parameters)
		}
		if got.TauMs != payload.TauMs {
			t.Errorf("decoded tauMs = %v, want %v", got.TauMs, payload.TauMs)
		}
	case <-time.After(time.Second):
		t.Fatalf("did not receive published event in time")
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	h.Unsubscribe(ch)

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatalf("expected closed channel after unsubscribe")
		}
	default:
		t.Fatalf("channel should be closed, not empty and open")
	}

	// Second unsubscribe must not panic.
	h.Unsubscribe(ch)
}

func TestHubSlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	// Overfill the subscriber buffer. Publish must return regardless.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			h.Publish(ParamsChanged, ParamsChangedEvent{Ts: int64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("publish blocked on a slow subscriber")
	}
}

func TestNilHubPublish(t *testing.T) {
	var h *Hub
	// Must be a no-op, not a panic.
	h.Publish(ParamsChanged, nil)
}

func TestDecodeAsEmptyPayload(t *testing.T) {
	got, err := DecodeAs[ParamsChangedEvent](Event{Name: ParamsChanged})
	if err != nil {
		t.Fatalf("DecodeAs on empty payload: %v", err)
	}
	if got.Summary != "" || got.TauMs != 0 {
		t.Errorf("DecodeAs on empty payload = %+v, want zero value", got)
	}
}
