package notifications

import (
	"context"
	"testing"
	"time"

	"pede_facil/internal/domain/entities"
)

func TestRegistry_SubscribeBroadcastUnsubscribe(t *testing.T) {
	r := NewRegistry()

	id1, ch1 := r.Subscribe(1)
	_, ch2 := r.Subscribe(1)
	if r.Len() != 2 {
		t.Fatalf("expected 2 subscribers, got %d", r.Len())
	}

	r.Broadcast(PaymentEvent{PaymentID: "pay-1", Status: "approved"})

	for _, ch := range []<-chan PaymentEvent{ch1, ch2} {
		select {
		case ev := <-ch:
			if ev.PaymentID != "pay-1" {
				t.Fatalf("unexpected event: %+v", ev)
			}
		case <-time.After(time.Second):
			t.Fatalf("expected event delivery")
		}
	}

	r.Unsubscribe(id1)
	if r.Len() != 1 {
		t.Fatalf("expected 1 subscriber after unsubscribe, got %d", r.Len())
	}
	if _, open := <-ch1; open {
		t.Fatalf("expected channel to be closed")
	}

	// Unknown ids are a no-op.
	r.Unsubscribe("missing")
}

func TestRegistry_BroadcastDropsWhenFull(t *testing.T) {
	r := NewRegistry()
	_, ch := r.Subscribe(1)

	r.Broadcast(PaymentEvent{PaymentID: "pay-1"})
	r.Broadcast(PaymentEvent{PaymentID: "pay-2"})

	ev := <-ch
	if ev.PaymentID != "pay-1" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	select {
	case ev := <-ch:
		t.Fatalf("expected second event to be dropped, got %+v", ev)
	default:
	}
}

func TestRegistry_PaymentApproved(t *testing.T) {
	r := NewRegistry()
	_, ch := r.Subscribe(1)

	err := r.PaymentApproved(context.Background(), entities.Payment{
		ID: "pay-1", Status: entities.PaymentStatusApproved, StatusDetail: "accredited",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ev := <-ch
	if ev.PaymentID != "pay-1" || ev.Status != "approved" || ev.OccurredAt.IsZero() {
		t.Fatalf("unexpected event: %+v", ev)
	}
}
