package events

import (
	"testing"
	"time"

	"voltedge/internal/models"
)

func TestHubDeliversToAllSubscribers(t *testing.T) {
	hub := NewHub()

	first, cancelFirst := hub.Subscribe(4)
	second, cancelSecond := hub.Subscribe(4)
	defer cancelFirst()
	defer cancelSecond()

	event := ChargerStatus{
		StationID:  1,
		ChargerID:  101,
		Status:     models.ChargerStatusOccupied,
		OccurredAt: time.Now().UTC(),
	}
	hub.Publish(event)

	for _, sub := range []<-chan ChargerStatus{first, second} {
		select {
		case got := <-sub:
			if got.ChargerID != 101 || got.Status != models.ChargerStatusOccupied {
				t.Fatalf("unexpected event: %+v", got)
			}
		case <-time.After(time.Second):
			t.Fatal("event not delivered")
		}
	}
}

func TestHubDropsWhenSubscriberIsFull(t *testing.T) {
	hub := NewHub()
	sub, cancel := hub.Subscribe(1)
	defer cancel()

	hub.Publish(ChargerStatus{ChargerID: 1})
	hub.Publish(ChargerStatus{ChargerID: 2})

	got := <-sub
	if got.ChargerID != 1 {
		t.Fatalf("expected first event kept, got charger %d", got.ChargerID)
	}
	select {
	case extra := <-sub:
		t.Fatalf("second event should have been dropped, got charger %d", extra.ChargerID)
	default:
	}
}

func TestHubCancelRemovesSubscriptionAndClosesChannel(t *testing.T) {
	hub := NewHub()
	sub, cancel := hub.Subscribe(1)

	if hub.SubscriberCount() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", hub.SubscriberCount())
	}

	cancel()
	cancel() // repeat cancellation is safe

	if hub.SubscriberCount() != 0 {
		t.Fatalf("expected 0 subscribers, got %d", hub.SubscriberCount())
	}
	if _, open := <-sub; open {
		t.Fatal("channel should be closed after cancel")
	}

	// Publishing with no subscribers must not panic.
	hub.Publish(ChargerStatus{ChargerID: 3})
}
