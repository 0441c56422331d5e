package memory

import (
	"testing"
	"time"

	"github.com/marcheapp/storefront/internal/domain"
)

func TestTimelineRepositoryAppendAndList(t *testing.T) {
	repo := NewTimelineRepository()

	base := time.Now().UTC()

	// Append out of order, expect chronological list.
	if err := repo.Append(domain.TimelineEvent{OrderID: "o1", Type: "status.confirmed", Occurred: base.Add(time.Minute)}); err != nil {
		t.Fatalf("append second event: %v", err)
	}
	if err := repo.Append(domain.TimelineEvent{OrderID: "o1", Type: "order.placed", Occurred: base}); err != nil {
		t.Fatalf("append first event: %v", err)
	}

	events, err := repo.List("o1")
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Type != "order.placed" || events[1].Type != "status.confirmed" {
		t.Fatalf("events must be sorted by occurred: %+v", events)
	}
}

func TestTimelineRepositoryIsolatesOrders(t *testing.T) {
	repo := NewTimelineRepository()

	if err := repo.Append(domain.TimelineEvent{OrderID: "o1", Type: "order.placed", Occurred: time.Now()}); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.List("o2")
	if err != nil {
		t.Fatalf("list unrelated order: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty timeline for unknown order, got %d", len(events))
	}
}

func TestTimelineRepositoryListReturnsCopy(t *testing.T) {
	repo := NewTimelineRepository()

	if err := repo.Append(domain.TimelineEvent{OrderID: "o1", Type: "order.placed", Occurred: time.Now()}); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, _ := repo.List("o1")
	events[0].Type = "mutated"

	fresh, _ := repo.List("o1")
	if fresh[0].Type != "order.placed" {
		t.Fatal("mutating the returned slice must not affect the store")
	}
}
