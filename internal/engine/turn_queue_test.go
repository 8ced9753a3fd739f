package engine

import (
	"container/heap"
	"testing"

	"rogue-soccer/internal/domain"
)

func TestTurnQueue(t *testing.T) {
	pq := make(TurnQueue, 0)
	heap.Init(&pq)

	e1 := &domain.Entity{ID: 1, Name: "e1"}
	e2 := &domain.Entity{ID: 2, Name: "e2"}
	e3 := &domain.Entity{ID: 3, Name: "e3"}

	item1 := &TurnItem{Value: e1, Priority: 5, Order: 0}
	item2 := &TurnItem{Value: e2, Priority: 10, Order: 1}
	item3 := &TurnItem{Value: e3, Priority: 3, Order: 2}

	heap.Push(&pq, item1)
	heap.Push(&pq, item2)

	if pq.Len() != 2 {
		t.Errorf("Expected length 2, got %d", pq.Len())
	}

	// Highest initiative first
	first := heap.Pop(&pq).(*TurnItem)
	if first.Value.ID != 2 {
		t.Errorf("Expected e2, got %s", first.Value.Name)
	}

	// A late push still sorts by initiative
	item3.Priority = 8
	heap.Push(&pq, item3)

	second := heap.Pop(&pq).(*TurnItem)
	if second.Value.ID != 3 {
		t.Errorf("Expected e3 (8), got %s", second.Value.Name)
	}

	third := heap.Pop(&pq).(*TurnItem)
	if third.Value.ID != 1 {
		t.Errorf("Expected e1 (5), got %s", third.Value.Name)
	}
}

func TestTurnQueue_TiesKeepRosterOrder(t *testing.T) {
	pq := make(TurnQueue, 0)
	for i, id := range []domain.EntityID{4, 7, 9} {
		heap.Push(&pq, &TurnItem{Value: &domain.Entity{ID: id}, Priority: 1, Order: i})
	}
	if got := heap.Pop(&pq).(*TurnItem).Value.ID; got != 4 {
		t.Errorf("tie broken toward %v, want the earliest in the roster", got)
	}
}
