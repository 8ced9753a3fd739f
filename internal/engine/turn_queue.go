package engine

import (
	"rogue-soccer/internal/domain"
)

// TurnItem wraps an entity waiting for its turn.
type TurnItem struct {
	Value    *domain.Entity
	Priority int // initiative; higher goes first
	Order    int // roster order, lower wins ties
}

// TurnQueue implements heap.Interface as a max-heap on Priority.
type TurnQueue []*TurnItem

func (pq TurnQueue) Len() int { return len(pq) }

func (pq TurnQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority > pq[j].Priority
	}
	return pq[i].Order < pq[j].Order
}

func (pq TurnQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *TurnQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*TurnItem))
}

func (pq *TurnQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // no dangling pointer
	*pq = old[0 : n-1]
	return item
}
