package systems

import (
	"container/heap"

	"rogue-soccer/internal/domain"
)

// frontierItem is one queued tile of the path search.
type frontierItem struct {
	tile     domain.Tile
	priority int // lower pops first
	seq      int // insertion order, breaks priority ties
	index    int // heap index, needed for Fix
}

// frontierHeap implements heap.Interface over frontierItems.
type frontierHeap []*frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *frontierHeap) Push(x interface{}) {
	item := x.(*frontierItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// frontier is a min-priority queue of tiles in which pushing a tile that is
// already queued updates its priority instead of adding a duplicate.
type frontier struct {
	heap   frontierHeap
	queued map[domain.Tile]*frontierItem
	seq    int
}

func newFrontier() *frontier {
	return &frontier{queued: make(map[domain.Tile]*frontierItem)}
}

func (f *frontier) Len() int { return f.heap.Len() }

// Push inserts t or re-prioritises it if it is still queued.
func (f *frontier) Push(t domain.Tile, priority int) {
	f.seq++
	if item, ok := f.queued[t]; ok {
		item.priority = priority
		item.seq = f.seq
		heap.Fix(&f.heap, item.index)
		return
	}
	item := &frontierItem{tile: t, priority: priority, seq: f.seq}
	heap.Push(&f.heap, item)
	f.queued[t] = item
}

// Pop removes the lowest-priority tile.
func (f *frontier) Pop() domain.Tile {
	item := heap.Pop(&f.heap).(*frontierItem)
	delete(f.queued, item.tile)
	return item.tile
}
