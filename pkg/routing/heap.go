package routing

// minHeap is a concrete-typed min-heap for the A* open set, keyed by
// f-cost. Avoids interface boxing overhead of container/heap.
type minHeap struct {
	items []heapItem
}

// heapItem is an open-set entry. A node may appear more than once after a
// relaxation; stale entries are skipped when popped.
type heapItem struct {
	node int32
	f    float64
}

func (h *minHeap) len() int { return len(h.items) }

func (h *minHeap) push(node int32, f float64) {
	h.items = append(h.items, heapItem{node, f})
	h.siftUp(len(h.items) - 1)
}

func (h *minHeap) pop() heapItem {
	n := len(h.items)
	item := h.items[0]
	h.items[0] = h.items[n-1]
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return item
}

func (h *minHeap) reset() {
	h.items = h.items[:0]
}

func (h *minHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[i].f >= h.items[parent].f {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *minHeap) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && h.items[left].f < h.items[smallest].f {
			smallest = left
		}
		if right < n && h.items[right].f < h.items[smallest].f {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
