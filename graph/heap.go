package graph

// rootHeap is a small array-backed max-heap over root nodes, ordered by
// overlap score. It exists for the same reason engine/containers hand-rolls
// its ring buffer rather than reaching for a generic container: the
// scheduler only ever needs push/pop-max over a handful of entries.
type rootEntry struct {
	node         *passNode
	overlapScore int
}

type rootHeap struct {
	data []rootEntry
}

func (h *rootHeap) Len() int {
	return len(h.data)
}

func (h *rootHeap) Push(node *passNode, overlapScore int) {
	h.data = append(h.data, rootEntry{node: node, overlapScore: overlapScore})
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the node with the highest overlap score. Ties
// are broken by heap layout only; callers must not rely on that order
// (spec §4.4).
func (h *rootHeap) Pop() *passNode {
	if len(h.data) == 0 {
		return nil
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]
	if len(h.data) > 0 {
		h.siftDown(0)
	}
	return top.node
}

func (h *rootHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.data[parent].overlapScore >= h.data[i].overlapScore {
			break
		}
		h.data[parent], h.data[i] = h.data[i], h.data[parent]
		i = parent
	}
}

func (h *rootHeap) siftDown(i int) {
	n := len(h.data)
	for {
		left := 2*i + 1
		right := 2*i + 2
		largest := i
		if left < n && h.data[left].overlapScore > h.data[largest].overlapScore {
			largest = left
		}
		if right < n && h.data[right].overlapScore > h.data[largest].overlapScore {
			largest = right
		}
		if largest == i {
			break
		}
		h.data[i], h.data[largest] = h.data[largest], h.data[i]
		i = largest
	}
}
