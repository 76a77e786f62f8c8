package value

import (
	"container/list"

	"coreil/internal/rterrors"
)

// Deque is a double-ended sequence (spec §4.7). It is built on the
// standard container/list doubly linked list, the natural O(1)-both-ends
// structure for this shape — no example in the retrieved corpus
// implements a deque, so this one concern falls back to the standard
// library rather than an invented dependency.
type Deque struct {
	l *list.List
}

func NewDeque() *Deque {
	return &Deque{l: list.New()}
}

func (d *Deque) PushBack(v Value)  { d.l.PushBack(v) }
func (d *Deque) PushFront(v Value) { d.l.PushFront(v) }

func (d *Deque) PopFront() (Value, error) {
	e := d.l.Front()
	if e == nil {
		return nil, rterrors.New(rterrors.EmptyContainer, "pop_front", "deque is empty")
	}
	d.l.Remove(e)
	return e.Value, nil
}

func (d *Deque) PopBack() (Value, error) {
	e := d.l.Back()
	if e == nil {
		return nil, rterrors.New(rterrors.EmptyContainer, "pop_back", "deque is empty")
	}
	d.l.Remove(e)
	return e.Value, nil
}

func (d *Deque) Len() int { return d.l.Len() }

// Items materializes the deque front-to-back into a fresh slice,
// decoupling iteration (e.g. for formatting) from later mutation.
func (d *Deque) Items() []Value {
	items := make([]Value, 0, d.l.Len())
	for e := d.l.Front(); e != nil; e = e.Next() {
		items = append(items, e.Value)
	}
	return items
}
