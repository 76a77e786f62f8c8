package value

import "testing"

// Mirrors the reference stable-heap scenario: push (3,"c"),(1,"a"),(3,"d"),
// (2,"b") then pop all off. Equal priorities must resolve FIFO by
// insertion order, not break arbitrarily.
func TestHeapStableOrdering(t *testing.T) {
	h := NewHeap()
	h.Push(3, "c")
	h.Push(1, "a")
	h.Push(3, "d")
	h.Push(2, "b")

	want := []string{"a", "b", "c", "d"}
	for _, w := range want {
		v, err := h.Pop()
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		if v.(string) != w {
			t.Errorf("Pop = %v, want %v", v, w)
		}
	}
	if h.Len() != 0 {
		t.Errorf("heap should be empty, len = %d", h.Len())
	}
}

func TestHeapPeekDoesNotRemove(t *testing.T) {
	h := NewHeap()
	h.Push(1, "only")
	v, err := h.Peek()
	if err != nil || v.(string) != "only" {
		t.Fatalf("Peek = %v, %v", v, err)
	}
	if h.Len() != 1 {
		t.Errorf("Peek should not remove, len = %d", h.Len())
	}
}

func TestHeapEmptyFails(t *testing.T) {
	h := NewHeap()
	if _, err := h.Pop(); err == nil {
		t.Error("Pop on empty heap should fail")
	}
	if _, err := h.Peek(); err == nil {
		t.Error("Peek on empty heap should fail")
	}
}
