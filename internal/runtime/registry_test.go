package runtime

import (
	"bytes"
	"testing"

	"coreil/internal/value"
)

func TestPrintWritesDisplayJoinedBySpace(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	if _, err := r.Call("print", []value.Value{int64(1), "x", true}); err != nil {
		t.Fatalf("Call(print): %v", err)
	}
	if got := buf.String(); got != "1 x True\n" {
		t.Errorf("print output = %q, want %q", got, "1 x True\n")
	}
}

func TestArithmeticDispatch(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	v, err := r.Call("add", []value.Value{int64(1), int64(2)})
	if err != nil || v.(int64) != 3 {
		t.Errorf("Call(add) = %v, %v, want 3", v, err)
	}
}

func TestUnknownOperationFails(t *testing.T) {
	r := New(&bytes.Buffer{})
	if _, err := r.Call("not_a_real_op", nil); err == nil {
		t.Error("calling an unregistered op should fail")
	}
}

func TestArityMismatchFails(t *testing.T) {
	r := New(&bytes.Buffer{})
	if _, err := r.Call("add", []value.Value{int64(1)}); err == nil {
		t.Error("calling add with one argument should fail arity check")
	}
}

func TestContainerRoundTripThroughRegistry(t *testing.T) {
	r := New(&bytes.Buffer{})
	arr, err := r.Call("make_array", []value.Value{&value.Array{Elements: []value.Value{int64(10), int64(20)}}})
	if err != nil {
		t.Fatalf("Call(make_array): %v", err)
	}
	v, err := r.Call("array_index", []value.Value{arr, int64(-1)})
	if err != nil || v.(int64) != 20 {
		t.Errorf("Call(array_index) = %v, %v, want 20", v, err)
	}
}

func TestHeapRegistrationSurface(t *testing.T) {
	r := New(&bytes.Buffer{})
	h, err := r.Call("heap_new", nil)
	if err != nil {
		t.Fatalf("Call(heap_new): %v", err)
	}
	if _, err := r.Call("heap_push", []value.Value{h, int64(2), "b"}); err != nil {
		t.Fatalf("Call(heap_push): %v", err)
	}
	if _, err := r.Call("heap_push", []value.Value{h, int64(1), "a"}); err != nil {
		t.Fatalf("Call(heap_push): %v", err)
	}
	v, err := r.Call("heap_pop", []value.Value{h})
	if err != nil || v.(string) != "a" {
		t.Errorf("Call(heap_pop) = %v, %v, want a", v, err)
	}
}

func TestRegexAndJSONDispatch(t *testing.T) {
	r := New(&bytes.Buffer{})
	v, err := r.Call("regex_find_all", []value.Value{"a12b34c", `\d+`, ""})
	if err != nil {
		t.Fatalf("Call(regex_find_all): %v", err)
	}
	arr := v.(*value.Array)
	if len(arr.Elements) != 2 || arr.Elements[0] != "12" || arr.Elements[1] != "34" {
		t.Errorf("regex_find_all = %v, want [12 34]", arr.Elements)
	}

	parsed, err := r.Call("parse", []value.Value{`{"a":1}`})
	if err != nil {
		t.Fatalf("Call(parse): %v", err)
	}
	s, err := r.Call("stringify", []value.Value{parsed, false})
	if err != nil || s.(string) != `{"a": 1}` {
		t.Errorf("Call(stringify) = %v, %v, want {\"a\": 1}", s, err)
	}
}
