package value

import "testing"

func TestValuesEqualCrossNumeric(t *testing.T) {
	if !ValuesEqual(int64(1), true) {
		t.Error("1 should equal True under cross-type numeric equality")
	}
	if !ValuesEqual(int64(2), 2.0) {
		t.Error("Int 2 should equal Float 2.0")
	}
	if ValuesEqual(int64(1), "1") {
		t.Error("Int 1 should not equal Str \"1\"")
	}
}

func TestValuesEqualContainers(t *testing.T) {
	a := &Array{Elements: []Value{int64(1), "x"}}
	b := &Array{Elements: []Value{int64(1), "x"}}
	if !ValuesEqual(a, b) {
		t.Error("arrays with equal elements in same order should be equal")
	}
	c := &Array{Elements: []Value{"x", int64(1)}}
	if ValuesEqual(a, c) {
		t.Error("arrays with different order should not be equal")
	}
}

func TestValuesEqualSetOrderIndependent(t *testing.T) {
	s1 := MakeSet([]Value{int64(1), int64(2), int64(3)})
	s2 := MakeSet([]Value{int64(3), int64(1), int64(2)})
	if !ValuesEqual(s1, s2) {
		t.Error("sets with same members in different insertion order should be equal")
	}
}

func TestCompareOrdering(t *testing.T) {
	lt, err := LessThan(int64(1), int64(2))
	if err != nil || lt != true {
		t.Errorf("1 < 2 should be true, got %v, err %v", lt, err)
	}
	gt, err := GreaterThan("b", "a")
	if err != nil || gt != true {
		t.Errorf("\"b\" > \"a\" should be true, got %v, err %v", gt, err)
	}
}

func TestCompareIncompatibleTypes(t *testing.T) {
	if _, err := LessThan("a", int64(1)); err == nil {
		t.Error("comparing str to int should fail")
	}
}
