package jsonval

import (
	"testing"

	"coreil/internal/value"
)

func TestParseStringifyRoundTripSeedScenario(t *testing.T) {
	v, err := Parse(`{"a":[1,2.0,null]}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := Stringify(v, false)
	want := `{"a": [1, 2.0, null]}`
	if got != want {
		t.Errorf("Stringify = %q, want %q", got, want)
	}
}

func TestParseObjectsAndArrays(t *testing.T) {
	v, err := Parse(`{"name": "ok", "count": 3, "ratio": 1.5, "flag": true, "nil": null, "list": [1, 2, 3]}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m, ok := v.(*value.Map)
	if !ok {
		t.Fatalf("expected *value.Map, got %T", v)
	}
	name, _ := m.Get("name")
	if name != "ok" {
		t.Errorf("name = %v, want ok", name)
	}
	count, _ := m.Get("count")
	if count.(int64) != 3 {
		t.Errorf("count = %v, want Int 3", count)
	}
	ratio, _ := m.Get("ratio")
	if ratio.(float64) != 1.5 {
		t.Errorf("ratio = %v, want Float 1.5", ratio)
	}
}

func TestParseMalformedFails(t *testing.T) {
	cases := []string{
		`{"a":}`,
		`[1, 2,]`,
		`{"a" 1}`,
		`nul`,
		``,
	}
	for _, c := range cases {
		if _, err := Parse(c); err == nil {
			t.Errorf("Parse(%q) should fail", c)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	v, err := Parse(`"line1\nline2\ttabA"`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := "line1\nline2\ttabA"
	if v.(string) != want {
		t.Errorf("Parse escapes = %q, want %q", v, want)
	}
}

func TestStringifyPrettyAndCompactParseToSameValue(t *testing.T) {
	v, _ := Parse(`{"a": [1, {"b": 2}], "c": "x"}`)
	compact := Stringify(v, false)
	pretty := Stringify(v, true)

	vc, err := Parse(compact)
	if err != nil {
		t.Fatalf("Parse(compact): %v", err)
	}
	vp, err := Parse(pretty)
	if err != nil {
		t.Fatalf("Parse(pretty): %v", err)
	}
	if !value.ValuesEqual(vc, vp) {
		t.Errorf("pretty and compact forms should parse to equal values: %v vs %v", vc, vp)
	}
}

func TestStringifyEmptyContainers(t *testing.T) {
	if got := Stringify(&value.Array{}, false); got != "[]" {
		t.Errorf("empty array = %q, want []", got)
	}
	if got := Stringify(value.NewMap(), false); got != "{}" {
		t.Errorf("empty map = %q, want {}", got)
	}
	if got := Stringify(&value.Array{}, true); got != "[]" {
		t.Errorf("empty array pretty = %q, want [] regardless of indent", got)
	}
}

func TestStringifyNonNativeFallsBackToDisplay(t *testing.T) {
	tup := &value.Tuple{Elements: []value.Value{int64(1), int64(2)}}
	got := Stringify(tup, false)
	want := `"(1, 2)"`
	if got != want {
		t.Errorf("Stringify(tuple) = %q, want %q", got, want)
	}
}

func TestStringifyIntegralFloatEmitsDotZero(t *testing.T) {
	if got := Stringify(3.0, false); got != "3.0" {
		t.Errorf("Stringify(3.0) = %q, want 3.0", got)
	}
}
