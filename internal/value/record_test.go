package value

import "testing"

func TestRecordFieldOrderAndUpdate(t *testing.T) {
	r := MakeRecord([]Field{
		{Name: "x", Value: int64(1)},
		{Name: "y", Value: int64(2)},
	})
	r.SetField("x", int64(42))
	r.SetField("z", int64(3))

	fields := r.Fields()
	wantNames := []string{"x", "y", "z"}
	if len(fields) != len(wantNames) {
		t.Fatalf("got %d fields, want %d", len(fields), len(wantNames))
	}
	for i, n := range wantNames {
		if fields[i].Name != n {
			t.Errorf("fields[%d].Name = %q, want %q", i, fields[i].Name, n)
		}
	}
	v, _ := r.GetField("x")
	if v.(int64) != 42 {
		t.Errorf("updated field x = %v, want 42", v)
	}
}

func TestGetFieldOrFailMissing(t *testing.T) {
	r := NewRecord()
	if _, err := GetFieldOrFail(r, "nope"); err == nil {
		t.Error("GetFieldOrFail on missing field should fail")
	}
}
