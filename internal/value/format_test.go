package value

import (
	"math"
	"testing"
)

func TestDisplayAndRepr(t *testing.T) {
	tests := []struct {
		name   string
		val    Value
		display string
		repr    string
	}{
		{"none", NoneValue, "None", "None"},
		{"true", true, "True", "True"},
		{"false", false, "False", "False"},
		{"int", int64(42), "42", "42"},
		{"float_integral", 3.0, "3.0", "3.0"},
		{"float_frac", 3.5, "3.5", "3.5"},
		{"string_display", "hi", "hi", "'hi'"},
		{"array", &Array{Elements: []Value{int64(1), "a", NoneValue}}, "[1, 'a', None]", "[1, 'a', None]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Display(tt.val); got != tt.display {
				t.Errorf("Display() = %q, want %q", got, tt.display)
			}
			if got := Repr(tt.val); got != tt.repr {
				t.Errorf("Repr() = %q, want %q", got, tt.repr)
			}
		})
	}
}

func TestFormatFloatSpecialValues(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		want string
	}{
		{"nan", math.NaN(), "nan"},
		{"pos_inf", math.Inf(1), "inf"},
		{"neg_inf", math.Inf(-1), "-inf"},
		{"integral", 15.0, "15.0"},
		{"fractional", 0.25, "0.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatFloat(tt.f); got != tt.want {
				t.Errorf("formatFloat(%v) = %q, want %q", tt.f, got, tt.want)
			}
		})
	}
}

func TestTupleRepr(t *testing.T) {
	one := &Tuple{Elements: []Value{int64(1)}}
	if got := Display(one); got != "(1,)" {
		t.Errorf("single-element tuple = %q, want (1,)", got)
	}
	pair := &Tuple{Elements: []Value{int64(1), int64(2)}}
	if got := Display(pair); got != "(1, 2)" {
		t.Errorf("two-element tuple = %q, want (1, 2)", got)
	}
}
