package value

import (
	"strconv"
	"strings"

	"coreil/internal/rterrors"
)

// ToInt is the general `to_int` coercion: Int passes through, Float
// truncates toward zero, Bool is accepted as 0/1, and Str is parsed
// (as an integer literal, falling back to a float literal truncated
// toward zero) — failing with ParseFailure on unconvertible input.
func ToInt(v Value) (Value, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case float64:
		return int64(t), nil
	case bool:
		if t {
			return int64(1), nil
		}
		return int64(0), nil
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f), nil
		}
		return nil, rterrors.Newf(rterrors.ParseFailure, "to_int", "cannot parse %q as int", t)
	default:
		return nil, rterrors.Newf(rterrors.TypeMismatch, "to_int", "cannot convert %s to int", TypeName(v))
	}
}

// ToFloat is the general `to_float` coercion, parsing Str and accepting
// Bool the same way ToInt does.
func ToFloat(v Value) (Value, error) {
	switch t := v.(type) {
	case int64:
		return float64(t), nil
	case float64:
		return t, nil
	case bool:
		if t {
			return float64(1), nil
		}
		return float64(0), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil, rterrors.Newf(rterrors.ParseFailure, "to_float", "cannot parse %q as float", t)
		}
		return f, nil
	default:
		return nil, rterrors.Newf(rterrors.TypeMismatch, "to_float", "cannot convert %s to float", TypeName(v))
	}
}

// ToStringVal is `to_string`: the Display rendering of v, as a Str.
func ToStringVal(v Value) Value { return Display(v) }

// ToBool is `to_bool`: the Bool wrapping of v's truthiness.
func ToBool(v Value) Value { return IsTruthy(v) }

// AsInt and AsFloat are the legacy coercion path named in spec §6: they
// accept Bool operands exactly like ToInt/ToFloat.
func AsInt(v Value) (Value, error)   { return ToInt(v) }
func AsFloat(v Value) (Value, error) { return ToFloat(v) }

// ValueToInt and ValueToFloat are the strict coercion path: identical to
// ToInt/ToFloat except a Bool operand is rejected as a type mismatch
// rather than silently coerced to 0/1.
func ValueToInt(v Value) (Value, error) {
	if IsBool(v) {
		return nil, rterrors.Newf(rterrors.TypeMismatch, "value_to_int", "bool is not accepted by strict int coercion")
	}
	return ToInt(v)
}

func ValueToFloat(v Value) (Value, error) {
	if IsBool(v) {
		return nil, rterrors.Newf(rterrors.TypeMismatch, "value_to_float", "bool is not accepted by strict float coercion")
	}
	return ToFloat(v)
}
