package value

import (
	"golang.org/x/exp/constraints"

	"coreil/internal/rterrors"
)

// clampInt pins i into [lo, hi], shared by ResolveSlice's two bounds.
func clampInt[T constraints.Integer](i, lo, hi T) T {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

// ResolveIndex resolves a signed, wrap-from-end index against length,
// failing if the resolved position falls outside [0, length) (spec §3,
// §4.5).
func ResolveIndex(length int, idx int64) (int, error) {
	i := idx
	if i < 0 {
		i += int64(length)
	}
	if i < 0 || i >= int64(length) {
		return 0, rterrors.Newf(rterrors.OutOfRange, "index", "index %d out of range for length %d", idx, length)
	}
	return int(i), nil
}

// ResolveSlice clamps a [start, end) range against length without ever
// failing (spec §4.5): negative bounds resolve like ResolveIndex without
// the range check, then clamp into [0, length]; start >= end yields an
// empty slice.
func ResolveSlice(length int, start, end int64) (int, int) {
	clamp := func(i int64) int {
		if i < 0 {
			i += int64(length)
		}
		return int(clampInt(i, 0, int64(length)))
	}
	s, e := clamp(start), clamp(end)
	if s >= e {
		return s, s
	}
	return s, e
}

func MakeArray(items []Value) *Array { return NewArray(items) }
func MakeTuple(items []Value) *Tuple { return NewTuple(items) }

// ArrayIndex resolves a single element out of Array, Tuple or Str
// (spec §3: "Array/Tuple/Str indices are signed with wrap-from-end").
func ArrayIndex(v Value, idx int64) (Value, error) {
	switch t := v.(type) {
	case *Array:
		i, err := ResolveIndex(len(t.Elements), idx)
		if err != nil {
			return nil, err
		}
		return t.Elements[i], nil
	case *Tuple:
		i, err := ResolveIndex(len(t.Elements), idx)
		if err != nil {
			return nil, err
		}
		return t.Elements[i], nil
	case string:
		runes := []rune(t)
		i, err := ResolveIndex(len(runes), idx)
		if err != nil {
			return nil, err
		}
		return string(runes[i]), nil
	default:
		return nil, rterrors.Newf(rterrors.TypeMismatch, "array_index", "%s is not indexable", TypeName(v))
	}
}

// ArraySetIndex mutates in place; only Array is interior-mutable.
func ArraySetIndex(v Value, idx int64, val Value) error {
	arr, ok := v.(*Array)
	if !ok {
		return rterrors.Newf(rterrors.TypeMismatch, "array_set_index", "%s does not support index assignment", TypeName(v))
	}
	i, err := ResolveIndex(len(arr.Elements), idx)
	if err != nil {
		return err
	}
	arr.Elements[i] = val
	return nil
}

// ArrayPush mutates in place and fails before touching storage if v is
// not an Array (spec §5 failure atomicity).
func ArrayPush(v Value, val Value) error {
	arr, ok := v.(*Array)
	if !ok {
		return rterrors.Newf(rterrors.TypeMismatch, "array_push", "%s is not an array", TypeName(v))
	}
	arr.Elements = append(arr.Elements, val)
	return nil
}

// ArrayLength also accepts Str (code points), Tuple and Map (entry count),
// per spec §4.5.
func ArrayLength(v Value) (int64, error) {
	switch t := v.(type) {
	case *Array:
		return int64(len(t.Elements)), nil
	case *Tuple:
		return int64(len(t.Elements)), nil
	case string:
		return int64(len([]rune(t))), nil
	case *Map:
		return int64(t.Len()), nil
	default:
		return 0, rterrors.Newf(rterrors.TypeMismatch, "array_length", "%s has no length", TypeName(v))
	}
}

// ArraySlice applies the clamping slice rule to Array, Tuple and Str,
// returning the same container kind it was given.
func ArraySlice(v Value, start, end int64) (Value, error) {
	switch t := v.(type) {
	case *Array:
		s, e := ResolveSlice(len(t.Elements), start, end)
		return &Array{Elements: append([]Value(nil), t.Elements[s:e]...)}, nil
	case *Tuple:
		s, e := ResolveSlice(len(t.Elements), start, end)
		return &Tuple{Elements: append([]Value(nil), t.Elements[s:e]...)}, nil
	case string:
		runes := []rune(t)
		s, e := ResolveSlice(len(runes), start, end)
		return string(runes[s:e]), nil
	default:
		return nil, rterrors.Newf(rterrors.TypeMismatch, "array_slice", "%s is not sliceable", TypeName(v))
	}
}
