package value

import "coreil/internal/rterrors"

// ValuesEqual is deep, structural equality (spec §4.4): cross-type
// numeric equality between Bool/Int/Float, elementwise comparison for
// Array/Tuple/Map in iteration order, and two-way subset comparison for
// Set (order-independent).
func ValuesEqual(a, b Value) bool {
	if isNumeric(a) && isNumeric(b) {
		return numericOf(a) == numericOf(b)
	}
	if IsNone(a) {
		return IsNone(b)
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case *Array:
		bv, ok := b.(*Array)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !ValuesEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Tuple:
		bv, ok := b.(*Tuple)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !ValuesEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Map:
		bv, ok := b.(*Map)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		bp := bv.Pairs()
		for i, e := range av.Pairs() {
			if !ValuesEqual(e.Key, bp[i].Key) || !ValuesEqual(e.Value, bp[i].Value) {
				return false
			}
		}
		return true
	case *Set:
		bv, ok := b.(*Set)
		return ok && setSubset(av, bv) && setSubset(bv, av)
	case *Record:
		bv, ok := b.(*Record)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, f := range av.Fields() {
			bval, found := bv.GetField(f.Name)
			if !found || !ValuesEqual(f.Value, bval) {
				return false
			}
		}
		return true
	case *Deque:
		bv, ok := b.(*Deque)
		if !ok {
			return false
		}
		ai, bi := av.Items(), bv.Items()
		if len(ai) != len(bi) {
			return false
		}
		for i := range ai {
			if !ValuesEqual(ai[i], bi[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func setSubset(a, b *Set) bool {
	for _, e := range a.Items() {
		if !b.Has(e) {
			return false
		}
	}
	return true
}

// Equal and NotEqual are the exported `equal`/`not_equal` operations.
func Equal(a, b Value) Value    { return ValuesEqual(a, b) }
func NotEqual(a, b Value) Value { return !ValuesEqual(a, b) }

// compareOrder defines total order only for numeric-vs-numeric (spec
// §4.4) and Str-vs-Str (lexicographic by code point, which byte-wise Go
// string comparison already gives for valid UTF-8).
func compareOrder(a, b Value) (int, error) {
	if isNumeric(a) && isNumeric(b) {
		af, bf := numericOf(a), numericOf(b)
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok2 := b.(string); ok2 {
			switch {
			case as < bs:
				return -1, nil
			case as > bs:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	return 0, rterrors.Newf(rterrors.TypeMismatch, "compare", "cannot order %s and %s", TypeName(a), TypeName(b))
}

func LessThan(a, b Value) (Value, error) {
	c, err := compareOrder(a, b)
	if err != nil {
		return nil, err
	}
	return c < 0, nil
}

func LessOrEqual(a, b Value) (Value, error) {
	c, err := compareOrder(a, b)
	if err != nil {
		return nil, err
	}
	return c <= 0, nil
}

func GreaterThan(a, b Value) (Value, error) {
	c, err := compareOrder(a, b)
	if err != nil {
		return nil, err
	}
	return c > 0, nil
}

func GreaterOrEqual(a, b Value) (Value, error) {
	c, err := compareOrder(a, b)
	if err != nil {
		return nil, err
	}
	return c >= 0, nil
}
