package runtime

import (
	"coreil/internal/rterrors"
	"coreil/internal/value"
)

func (r *Registry) registerContainers() {
	r.register("make_array", 1, func(a []value.Value) (value.Value, error) {
		items, err := asArray("make_array", a[0])
		if err != nil {
			return nil, err
		}
		return value.MakeArray(items.Elements), nil
	})
	r.register("array_index", 2, func(a []value.Value) (value.Value, error) {
		idx, err := asIndex("array_index", a[1])
		if err != nil {
			return nil, err
		}
		return value.ArrayIndex(a[0], idx)
	})
	r.register("array_set_index", 3, func(a []value.Value) (value.Value, error) {
		idx, err := asIndex("array_set_index", a[1])
		if err != nil {
			return nil, err
		}
		if err := value.ArraySetIndex(a[0], idx, a[2]); err != nil {
			return nil, err
		}
		return value.NoneValue, nil
	})
	r.register("array_push", 2, func(a []value.Value) (value.Value, error) {
		if err := value.ArrayPush(a[0], a[1]); err != nil {
			return nil, err
		}
		return value.NoneValue, nil
	})
	r.register("array_length", 1, func(a []value.Value) (value.Value, error) {
		n, err := value.ArrayLength(a[0])
		return n, err
	})
	r.register("array_slice", 3, func(a []value.Value) (value.Value, error) {
		start, err := asIndex("array_slice", a[1])
		if err != nil {
			return nil, err
		}
		end, err := asIndex("array_slice", a[2])
		if err != nil {
			return nil, err
		}
		return value.ArraySlice(a[0], start, end)
	})

	r.register("make_tuple", 1, func(a []value.Value) (value.Value, error) {
		items, err := asArray("make_tuple", a[0])
		if err != nil {
			return nil, err
		}
		return value.MakeTuple(items.Elements), nil
	})

	r.register("make_map", 1, func(a []value.Value) (value.Value, error) {
		pairs, err := asPairArray("make_map", a[0])
		if err != nil {
			return nil, err
		}
		return value.MakeMap(pairs), nil
	})
	r.register("map_set", 3, func(a []value.Value) (value.Value, error) {
		m, err := asMap("map_set", a[0])
		if err != nil {
			return nil, err
		}
		m.Set(a[1], a[2])
		return value.NoneValue, nil
	})
	r.register("map_get", 2, func(a []value.Value) (value.Value, error) {
		m, err := asMap("map_get", a[0])
		if err != nil {
			return nil, err
		}
		return value.MapGet(m, a[1])
	})
	r.register("map_get_default", 3, func(a []value.Value) (value.Value, error) {
		m, err := asMap("map_get_default", a[0])
		if err != nil {
			return nil, err
		}
		return value.MapGetDefault(m, a[1], a[2]), nil
	})
	r.register("map_keys", 1, func(a []value.Value) (value.Value, error) {
		m, err := asMap("map_keys", a[0])
		if err != nil {
			return nil, err
		}
		return m.Keys(), nil
	})
	r.register("map_contains", 2, func(a []value.Value) (value.Value, error) {
		m, err := asMap("map_contains", a[0])
		if err != nil {
			return nil, err
		}
		return m.Contains(a[1]), nil
	})

	r.register("make_set", 1, func(a []value.Value) (value.Value, error) {
		items, err := asArray("make_set", a[0])
		if err != nil {
			return nil, err
		}
		return value.MakeSet(items.Elements), nil
	})
	r.register("set_has", 2, func(a []value.Value) (value.Value, error) {
		s, err := asSet("set_has", a[0])
		if err != nil {
			return nil, err
		}
		return s.Has(a[1]), nil
	})
	r.register("set_add", 2, func(a []value.Value) (value.Value, error) {
		s, err := asSet("set_add", a[0])
		if err != nil {
			return nil, err
		}
		s.Add(a[1])
		return value.NoneValue, nil
	})
	r.register("set_remove", 2, func(a []value.Value) (value.Value, error) {
		s, err := asSet("set_remove", a[0])
		if err != nil {
			return nil, err
		}
		return s.Remove(a[1]), nil
	})
	r.register("set_size", 1, func(a []value.Value) (value.Value, error) {
		s, err := asSet("set_size", a[0])
		if err != nil {
			return nil, err
		}
		return int64(s.Len()), nil
	})

	r.register("make_record", 1, func(a []value.Value) (value.Value, error) {
		fields, err := asFieldArray("make_record", a[0])
		if err != nil {
			return nil, err
		}
		return value.MakeRecord(fields), nil
	})
	r.register("get_field", 2, func(a []value.Value) (value.Value, error) {
		rec, err := asRecord("get_field", a[0])
		if err != nil {
			return nil, err
		}
		name, err := asName("get_field", a[1])
		if err != nil {
			return nil, err
		}
		return value.GetFieldOrFail(rec, name)
	})
	r.register("set_field", 3, func(a []value.Value) (value.Value, error) {
		rec, err := asRecord("set_field", a[0])
		if err != nil {
			return nil, err
		}
		name, err := asName("set_field", a[1])
		if err != nil {
			return nil, err
		}
		rec.SetField(name, a[2])
		return value.NoneValue, nil
	})

	r.register("deque_new", 0, func(a []value.Value) (value.Value, error) {
		return value.NewDeque(), nil
	})
	r.register("push_back", 2, func(a []value.Value) (value.Value, error) {
		d, err := asDeque("push_back", a[0])
		if err != nil {
			return nil, err
		}
		d.PushBack(a[1])
		return value.NoneValue, nil
	})
	r.register("push_front", 2, func(a []value.Value) (value.Value, error) {
		d, err := asDeque("push_front", a[0])
		if err != nil {
			return nil, err
		}
		d.PushFront(a[1])
		return value.NoneValue, nil
	})
	r.register("pop_front", 1, func(a []value.Value) (value.Value, error) {
		d, err := asDeque("pop_front", a[0])
		if err != nil {
			return nil, err
		}
		return d.PopFront()
	})
	r.register("pop_back", 1, func(a []value.Value) (value.Value, error) {
		d, err := asDeque("pop_back", a[0])
		if err != nil {
			return nil, err
		}
		return d.PopBack()
	})
	r.register("size", 1, func(a []value.Value) (value.Value, error) {
		switch t := a[0].(type) {
		case *value.Deque:
			return int64(t.Len()), nil
		case *value.Heap:
			return int64(t.Len()), nil
		default:
			return nil, rterrors.Newf(rterrors.TypeMismatch, "size", "%s has no size", value.TypeName(a[0]))
		}
	})

	r.register("heap_new", 0, func(a []value.Value) (value.Value, error) {
		return value.NewHeap(), nil
	})
	r.register("heap_push", 3, func(a []value.Value) (value.Value, error) {
		h, err := asHeap("heap_push", a[0])
		if err != nil {
			return nil, err
		}
		priority, err := asPriority("heap_push", a[1])
		if err != nil {
			return nil, err
		}
		h.Push(priority, a[2])
		return value.NoneValue, nil
	})
	r.register("heap_pop", 1, func(a []value.Value) (value.Value, error) {
		h, err := asHeap("heap_pop", a[0])
		if err != nil {
			return nil, err
		}
		return h.Pop()
	})
	r.register("heap_peek", 1, func(a []value.Value) (value.Value, error) {
		h, err := asHeap("heap_peek", a[0])
		if err != nil {
			return nil, err
		}
		return h.Peek()
	})
	r.register("heap_size", 1, func(a []value.Value) (value.Value, error) {
		h, err := asHeap("heap_size", a[0])
		if err != nil {
			return nil, err
		}
		return int64(h.Len()), nil
	})

	r.register("make_range", 3, func(a []value.Value) (value.Value, error) {
		from, err := asIndex("make_range", a[0])
		if err != nil {
			return nil, err
		}
		to, err := asIndex("make_range", a[1])
		if err != nil {
			return nil, err
		}
		return value.MakeRange(from, to, value.IsTruthy(a[2]))
	})
	r.register("make_range_step", 4, func(a []value.Value) (value.Value, error) {
		from, err := asIndex("make_range_step", a[0])
		if err != nil {
			return nil, err
		}
		to, err := asIndex("make_range_step", a[1])
		if err != nil {
			return nil, err
		}
		step, err := asIndex("make_range_step", a[2])
		if err != nil {
			return nil, err
		}
		return value.MakeRangeStep(from, to, step, value.IsTruthy(a[3]))
	})
}

func asArray(op string, v value.Value) (*value.Array, error) {
	arr, ok := v.(*value.Array)
	if !ok {
		return nil, rterrors.Newf(rterrors.TypeMismatch, op, "expected array, got %s", value.TypeName(v))
	}
	return arr, nil
}

func asMap(op string, v value.Value) (*value.Map, error) {
	m, ok := v.(*value.Map)
	if !ok {
		return nil, rterrors.Newf(rterrors.TypeMismatch, op, "expected map, got %s", value.TypeName(v))
	}
	return m, nil
}

func asSet(op string, v value.Value) (*value.Set, error) {
	s, ok := v.(*value.Set)
	if !ok {
		return nil, rterrors.Newf(rterrors.TypeMismatch, op, "expected set, got %s", value.TypeName(v))
	}
	return s, nil
}

func asRecord(op string, v value.Value) (*value.Record, error) {
	rec, ok := v.(*value.Record)
	if !ok {
		return nil, rterrors.Newf(rterrors.TypeMismatch, op, "expected record, got %s", value.TypeName(v))
	}
	return rec, nil
}

func asDeque(op string, v value.Value) (*value.Deque, error) {
	d, ok := v.(*value.Deque)
	if !ok {
		return nil, rterrors.Newf(rterrors.TypeMismatch, op, "expected deque, got %s", value.TypeName(v))
	}
	return d, nil
}

func asHeap(op string, v value.Value) (*value.Heap, error) {
	h, ok := v.(*value.Heap)
	if !ok {
		return nil, rterrors.Newf(rterrors.TypeMismatch, op, "expected heap, got %s", value.TypeName(v))
	}
	return h, nil
}

func asName(op string, v value.Value) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", rterrors.Newf(rterrors.TypeMismatch, op, "expected str field name, got %s", value.TypeName(v))
	}
	return s, nil
}

func asPriority(op string, v value.Value) (float64, error) {
	switch t := v.(type) {
	case int64:
		return float64(t), nil
	case float64:
		return t, nil
	default:
		return 0, rterrors.Newf(rterrors.TypeMismatch, op, "expected numeric priority, got %s", value.TypeName(v))
	}
}

// asPairArray reads `make_map`'s argument: an Array of 2-element
// Tuple/Array pairs, in the order they should be inserted.
func asPairArray(op string, v value.Value) ([]value.Pair, error) {
	arr, err := asArray(op, v)
	if err != nil {
		return nil, err
	}
	pairs := make([]value.Pair, 0, len(arr.Elements))
	for _, e := range arr.Elements {
		k, val, err := asPairElements(op, e)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, value.Pair{Key: k, Value: val})
	}
	return pairs, nil
}

func asPairElements(op string, v value.Value) (value.Value, value.Value, error) {
	switch t := v.(type) {
	case *value.Tuple:
		if len(t.Elements) != 2 {
			return nil, nil, rterrors.Newf(rterrors.TypeMismatch, op, "expected a 2-element pair, got %d elements", len(t.Elements))
		}
		return t.Elements[0], t.Elements[1], nil
	case *value.Array:
		if len(t.Elements) != 2 {
			return nil, nil, rterrors.Newf(rterrors.TypeMismatch, op, "expected a 2-element pair, got %d elements", len(t.Elements))
		}
		return t.Elements[0], t.Elements[1], nil
	default:
		return nil, nil, rterrors.Newf(rterrors.TypeMismatch, op, "expected a pair, got %s", value.TypeName(v))
	}
}

// asFieldArray reads `make_record`'s argument: an Array of 2-element
// (name, value) pairs where the name is a Str.
func asFieldArray(op string, v value.Value) ([]value.Field, error) {
	arr, err := asArray(op, v)
	if err != nil {
		return nil, err
	}
	fields := make([]value.Field, 0, len(arr.Elements))
	for _, e := range arr.Elements {
		k, val, err := asPairElements(op, e)
		if err != nil {
			return nil, err
		}
		name, err := asName(op, k)
		if err != nil {
			return nil, err
		}
		fields = append(fields, value.Field{Name: name, Value: val})
	}
	return fields, nil
}
