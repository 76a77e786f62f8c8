package runtime

import (
	"coreil/internal/rterrors"
	"coreil/internal/value"
)

func (r *Registry) registerCore() {
	r.register("print", -1, func(args []value.Value) (value.Value, error) {
		if err := value.Print(r.out, args...); err != nil {
			return nil, rterrors.Wrap(rterrors.Unsupported, "print", err)
		}
		return value.NoneValue, nil
	})

	r.register("is_truthy", 1, func(a []value.Value) (value.Value, error) {
		return value.IsTruthy(a[0]), nil
	})
	r.register("logical_not", 1, func(a []value.Value) (value.Value, error) {
		return value.LogicalNot(a[0]), nil
	})

	r.register("to_int", 1, unary(value.ToInt))
	r.register("to_float", 1, unary(value.ToFloat))
	r.register("to_string", 1, func(a []value.Value) (value.Value, error) {
		return value.ToStringVal(a[0]), nil
	})
	r.register("to_bool", 1, func(a []value.Value) (value.Value, error) {
		return value.ToBool(a[0]), nil
	})
	r.register("as_int", 1, unary(value.AsInt))
	r.register("as_float", 1, unary(value.AsFloat))
	r.register("value_to_int", 1, unary(value.ValueToInt))
	r.register("value_to_float", 1, unary(value.ValueToFloat))

	r.register("is_none", 1, predicate(value.IsNone))
	r.register("is_int", 1, predicate(value.IsInt))
	r.register("is_float", 1, predicate(value.IsFloat))
	r.register("is_string", 1, predicate(value.IsString))
	r.register("is_bool", 1, predicate(value.IsBool))
	r.register("is_array", 1, predicate(value.IsArray))
	r.register("is_map", 1, predicate(value.IsMap))
	r.register("is_tuple", 1, predicate(value.IsTuple))
	r.register("is_set", 1, predicate(value.IsSet))
	r.register("is_record", 1, predicate(value.IsRecord))

	r.register("add", 2, binary(value.Add))
	r.register("subtract", 2, binary(value.Subtract))
	r.register("multiply", 2, binary(value.Multiply))
	r.register("divide", 2, binary(value.Divide))
	r.register("floor_divide", 2, binary(value.FloorDivide))
	r.register("modulo", 2, binary(value.Modulo))
	r.register("power", 2, binary(value.Power))

	r.register("equal", 2, func(a []value.Value) (value.Value, error) {
		return value.Equal(a[0], a[1]), nil
	})
	r.register("not_equal", 2, func(a []value.Value) (value.Value, error) {
		return value.NotEqual(a[0], a[1]), nil
	})
	r.register("less_than", 2, binary(value.LessThan))
	r.register("less_or_equal", 2, binary(value.LessOrEqual))
	r.register("greater_than", 2, binary(value.GreaterThan))
	r.register("greater_or_equal", 2, binary(value.GreaterOrEqual))
}

func unary(f func(value.Value) (value.Value, error)) func([]value.Value) (value.Value, error) {
	return func(a []value.Value) (value.Value, error) { return f(a[0]) }
}

func binary(f func(value.Value, value.Value) (value.Value, error)) func([]value.Value) (value.Value, error) {
	return func(a []value.Value) (value.Value, error) { return f(a[0], a[1]) }
}

func predicate(f func(value.Value) bool) func([]value.Value) (value.Value, error) {
	return func(a []value.Value) (value.Value, error) { return f(a[0]), nil }
}

// asIndex extracts the signed Int payload of an index argument, failing
// with a TypeMismatch if the caller passed anything else.
func asIndex(op string, v value.Value) (int64, error) {
	i, ok := v.(int64)
	if !ok {
		return 0, rterrors.Newf(rterrors.TypeMismatch, op, "expected int index, got %s", value.TypeName(v))
	}
	return i, nil
}
