package runtime

import (
	"coreil/internal/rterrors"
	"coreil/internal/value"
)

func (r *Registry) registerStringsAndMath() {
	r.register("length", 1, func(a []value.Value) (value.Value, error) {
		n, err := value.Length(a[0])
		return n, err
	})
	r.register("substring", 3, func(a []value.Value) (value.Value, error) {
		s, err := asStr("substring", a[0])
		if err != nil {
			return nil, err
		}
		start, err := asIndex("substring", a[1])
		if err != nil {
			return nil, err
		}
		end, err := asIndex("substring", a[2])
		if err != nil {
			return nil, err
		}
		return value.Substring(s, start, end), nil
	})
	r.register("char_at", 2, func(a []value.Value) (value.Value, error) {
		s, err := asStr("char_at", a[0])
		if err != nil {
			return nil, err
		}
		idx, err := asIndex("char_at", a[1])
		if err != nil {
			return nil, err
		}
		return value.CharAt(s, idx)
	})
	r.register("join", 2, func(a []value.Value) (value.Value, error) {
		sep, err := asStr("join", a[0])
		if err != nil {
			return nil, err
		}
		arr, err := asArray("join", a[1])
		if err != nil {
			return nil, err
		}
		return value.Join(sep, arr), nil
	})
	r.register("split", 2, func(a []value.Value) (value.Value, error) {
		s, err := asStr("split", a[0])
		if err != nil {
			return nil, err
		}
		d, err := asStr("split", a[1])
		if err != nil {
			return nil, err
		}
		return value.Split(s, d), nil
	})
	r.register("trim", 1, func(a []value.Value) (value.Value, error) {
		s, err := asStr("trim", a[0])
		if err != nil {
			return nil, err
		}
		return value.Trim(s), nil
	})
	r.register("upper", 1, func(a []value.Value) (value.Value, error) {
		s, err := asStr("upper", a[0])
		if err != nil {
			return nil, err
		}
		return value.Upper(s), nil
	})
	r.register("lower", 1, func(a []value.Value) (value.Value, error) {
		s, err := asStr("lower", a[0])
		if err != nil {
			return nil, err
		}
		return value.Lower(s), nil
	})
	r.register("starts_with", 2, func(a []value.Value) (value.Value, error) {
		s, p, err := asStrPair("starts_with", a[0], a[1])
		if err != nil {
			return nil, err
		}
		return value.StartsWith(s, p), nil
	})
	r.register("ends_with", 2, func(a []value.Value) (value.Value, error) {
		s, p, err := asStrPair("ends_with", a[0], a[1])
		if err != nil {
			return nil, err
		}
		return value.EndsWith(s, p), nil
	})
	r.register("contains", 2, func(a []value.Value) (value.Value, error) {
		s, p, err := asStrPair("contains", a[0], a[1])
		if err != nil {
			return nil, err
		}
		return value.Contains(s, p), nil
	})
	r.register("replace", 3, func(a []value.Value) (value.Value, error) {
		s, old, err := asStrPair("replace", a[0], a[1])
		if err != nil {
			return nil, err
		}
		repl, err := asStr("replace", a[2])
		if err != nil {
			return nil, err
		}
		return value.Replace(s, old, repl), nil
	})

	r.register("sin", 1, unary(value.MathSin))
	r.register("cos", 1, unary(value.MathCos))
	r.register("tan", 1, unary(value.MathTan))
	r.register("sqrt", 1, unary(value.MathSqrt))
	r.register("floor", 1, unary(value.MathFloor))
	r.register("ceil", 1, unary(value.MathCeil))
	r.register("abs", 1, unary(value.MathAbs))
	r.register("log", 1, unary(value.MathLog))
	r.register("exp", 1, unary(value.MathExp))
	r.register("pow", 2, binary(value.MathPow))
	r.register("pi", 0, func(a []value.Value) (value.Value, error) {
		return value.MathPi, nil
	})
	r.register("e", 0, func(a []value.Value) (value.Value, error) {
		return value.MathE, nil
	})
}

func asStr(op string, v value.Value) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", rterrors.Newf(rterrors.TypeMismatch, op, "expected str, got %s", value.TypeName(v))
	}
	return s, nil
}

func asStrPair(op string, a, b value.Value) (string, string, error) {
	s, err := asStr(op, a)
	if err != nil {
		return "", "", err
	}
	p, err := asStr(op, b)
	if err != nil {
		return "", "", err
	}
	return s, p, nil
}
