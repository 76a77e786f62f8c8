package value

import (
	"math"

	"coreil/internal/rterrors"
)

func numericArg(op string, v Value) (float64, error) {
	if !isNumeric(v) {
		return 0, rterrors.Newf(rterrors.TypeMismatch, op, "expected a number, got %s", TypeName(v))
	}
	return numericOf(v), nil
}

func MathSin(v Value) (Value, error) {
	f, err := numericArg("sin", v)
	if err != nil {
		return nil, err
	}
	return math.Sin(f), nil
}

func MathCos(v Value) (Value, error) {
	f, err := numericArg("cos", v)
	if err != nil {
		return nil, err
	}
	return math.Cos(f), nil
}

func MathTan(v Value) (Value, error) {
	f, err := numericArg("tan", v)
	if err != nil {
		return nil, err
	}
	return math.Tan(f), nil
}

func MathSqrt(v Value) (Value, error) {
	f, err := numericArg("sqrt", v)
	if err != nil {
		return nil, err
	}
	return math.Sqrt(f), nil
}

// MathFloor and MathCeil return Int, since both results are always
// integral.
func MathFloor(v Value) (Value, error) {
	f, err := numericArg("floor", v)
	if err != nil {
		return nil, err
	}
	return int64(math.Floor(f)), nil
}

func MathCeil(v Value) (Value, error) {
	f, err := numericArg("ceil", v)
	if err != nil {
		return nil, err
	}
	return int64(math.Ceil(f)), nil
}

// MathAbs preserves Int-ness for Int/Bool operands, Float-ness for Float.
func MathAbs(v Value) (Value, error) {
	switch t := v.(type) {
	case int64:
		if t < 0 {
			return -t, nil
		}
		return t, nil
	case bool:
		if t {
			return int64(1), nil
		}
		return int64(0), nil
	case float64:
		return math.Abs(t), nil
	default:
		return nil, rterrors.Newf(rterrors.TypeMismatch, "abs", "expected a number, got %s", TypeName(v))
	}
}

func MathLog(v Value) (Value, error) {
	f, err := numericArg("log", v)
	if err != nil {
		return nil, err
	}
	return math.Log(f), nil
}

func MathExp(v Value) (Value, error) {
	f, err := numericArg("exp", v)
	if err != nil {
		return nil, err
	}
	return math.Exp(f), nil
}

func MathPow(a, b Value) (Value, error) {
	return Power(a, b)
}

const MathPi = math.Pi
const MathE = math.E
