package value

import (
	"math"

	"coreil/internal/rterrors"
)

// Add implements spec §4.4's `add`: string concatenation when either
// operand is a Str (using Display of the other operand), fresh-handle
// array concatenation when both are Array, otherwise numeric promotion.
func Add(a, b Value) (Value, error) {
	if as, ok := a.(string); ok {
		return as + Display(b), nil
	}
	if bs, ok := b.(string); ok {
		return Display(a) + bs, nil
	}
	if aa, ok := a.(*Array); ok {
		if ba, ok := b.(*Array); ok {
			elems := make([]Value, 0, len(aa.Elements)+len(ba.Elements))
			elems = append(elems, aa.Elements...)
			elems = append(elems, ba.Elements...)
			return &Array{Elements: elems}, nil
		}
	}
	if !isNumeric(a) || !isNumeric(b) {
		return nil, rterrors.Newf(rterrors.TypeMismatch, "add", "unsupported operand types %s and %s", TypeName(a), TypeName(b))
	}
	if isIntKind(a) && isIntKind(b) {
		return intOf(a) + intOf(b), nil
	}
	return numericOf(a) + numericOf(b), nil
}

// Subtract is numeric only: Int/Int stays Int, otherwise promotes to Float.
func Subtract(a, b Value) (Value, error) {
	if !isNumeric(a) || !isNumeric(b) {
		return nil, rterrors.Newf(rterrors.TypeMismatch, "subtract", "unsupported operand types %s and %s", TypeName(a), TypeName(b))
	}
	if isIntKind(a) && isIntKind(b) {
		return intOf(a) - intOf(b), nil
	}
	return numericOf(a) - numericOf(b), nil
}

// Multiply handles Str × Int repetition (either order; a non-positive
// count yields the empty string) and otherwise numeric promotion.
func Multiply(a, b Value) (Value, error) {
	if as, ok := a.(string); ok {
		if isIntKind(b) {
			return repeatString(as, intOf(b)), nil
		}
	}
	if bs, ok := b.(string); ok {
		if isIntKind(a) {
			return repeatString(bs, intOf(a)), nil
		}
	}
	if !isNumeric(a) || !isNumeric(b) {
		return nil, rterrors.Newf(rterrors.TypeMismatch, "multiply", "unsupported operand types %s and %s", TypeName(a), TypeName(b))
	}
	if isIntKind(a) && isIntKind(b) {
		return intOf(a) * intOf(b), nil
	}
	return numericOf(a) * numericOf(b), nil
}

func repeatString(s string, n int64) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, len(s)*int(n))
	for i := int64(0); i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

// Divide always returns Float (spec §4.4: `/`).
func Divide(a, b Value) (Value, error) {
	if !isNumeric(a) || !isNumeric(b) {
		return nil, rterrors.Newf(rterrors.TypeMismatch, "divide", "unsupported operand types %s and %s", TypeName(a), TypeName(b))
	}
	bf := numericOf(b)
	if bf == 0 {
		return nil, rterrors.New(rterrors.DivisionByZero, "divide", "division by zero")
	}
	return numericOf(a) / bf, nil
}

// FloorDivide computes floor(a/b); Int/Int stays Int with the sign of
// the result following the divisor (Euclidean floor division).
func FloorDivide(a, b Value) (Value, error) {
	if !isNumeric(a) || !isNumeric(b) {
		return nil, rterrors.Newf(rterrors.TypeMismatch, "floor_divide", "unsupported operand types %s and %s", TypeName(a), TypeName(b))
	}
	if isIntKind(a) && isIntKind(b) {
		bi := intOf(b)
		if bi == 0 {
			return nil, rterrors.New(rterrors.DivisionByZero, "floor_divide", "division by zero")
		}
		return floorDivInt(intOf(a), bi), nil
	}
	bf := numericOf(b)
	if bf == 0 {
		return nil, rterrors.New(rterrors.DivisionByZero, "floor_divide", "division by zero")
	}
	return math.Floor(numericOf(a) / bf), nil
}

func floorDivInt(a, b int64) int64 {
	q := a / b
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}

// Modulo computes the Euclidean remainder (result has the sign of the
// divisor) for Int/Int, otherwise a − floor(a/b)·b.
func Modulo(a, b Value) (Value, error) {
	if !isNumeric(a) || !isNumeric(b) {
		return nil, rterrors.Newf(rterrors.TypeMismatch, "modulo", "unsupported operand types %s and %s", TypeName(a), TypeName(b))
	}
	if isIntKind(a) && isIntKind(b) {
		bi := intOf(b)
		if bi == 0 {
			return nil, rterrors.New(rterrors.DivisionByZero, "modulo", "division by zero")
		}
		return euclidMod(intOf(a), bi), nil
	}
	bf := numericOf(b)
	if bf == 0 {
		return nil, rterrors.New(rterrors.DivisionByZero, "modulo", "division by zero")
	}
	af := numericOf(a)
	return af - math.Floor(af/bf)*bf, nil
}

func euclidMod(a, b int64) int64 {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// Power: Int/Int with a non-negative exponent stays Int; a negative
// exponent or any Float operand promotes to Float via math.Pow.
func Power(a, b Value) (Value, error) {
	if !isNumeric(a) || !isNumeric(b) {
		return nil, rterrors.Newf(rterrors.TypeMismatch, "power", "unsupported operand types %s and %s", TypeName(a), TypeName(b))
	}
	if isIntKind(a) && isIntKind(b) {
		exp := intOf(b)
		if exp >= 0 {
			return intPow(intOf(a), exp), nil
		}
		return math.Pow(numericOf(a), numericOf(b)), nil
	}
	return math.Pow(numericOf(a), numericOf(b)), nil
}

func intPow(base, exp int64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
