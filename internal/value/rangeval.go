package value

import "coreil/internal/rterrors"

// MakeRange and MakeRangeStep materialize a sequence eagerly into an
// Array. The Value model (spec §3) has no dedicated Range variant —
// ranges are a generation recipe, not a storage shape — so the natural
// representation of "the sequence a range describes" is the same ordered
// Array every other sequence operation already works against; see
// DESIGN.md for this Open Question's resolution.
func MakeRange(from, to int64, inclusive bool) (*Array, error) {
	return MakeRangeStep(from, to, 1, inclusive)
}

func MakeRangeStep(from, to, step int64, inclusive bool) (*Array, error) {
	if step == 0 {
		return nil, rterrors.New(rterrors.Unsupported, "make_range_step", "step must not be zero")
	}
	elems := []Value{}
	if step > 0 {
		for i := from; (inclusive && i <= to) || (!inclusive && i < to); i += step {
			elems = append(elems, i)
		}
	} else {
		for i := from; (inclusive && i >= to) || (!inclusive && i > to); i += step {
			elems = append(elems, i)
		}
	}
	return &Array{Elements: elems}, nil
}
