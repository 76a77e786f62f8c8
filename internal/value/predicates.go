package value

// TypeName returns the reference-semantics type name for error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case None:
		return "None"
	case bool:
		return "bool"
	case int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "str"
	case *Array:
		return "array"
	case *Tuple:
		return "tuple"
	case *Map:
		return "map"
	case *Set:
		return "set"
	case *Record:
		return "record"
	case *Deque:
		return "deque"
	case *Heap:
		return "heap"
	default:
		return "unknown"
	}
}

func IsNone(v Value) bool    { _, ok := v.(None); return ok }
func IsBool(v Value) bool    { _, ok := v.(bool); return ok }
func IsInt(v Value) bool     { _, ok := v.(int64); return ok }
func IsFloat(v Value) bool   { _, ok := v.(float64); return ok }
func IsString(v Value) bool  { _, ok := v.(string); return ok }
func IsArray(v Value) bool   { _, ok := v.(*Array); return ok }
func IsTuple(v Value) bool   { _, ok := v.(*Tuple); return ok }
func IsMap(v Value) bool     { _, ok := v.(*Map); return ok }
func IsSet(v Value) bool     { _, ok := v.(*Set); return ok }
func IsRecord(v Value) bool  { _, ok := v.(*Record); return ok }
func IsDeque(v Value) bool   { _, ok := v.(*Deque); return ok }
func IsHeap(v Value) bool    { _, ok := v.(*Heap); return ok }

// isIntKind reports whether v participates in integer-kind promotion
// (spec §4.4: Int and Bool are both integer-kind).
func isIntKind(v Value) bool {
	return IsInt(v) || IsBool(v)
}

// isNumeric reports whether v is Int, Float or Bool.
func isNumeric(v Value) bool {
	return IsInt(v) || IsFloat(v) || IsBool(v)
}
