package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize produces the stable, tag-prefixed, length-framed encoding
// used as the index key inside ordered maps and sets (spec §4.2). It is
// injective over the hashable-in-reference cases: scalars, Tuple and Array
// serialize by content; Map, Set, Record, Deque and Heap serialize by
// handle identity since the reference semantics never allow those
// containers to be used as a key by value.
func Serialize(v Value) string {
	switch t := v.(type) {
	case None:
		return "N"
	case bool:
		if t {
			return "B1"
		}
		return "B0"
	case int64:
		return "I" + strconv.FormatInt(t, 10)
	case float64:
		return "F" + strconv.FormatFloat(t, 'f', 17, 64)
	case string:
		return "S" + strconv.Itoa(len(t)) + ":" + t
	case *Tuple:
		parts := make([]string, len(t.Elements))
		for i, e := range t.Elements {
			parts[i] = Serialize(e)
		}
		return "T(" + strings.Join(parts, ",") + ")"
	case *Array:
		parts := make([]string, len(t.Elements))
		for i, e := range t.Elements {
			parts[i] = Serialize(e)
		}
		return "A[" + strings.Join(parts, ",") + "]"
	case *Map:
		return "M@" + handleID(t)
	case *Set:
		return "E@" + handleID(t)
	case *Record:
		return "R@" + handleID(t)
	case *Deque:
		return "D@" + handleID(t)
	case *Heap:
		return "H@" + handleID(t)
	default:
		return fmt.Sprintf("?%v", v)
	}
}

func handleID(ptr interface{}) string {
	return fmt.Sprintf("%p", ptr)
}
