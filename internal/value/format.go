package value

import (
	"math"
	"strconv"
	"strings"
)

// Display renders v the way a top-level print would: strings unquoted.
func Display(v Value) string { return render(v, false) }

// Repr renders v the way it appears nested inside a container: strings
// single-quoted, everything else identical to Display.
func Repr(v Value) string { return render(v, true) }

func render(v Value, repr bool) string {
	switch t := v.(type) {
	case None:
		return "None"
	case bool:
		if t {
			return "True"
		}
		return "False"
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return formatFloat(t)
	case string:
		if repr {
			return "'" + t + "'"
		}
		return t
	case *Array:
		parts := make([]string, len(t.Elements))
		for i, e := range t.Elements {
			parts[i] = render(e, true)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Tuple:
		if len(t.Elements) == 1 {
			return "(" + render(t.Elements[0], true) + ",)"
		}
		parts := make([]string, len(t.Elements))
		for i, e := range t.Elements {
			parts[i] = render(e, true)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case *Map:
		if t.Len() == 0 {
			return "{}"
		}
		parts := make([]string, 0, t.Len())
		for _, e := range t.Pairs() {
			parts = append(parts, render(e.Key, true)+": "+render(e.Value, true))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Set:
		if t.Len() == 0 {
			return "set()"
		}
		parts := make([]string, 0, t.Len())
		for _, e := range t.Items() {
			parts = append(parts, render(e, true))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Record:
		if t.Len() == 0 {
			return "{}"
		}
		parts := make([]string, 0, t.Len())
		for _, f := range t.Fields() {
			parts = append(parts, "'"+f.Name+"': "+render(f.Value, true))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Deque:
		items := t.Items()
		parts := make([]string, len(items))
		for i, e := range items {
			parts[i] = render(e, true)
		}
		return "deque([" + strings.Join(parts, ", ") + "])"
	case *Heap:
		return "<heap>"
	default:
		return ""
	}
}

// formatFloat implements spec §4.1/§9's float rendering: integral-valued
// finite floats under 1e15 in magnitude print through the integer path
// with a trailing ".0"; NaN/Inf get their literal spellings; everything
// else is the host's shortest round-trip decimal, widened with ".0" when
// the result otherwise looks like an integer.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if f == math.Floor(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 0, 64) + ".0"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
