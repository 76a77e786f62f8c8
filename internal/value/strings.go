package value

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"coreil/internal/rterrors"
)

var upperCaser = cases.Upper(language.Und)
var lowerCaser = cases.Lower(language.Und)

// Length is the string-specific alias of ArrayLength exposed under the
// `length` operation name.
func Length(v Value) (int64, error) { return ArrayLength(v) }

// Substring is the string-specific alias of ArraySlice.
func Substring(s string, start, end int64) string {
	runes := []rune(s)
	i, j := ResolveSlice(len(runes), start, end)
	return string(runes[i:j])
}

// CharAt returns the code point at idx as a single-character string.
func CharAt(s string, idx int64) (string, error) {
	v, err := ArrayIndex(s, idx)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Join renders each element via Display (strings unquoted) and joins
// with sep.
func Join(sep string, arr *Array) string {
	parts := make([]string, len(arr.Elements))
	for i, e := range arr.Elements {
		parts[i] = Display(e)
	}
	return strings.Join(parts, sep)
}

// Split returns every piece between delimiter occurrences, including
// empty pieces at the edges. Empty-delimiter behavior is unspecified by
// the reference semantics and is not guaranteed here beyond not crashing.
func Split(s, d string) *Array {
	parts := strings.Split(s, d)
	elems := make([]Value, len(parts))
	for i, p := range parts {
		elems[i] = p
	}
	return &Array{Elements: elems}
}

// Trim removes leading and trailing whitespace per the host platform's
// whitespace predicate (unicode.IsSpace, via strings.TrimSpace).
func Trim(s string) string { return strings.TrimSpace(s) }

// Upper and Lower use golang.org/x/text/cases with language.Und, which
// applies Unicode full case mappings: a rune may map to several runes
// (Upper("ß") is "SS"), so the result is not the one-rune-per-rune
// simple mapping.
func Upper(s string) string { return upperCaser.String(s) }
func Lower(s string) string { return lowerCaser.String(s) }

func StartsWith(s, prefix string) bool { return strings.HasPrefix(s, prefix) }
func EndsWith(s, suffix string) bool   { return strings.HasSuffix(s, suffix) }
func Contains(s, sub string) bool      { return strings.Contains(s, sub) }
func Replace(s, old, new string) string {
	return strings.ReplaceAll(s, old, new)
}

// mustString rejects non-string operands for string-only operations with
// a TypeMismatch error.
func mustString(op string, v Value) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", rterrors.Newf(rterrors.TypeMismatch, op, "expected str, got %s", TypeName(v))
	}
	return s, nil
}
