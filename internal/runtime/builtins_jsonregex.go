package runtime

import (
	"coreil/internal/jsonval"
	"coreil/internal/regexvm"
	"coreil/internal/value"
)

func (r *Registry) registerJSONAndRegex() {
	r.register("parse", 1, func(a []value.Value) (value.Value, error) {
		s, err := asStr("parse", a[0])
		if err != nil {
			return nil, err
		}
		return jsonval.Parse(s)
	})
	r.register("stringify", 2, func(a []value.Value) (value.Value, error) {
		return jsonval.Stringify(a[0], value.IsTruthy(a[1])), nil
	})

	// The regex ops share names with the String-op table (`replace`,
	// `split`); a `regex_` prefix disambiguates them in this flat
	// registry (see DESIGN.md's Open Question resolution).
	r.register("regex_match", 3, func(a []value.Value) (value.Value, error) {
		s, pat, flags, err := asRegexArgs("regex_match", a)
		if err != nil {
			return nil, err
		}
		return regexvm.Match(s, pat, flags)
	})
	r.register("regex_find_all", 3, func(a []value.Value) (value.Value, error) {
		s, pat, flags, err := asRegexArgs("regex_find_all", a)
		if err != nil {
			return nil, err
		}
		matches, err := regexvm.FindAll(s, pat, flags)
		if err != nil {
			return nil, err
		}
		return stringsToArray(matches), nil
	})
	r.register("regex_replace", 4, func(a []value.Value) (value.Value, error) {
		s, pat, flags, err := asRegexArgs("regex_replace", a[:3])
		if err != nil {
			return nil, err
		}
		repl, err := asStr("regex_replace", a[3])
		if err != nil {
			return nil, err
		}
		return regexvm.Replace(s, pat, flags, repl)
	})
	r.register("regex_split", 3, func(a []value.Value) (value.Value, error) {
		s, pat, flags, err := asRegexArgs("regex_split", a)
		if err != nil {
			return nil, err
		}
		pieces, err := regexvm.Split(s, pat, flags)
		if err != nil {
			return nil, err
		}
		return stringsToArray(pieces), nil
	})
}

func asRegexArgs(op string, a []value.Value) (s, pattern, flags string, err error) {
	s, err = asStr(op, a[0])
	if err != nil {
		return
	}
	pattern, err = asStr(op, a[1])
	if err != nil {
		return
	}
	flags, err = asStr(op, a[2])
	return
}

func stringsToArray(items []string) *value.Array {
	elems := make([]value.Value, len(items))
	for i, s := range items {
		elems[i] = s
	}
	return &value.Array{Elements: elems}
}
