package regexvm

import (
	"strings"

	"coreil/internal/rterrors"
)

func compileFlags(pattern, flags string) (*Program, error) {
	ci := strings.Contains(flags, "i")
	prog, err := Compile(pattern, ci)
	if err != nil {
		return nil, rterrors.Wrap(rterrors.ParseFailure, "regex_compile", err)
	}
	return prog, nil
}

// Match is `regex_match`: true if pattern matches anywhere in input.
func Match(input, pattern, flags string) (bool, error) {
	prog, err := compileFlags(pattern, flags)
	if err != nil {
		return false, err
	}
	runes := []rune(input)
	_, _, ok := longestMatchFrom(prog, runes, 0)
	return ok, nil
}

// FindAll is `regex_find_all`: every non-overlapping match left to
// right; a zero-width match advances the scan by one code point so the
// search always makes progress.
func FindAll(input, pattern, flags string) ([]string, error) {
	prog, err := compileFlags(pattern, flags)
	if err != nil {
		return nil, err
	}
	runes := []rune(input)
	var out []string
	pos := 0
	for pos <= len(runes) {
		start, end, ok := longestMatchFrom(prog, runes, pos)
		if !ok {
			break
		}
		out = append(out, string(runes[start:end]))
		if end == start {
			pos = start + 1
		} else {
			pos = end
		}
	}
	return out, nil
}

// Replace is `regex_replace`: every non-overlapping match is substituted
// with the literal replacement string (no backreferences).
func Replace(input, pattern, flags, replacement string) (string, error) {
	prog, err := compileFlags(pattern, flags)
	if err != nil {
		return "", err
	}
	runes := []rune(input)
	var sb strings.Builder
	pos := 0
	for pos <= len(runes) {
		start, end, ok := longestMatchFrom(prog, runes, pos)
		if !ok {
			break
		}
		sb.WriteString(string(runes[pos:start]))
		sb.WriteString(replacement)
		if end == start {
			if start < len(runes) {
				sb.WriteRune(runes[start])
			}
			pos = start + 1
		} else {
			pos = end
		}
	}
	if pos < len(runes) {
		sb.WriteString(string(runes[pos:]))
	}
	return sb.String(), nil
}

// Split is `regex_split`: the pieces of input falling between match
// boundaries, in order; consecutive matches with nothing between them
// contribute an empty piece.
func Split(input, pattern, flags string) ([]string, error) {
	prog, err := compileFlags(pattern, flags)
	if err != nil {
		return nil, err
	}
	runes := []rune(input)
	var out []string
	pos := 0
	last := 0
	for pos <= len(runes) {
		start, end, ok := longestMatchFrom(prog, runes, pos)
		if !ok {
			break
		}
		out = append(out, string(runes[last:start]))
		last = end
		if end == start {
			pos = start + 1
		} else {
			pos = end
		}
	}
	out = append(out, string(runes[last:]))
	return out, nil
}
