package regexvm

import (
	"reflect"
	"testing"
)

func TestFindAllSeedScenario(t *testing.T) {
	got, err := FindAll("a12b34c", `\d+`, "")
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	want := []string{"12", "34"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindAll = %v, want %v", got, want)
	}
}

func TestMatchAnywhere(t *testing.T) {
	ok, err := Match("hello world", "wor", "")
	if err != nil || !ok {
		t.Errorf("Match = %v, %v, want true", ok, err)
	}
	ok, err = Match("hello", "xyz", "")
	if err != nil || ok {
		t.Errorf("Match = %v, %v, want false", ok, err)
	}
}

func TestAnchors(t *testing.T) {
	ok, _ := Match("hello", "^hel", "")
	if !ok {
		t.Error("^hel should match start of hello")
	}
	ok, _ = Match("hello", "^ell", "")
	if ok {
		t.Error("^ell should not match hello")
	}
	ok, _ = Match("hello", "llo$", "")
	if !ok {
		t.Error("llo$ should match end of hello")
	}
}

func TestAlternationAndGroups(t *testing.T) {
	ok, _ := Match("cat", "cat|dog", "")
	if !ok {
		t.Error("cat|dog should match cat")
	}
	ok, _ = Match("abcabc", "(abc)+", "")
	if !ok {
		t.Error("(abc)+ should match abcabc")
	}
}

func TestQuantifiers(t *testing.T) {
	ok, _ := Match("aaa", "a*", "")
	if !ok {
		t.Error("a* should match aaa")
	}
	ok, _ = Match("", "a*", "")
	if !ok {
		t.Error("a* should match empty string")
	}
	ok, _ = Match("", "a+", "")
	if ok {
		t.Error("a+ should not match empty string")
	}
	ok, _ = Match("color", "colou?r", "")
	if !ok {
		t.Error("colou?r should match color")
	}
}

func TestCharacterClasses(t *testing.T) {
	ok, _ := Match("x9y", "[0-9]", "")
	if !ok {
		t.Error("[0-9] should match a digit in x9y")
	}
	ok, _ = Match("xyz", "[^0-9]+", "")
	if !ok {
		t.Error("[^0-9]+ should match non-digit run")
	}
	ok, _ = Match("hello world", `\w+\s\w+`, "")
	if !ok {
		t.Error(`\w+\s\w+ should match "hello world"`)
	}
}

func TestCaseInsensitiveFlag(t *testing.T) {
	ok, _ := Match("HELLO", "hello", "")
	if ok {
		t.Error("case-sensitive match should fail without the i flag")
	}
	ok, _ = Match("HELLO", "hello", "i")
	if !ok {
		t.Error("case-insensitive match should succeed with the i flag")
	}
}

func TestReplace(t *testing.T) {
	got, err := Replace("a1b2c3", `\d`, "", "#")
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if got != "a#b#c#" {
		t.Errorf("Replace = %q, want a#b#c#", got)
	}
}

func TestSplit(t *testing.T) {
	got, err := Split("a1b22c333d", `\d+`, "")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split = %v, want %v", got, want)
	}
}

func TestFindAllZeroWidthAdvances(t *testing.T) {
	got, err := FindAll("abc", "x*", "")
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	// x* matches the empty string at every position since there is no x.
	if len(got) != 4 {
		t.Errorf("FindAll(zero-width) returned %d matches, want 4, got %v", len(got), got)
	}
}

func TestLazyQuantifier(t *testing.T) {
	got, err := FindAll("<a><b>", "<.+?>", "")
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	want := []string{"<a>", "<b>"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lazy FindAll = %v, want %v", got, want)
	}
}

func TestLazyStarPrefersEmptyMatch(t *testing.T) {
	// Unlike greedy a* (which would swallow the whole run as one match),
	// lazy a*? prefers the empty alternative at every position, so it
	// behaves like the zero-width x* case: one empty match per position.
	got, err := FindAll("aaa", "a*?", "")
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(got) != 4 {
		t.Errorf("FindAll(lazy star) returned %d matches, want 4, got %v", len(got), got)
	}
	for _, m := range got {
		if m != "" {
			t.Errorf("FindAll(lazy star) = %v, want every match empty", got)
			break
		}
	}
}

func TestLazyOptPrefersSkipping(t *testing.T) {
	// Greedy ab? would match "ab" in full; lazy ab?? should skip the
	// optional 'b' and match just "a".
	got, err := FindAll("ab", "ab??", "")
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	want := []string{"a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindAll(lazy opt) = %v, want %v", got, want)
	}
}

func TestInvalidPatternFails(t *testing.T) {
	if _, err := Match("abc", "(abc", ""); err == nil {
		t.Error("unterminated group should fail to compile")
	}
	if _, err := Match("abc", "*abc", ""); err == nil {
		t.Error("leading quantifier with nothing to repeat should fail to compile")
	}
}
