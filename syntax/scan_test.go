package syntax

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/nebula"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func tokTypes(tokens []Token) []TokType {
	types := make([]TokType, len(tokens))
	for i, t := range tokens {
		types[i] = t.Type
	}
	return types
}

func TestScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nebula.syntax")
	defer teardown()
	//
	var inputs = []struct {
		input string
		types []TokType
	}{
		{`x`, []TokType{Ident, EOF}},
		{`\x. x`, []TokType{Backslash, Ident, Dot, Ident, EOF}},
		{`(f 12)`, []TokType{LParen, Ident, Int, RParen, EOF}},
		{`-3 2.5 -0.5`, []TokType{Int, Double, Double, EOF}},
		{`"hello" 'c' true false`, []TokType{String, Char, Bool, Bool, EOF}},
		{`+ - * <= >= == < >`, []TokType{Ident, Ident, Ident, Ident, Ident, Ident, Ident, Ident, EOF}},
		{`if then else`, []TokType{Keyword, Keyword, Keyword, EOF}},
		{`x -- a comment`, []TokType{Ident, EOF}},
		{`[ ] , _ :: =`, []TokType{LBracket, RBracket, Comma, Underscore, DoubleColon, Eq, EOF}},
		{"", []TokType{EOF}},
	}
	for _, in := range inputs {
		tokens, err := Tokenize(in.input)
		if err != nil {
			t.Errorf("%q: %v", in.input, err)
			continue
		}
		if diff := cmp.Diff(in.types, tokTypes(tokens)); diff != "" {
			t.Errorf("%q: token types mismatch (-want +got):\n%s", in.input, diff)
		}
	}
}

func TestTokenValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nebula.syntax")
	defer teardown()
	//
	tokens, err := Tokenize(`-42 3.25 "abc" 'z' true foo`)
	if err != nil {
		t.Fatal(err)
	}
	want := []interface{}{int64(-42), 3.25, "abc", 'z', true, "foo"}
	for i, w := range want {
		if tokens[i].Value != w {
			t.Errorf("token #%d: expected value %v (%T), have %v (%T)", i, w, w, tokens[i].Value, tokens[i].Value)
		}
	}
}

func TestTokenLocations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nebula.syntax")
	defer teardown()
	//
	tokens, err := Tokenize("(f\n  x)")
	if err != nil {
		t.Fatal(err)
	}
	want := []nebula.Loc{{Line: 1, Col: 1}, {Line: 1, Col: 2}, {Line: 2, Col: 3}, {Line: 2, Col: 4}}
	for i, w := range want {
		if tokens[i].Loc != w {
			t.Errorf("token #%d %q: expected location %v, have %v", i, tokens[i].Lexeme, w, tokens[i].Loc)
		}
	}
}

func TestScannerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nebula.syntax")
	defer teardown()
	//
	for _, input := range []string{`"abc`, `1.2.3`, `#`, `'ab'`, `99999999999999999999`} {
		_, err := Tokenize(input)
		if err == nil {
			t.Errorf("expected %q to produce a scanner error", input)
			continue
		}
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("expected %q to produce a syntax error, have %v", input, err)
		}
		t.Logf("%q => %v", input, err)
	}
}
