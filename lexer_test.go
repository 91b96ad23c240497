package sml

import (
	"fmt"
	"testing"
)

// goString is unexported, so fmt never calls it; test failures print kinds
// by name through Kind.String.
func (k Kind) goString() string { return k.String() }

type testToken struct {
	Kind Kind
	Tag  ReservedTag
	Text string
}

func collect(src string) ([]testToken, *LexError) {
	res := Tokens(NewSourceString(src))
	got := make([]testToken, len(res.Tokens))
	for i, t := range res.Tokens {
		got[i] = testToken{t.Kind, t.Tag, t.Text()}
	}
	return got, res.Failure
}

func equalTokens(a, b []testToken) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokens(t *testing.T) {
	lexTests := []struct {
		in   string
		want []testToken
	}{
		{"", nil},
		{"   \t  ", nil},
		{"val x = 0", []testToken{
			{KindReserved, TagVal, "val"},
			{KindIdentifier, TagNone, "x"},
			{KindReserved, TagEqual, "="},
			{KindIntegerConstant, TagNone, "0"},
		}},
		{"0wx1A", []testToken{
			{KindWordConstant, TagNone, "0wx1A"},
		}},
		{"~0x10", []testToken{
			{KindIntegerConstant, TagNone, "~0x10"},
		}},
		{"0w", []testToken{
			{KindIntegerConstant, TagNone, "0"},
			{KindIdentifier, TagNone, "w"},
		}},
		{"Foo.bar", []testToken{
			{KindQualifier, TagNone, "Foo"},
			{KindIdentifier, TagNone, "bar"},
		}},
		{`"a\t\065\u00FFz"`, []testToken{
			{KindStringConstant, TagNone, `"a\t\065\u00FFz"`},
		}},
		{"(* outer (* inner *) still outer *) 1", []testToken{
			{KindComment, TagNone, "(* outer (* inner *) still outer *)"},
			{KindIntegerConstant, TagNone, "1"},
		}},
		{"1.0", []testToken{
			{KindRealConstant, TagNone, "1.0"},
		}},
		{"0wx1Ax", []testToken{
			{KindWordConstant, TagNone, "0wx1A"},
			{KindIdentifier, TagNone, "x"},
		}},
		{"~x", []testToken{
			{KindIdentifier, TagNone, "~"},
			{KindIdentifier, TagNone, "x"},
		}},
		{"( )", []testToken{
			{KindReserved, TagOpenParen, "("},
			{KindReserved, TagCloseParen, ")"},
		}},
		{"...", []testToken{
			{KindReserved, TagDotDotDot, "..."},
		}},
		{"fn x => x", []testToken{
			{KindReserved, TagFn, "fn"},
			{KindIdentifier, TagNone, "x"},
			{KindReserved, TagDoubleArrow, "=>"},
			{KindIdentifier, TagNone, "x"},
		}},
		{"'a list", []testToken{
			{KindIdentifier, TagNone, "'a"},
			{KindIdentifier, TagNone, "list"},
		}},
	}

	for _, tt := range lexTests {
		got, err := collect(tt.in)
		if err != nil {
			t.Errorf("lexing %q: unexpected failure: %v", tt.in, err)
			continue
		}
		if !equalTokens(got, tt.want) {
			t.Errorf("lexing %q:\n got  %v\n want %v", tt.in, got, tt.want)
		}
	}
}

func TestTokensFailure(t *testing.T) {
	lexTests := []struct {
		in      string
		wantErr string
		partial []testToken
	}{
		{"1.0E2", "real constants with exponents not supported yet", nil},
		{"Foo.val", "reserved word 'val' prefaced by qualifiers", []testToken{
			{KindQualifier, TagNone, "Foo"},
		}},
		{`"abc`, "unclosed string starting at 0", nil},
		{"'a.b", "structure identifiers cannot start with prime", nil},
		{"val.x", "reserved word 'val' cannot be used as qualifier", nil},
		{"(* unterminated", "unclosed comment starting at 0", nil},
		{".x", "unexpected '.'", nil},
		{"1.", "unexpected end of real constant", nil},
		{`"bad\q"`, "", nil}, // \q is not a recognized escape: silently not an escape
	}

	for _, tt := range lexTests {
		got, err := collect(tt.in)
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("lexing %q: unexpected failure: %v", tt.in, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("lexing %q: expected failure %q, got success", tt.in, tt.wantErr)
			continue
		}
		if err.Message != tt.wantErr {
			t.Errorf("lexing %q: got error %q, want %q", tt.in, err.Message, tt.wantErr)
		}
		if !equalTokens(got, tt.partial) {
			t.Errorf("lexing %q: partial tokens\n got  %v\n want %v", tt.in, got, tt.partial)
		}
	}
}

func TestTopLevelStarCloseParen(t *testing.T) {
	// Open Question in spec §9: `*)` outside a comment lexes as two
	// separate tokens rather than being treated specially.
	got, err := collect("*)")
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
	want := []testToken{
		{KindReserved, TagStar, "*"},
		{KindReserved, TagCloseParen, ")"},
	}
	if !equalTokens(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func ExampleTokens() {
	res := Tokens(NewSourceString("val x = 1"))
	for _, t := range res.Tokens {
		fmt.Println(t.Kind, t.Text())
	}
	// Output:
	// Reserved val
	// Identifier x
	// Reserved =
	// IntegerConstant 1
}
