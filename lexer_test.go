package kaki

import (
	"testing"

	"github.com/go-test/deep"
)

type lexCase struct {
	name  string
	input string
	want  []Token
}

func runLexCase(t *testing.T, tc lexCase) {
	t.Helper()
	lx := New(tc.input)
	var got []Token
	for {
		tok, lexErr, ok := lx.Next()
		if !ok {
			break
		}
		if lexErr != nil {
			t.Fatalf("%s: unexpected error %s: %s", tc.name, lexErr.Kind, lexErr.Error())
		}
		got = append(got, *tok)
	}
	if diff := deep.Equal(tc.want, got); diff != nil {
		t.Errorf("%s: mismatch:\n%v", tc.name, diff)
	}
}

func TestLexerScenarios(t *testing.T) {
	cases := []lexCase{
		{
			name:  "empty input yields nothing",
			input: "",
			want:  nil,
		},
		{
			name:  "lower name",
			input: "foo_bar",
			want:  []Token{{Text: "foo_bar", Kind: NameLower, Span: Span{0, 7}}},
		},
		{
			name:  "upper name",
			input: "Foo",
			want:  []Token{{Text: "Foo", Kind: NameUpper, Span: Span{0, 3}}},
		},
		{
			name:  "lone underscore",
			input: "_",
			want:  []Token{{Text: "_", Kind: NameUnderscore, Span: Span{0, 1}}},
		},
		{
			name:  "bare digit run is a number, not an anonymous name",
			input: "42",
			want:  []Token{{Text: "42", Kind: IntDec, Span: Span{0, 2}}},
		},
		{
			name:  "anonymous name needs a leading underscore",
			input: "_42",
			want:  []Token{{Text: "_42", Kind: NameAnon, Span: Span{0, 3}}},
		},
		{
			name:  "decimal integer",
			input: "123_456",
			want:  []Token{{Text: "123_456", Kind: IntDec, Span: Span{0, 7}}},
		},
		{
			name:  "hex integer",
			input: "0x1F_FF",
			want:  []Token{{Text: "0x1F_FF", Kind: IntHex, Span: Span{0, 7}}},
		},
		{
			name:  "float with exponent",
			input: "1.5e-3",
			want:  []Token{{Text: "1.5e-3", Kind: Float, Span: Span{0, 6}}},
		},
		{
			name:  "float without exponent stays plain decimal without fraction digits",
			input: "1.",
			want: []Token{
				{Text: "1", Kind: IntDec, Span: Span{0, 1}},
				{Text: ".", Kind: Dot, Span: Span{1, 2}},
			},
		},
		{
			name:  "single line string with escaped quote",
			input: `"a\"b"`,
			want:  []Token{{Text: `"a\"b"`, Kind: StringSingle, Span: Span{0, 6}}},
		},
		{
			name:  "nested block comment",
			input: "#[[ a #[[ b ]] c ]]",
			want:  []Token{{Text: "#[[ a #[[ b ]] c ]]", Kind: CommentBlock, Span: Span{0, 19}}},
		},
		{
			name:  "line comment runs to newline",
			input: "# hi\nx",
			want: []Token{
				{Text: "# hi", Kind: CommentLine, Span: Span{0, 4}},
				{Text: "\n", Kind: NewLine, Span: Span{4, 5}},
				{Text: "x", Kind: NameLower, Span: Span{5, 6}},
			},
		},
		{
			name:  "longest operator match wins",
			input: "<=>",
			want:  []Token{{Text: "<=>", Kind: LtEqGt, Span: Span{0, 3}}},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			runLexCase(t, tc)
		})
	}
}

func TestLexerIncompleteBlockComment(t *testing.T) {
	lx := New("#[[ unterminated")
	tok, lexErr, ok := lx.Next()
	if !ok || tok != nil || lexErr == nil {
		t.Fatalf("got tok=%v lexErr=%v ok=%v", tok, lexErr, ok)
	}
	if lexErr.Kind != Incomplete {
		t.Errorf("kind = %s, want Incomplete", lexErr.Kind)
	}
	if lexErr.TokenKind == nil || *lexErr.TokenKind != CommentBlock {
		t.Errorf("token_kind = %v, want CommentBlock", lexErr.TokenKind)
	}
}

func TestLexerInvalidNames(t *testing.T) {
	cases := []struct {
		input     string
		tokenKind Kind
	}{
		{"fooBar", NameLower},
		{"Foo!", NameUpper},
	}
	for _, tc := range cases {
		lx := New(tc.input)
		tok, lexErr, ok := lx.Next()
		if !ok || tok != nil || lexErr == nil {
			t.Fatalf("%q: got tok=%v lexErr=%v ok=%v", tc.input, tok, lexErr, ok)
		}
		if lexErr.Kind != Invalid {
			t.Errorf("%q: kind = %s, want Invalid", tc.input, lexErr.Kind)
		}
		if lexErr.TokenKind == nil || *lexErr.TokenKind != tc.tokenKind {
			t.Errorf("%q: token_kind = %v, want %s", tc.input, lexErr.TokenKind, tc.tokenKind)
		}
		if lexErr.Text != tc.input {
			t.Errorf("%q: text = %q, want the whole input", tc.input, lexErr.Text)
		}
	}
}

func TestLexerUnknownSequenceCoalescing(t *testing.T) {
	lx := New("`!!`x")
	tok, lexErr, ok := lx.Next()
	if !ok || tok != nil || lexErr == nil {
		t.Fatalf("got tok=%v lexErr=%v ok=%v", tok, lexErr, ok)
	}
	if lexErr.Kind != UnknownSequence {
		t.Fatalf("kind = %s, want UnknownSequence", lexErr.Kind)
	}
	if lexErr.Text != "`" {
		t.Errorf("text = %q, want \"`\"", lexErr.Text)
	}

	tok, lexErr, ok = lx.Next()
	if !ok || lexErr != nil {
		t.Fatalf("second token: tok=%v lexErr=%v ok=%v", tok, lexErr, ok)
	}
	if tok.Kind != Bang {
		t.Errorf("second token kind = %s, want Bang", tok.Kind)
	}
}

func TestLexerGraphemeAccurateSpans(t *testing.T) {
	// e-with-acute here is a combining sequence (base e + combining
	// acute mark): one grapheme cluster, two runes, three bytes. A
	// correct span counts it as a single unit of length, not two.
	input := "\"" + "e\u0301" + "\""
	lx := New(input)
	tok, lexErr, ok := lx.Next()
	if !ok || lexErr != nil {
		t.Fatalf("tok=%v lexErr=%v ok=%v", tok, lexErr, ok)
	}
	if tok.Kind != StringSingle {
		t.Fatalf("kind = %s, want StringSingle", tok.Kind)
	}
	// opening quote + combining cluster + closing quote == 3 graphemes.
	if tok.Span.Len() != 3 {
		t.Errorf("span length = %d, want 3 graphemes", tok.Span.Len())
	}
}
