package kaki

import "testing"

func TestLexerErrorImplementsError(t *testing.T) {
	var _ error = (*LexerError)(nil)
}

func TestLexerErrorMessageNamesTokenKind(t *testing.T) {
	e := &LexerError{Text: "abc", Kind: Incomplete, Span: NewSpan(0, 3), TokenKind: kindPtr(StringSingle)}
	got := e.Error()
	want := `Incomplete: "abc" (in StringSingle)`
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestQuoteTextTruncatesLongInput(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'x'
	}
	got := quoteText(string(long))
	if len(got) != 1+40+3+1 {
		t.Errorf("quoteText length = %d, want truncated form", len(got))
	}
}
