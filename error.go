package kaki

// ErrorKind classifies why a LexerError was produced.
type ErrorKind int

const (
	// Incomplete means a token's opener matched but its required
	// closer did not: an unterminated block comment or string, a
	// radix-prefixed integer with no digits, or a float exponent with
	// no digits.
	Incomplete ErrorKind = iota

	// Invalid means a token matched from opener to boundary, but its
	// interior violates a content rule: a lowercase name containing an
	// uppercase letter, an uppercase name with a "!"/"?" trailer, an
	// anonymous name with an alphabetic interior or trailer, or a
	// multi-underscore name.
	Invalid

	// UnknownSequence means no production matched the current prefix.
	// Consecutive unrecognized graphemes are coalesced into a single
	// UnknownSequence error; see Lexer.Next.
	UnknownSequence
)

var errorKindNames = map[ErrorKind]string{
	Incomplete:      "Incomplete",
	Invalid:         "Invalid",
	UnknownSequence: "UnknownSequence",
}

// String returns the error kind's label, e.g. "Incomplete".
func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "ErrorKind(unknown)"
}

// LexerError describes a lexical error: a span of source text that the
// lexer could not turn into a well-formed Token.
//
// LexerError is data on the output stream, not a Go error value.
// Next returns it as an ordinary return value alongside Token, rather
// than panicking or returning a Go error, so that a caller can keep
// tokenizing past a bad span and collect every error in a single pass.
// Error() only exists so LexerError also satisfies the error interface
// for callers that want to wrap or log it that way.
type LexerError struct {
	// Text is the source slice the error covers.
	Text string

	// Kind classifies the error.
	Kind ErrorKind

	// Span locates the error in the source.
	Span Span

	// TokenKind names the kind of token the lexer was attempting when
	// the error occurred, if known. It is nil for UnknownSequence,
	// which by definition never started a recognized production.
	TokenKind *Kind
}

// Error implements the error interface so a LexerError can be wrapped or
// logged like any other Go error, even though the lexer itself never
// returns one.
func (e *LexerError) Error() string {
	msg := e.Kind.String() + ": " + quoteText(e.Text)
	if e.TokenKind != nil {
		msg += " (in " + e.TokenKind.String() + ")"
	}
	return msg
}

func quoteText(s string) string {
	const maxLen = 40
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return "\"" + s + "\""
}
