package kaki

import "strconv"

// Kind classifies a Token. The enumeration is closed: every value a
// production can emit is listed here, and the three predicate functions
// below (IsWhitespace, IsWord, IsOpPunc) are total over it.
type Kind int

const (
	// Whitespace.

	// Space is a maximal run of ' ' and '\t'.
	Space Kind = iota
	// NewLine is a single "\n" or "\r\n" line break.
	NewLine

	// Comments.

	// CommentLine runs from '#' (not followed by "[[") to the next
	// newline or end of input, exclusive.
	CommentLine
	// CommentBlock runs from "#[[" to its matching, possibly nested,
	// "]]".
	CommentBlock

	// Names. All four are disjoint and keyword-blind: the lexer never
	// decides that a name is a reserved word, only that it matches one
	// of these four shapes.

	// NameLower matches [a-z][a-zA-Z_0-9]*[!?]?; an uppercase letter
	// after the first grapheme makes the lexeme Invalid instead.
	NameLower
	// NameUpper matches [A-Z][a-zA-Z_0-9]*.
	NameUpper
	// NameUnderscore is exactly one "_".
	NameUnderscore
	// NameAnon is a digit-led name scanned in name position, i.e. after
	// a leading underscore run, as in "_42". Any letter or underscore
	// after the leading digit, or a trailing "!"/"?", makes the lexeme
	// Invalid instead.
	NameAnon

	// Integers.

	// IntBin is a "0b" prefixed binary integer.
	IntBin
	// IntOct is a "0o" prefixed octal integer.
	IntOct
	// IntDec is a plain decimal integer.
	IntDec
	// IntHex is a "0x" prefixed hexadecimal integer.
	IntHex

	// Float is a decimal float with an optional fractional part and/or
	// exponent.
	Float

	// Strings.

	// StringSingle is a `"..."` string.
	StringSingle
	// StringMulti is a `"""..."""` string.
	StringMulti
	// StringSmart is an `@"""..."""` string.
	StringSmart

	// Punctuation / operators.

	Amp
	AmpAmp
	At
	AtAt
	AtBraceL
	Bang
	BangEq
	BracketL
	BracketR
	BraceL
	BraceR
	BackSlash
	Caret
	Colon
	ColonColon
	Comma
	Dot
	Eq
	EqEq
	Gt
	GtEq
	GtGt
	Lt
	LtEq
	LtEqGt
	LtLt
	Minus
	ParenL
	ParenR
	Percent
	Pipe
	PipePipe
	Plus
	Question
	QuestionEq
	Semicolon
	Slash
	SlashSlash
	Star
	StarStar
	Tilde
)

var kindNames = map[Kind]string{
	Space:          "Space",
	NewLine:        "NewLine",
	CommentLine:    "CommentLine",
	CommentBlock:   "CommentBlock",
	NameLower:      "NameLower",
	NameUpper:      "NameUpper",
	NameUnderscore: "NameUnderscore",
	NameAnon:       "NameAnon",
	IntBin:         "IntBin",
	IntOct:         "IntOct",
	IntDec:         "IntDec",
	IntHex:         "IntHex",
	Float:          "Float",
	StringSingle:   "StringSingle",
	StringMulti:    "StringMulti",
	StringSmart:    "StringSmart",
	Amp:            "Amp",
	AmpAmp:         "AmpAmp",
	At:             "At",
	AtAt:           "AtAt",
	AtBraceL:       "AtBraceL",
	Bang:           "Bang",
	BangEq:         "BangEq",
	BracketL:       "BracketL",
	BracketR:       "BracketR",
	BraceL:         "BraceL",
	BraceR:         "BraceR",
	BackSlash:      "BackSlash",
	Caret:          "Caret",
	Colon:          "Colon",
	ColonColon:     "ColonColon",
	Comma:          "Comma",
	Dot:            "Dot",
	Eq:             "Eq",
	EqEq:           "EqEq",
	Gt:             "Gt",
	GtEq:           "GtEq",
	GtGt:           "GtGt",
	Lt:             "Lt",
	LtEq:           "LtEq",
	LtEqGt:         "LtEqGt",
	LtLt:           "LtLt",
	Minus:          "Minus",
	ParenL:         "ParenL",
	ParenR:         "ParenR",
	Percent:        "Percent",
	Pipe:           "Pipe",
	PipePipe:       "PipePipe",
	Plus:           "Plus",
	Question:       "Question",
	QuestionEq:     "QuestionEq",
	Semicolon:      "Semicolon",
	Slash:          "Slash",
	SlashSlash:     "SlashSlash",
	Star:           "Star",
	StarStar:       "StarStar",
	Tilde:          "Tilde",
}

// String returns the kind's label, e.g. "NameLower". Unknown values
// (which should not occur, since the enum is closed) render as
// "Kind(<n>)".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsWhitespace reports whether k is Space or NewLine.
func (k Kind) IsWhitespace() bool {
	return k == Space || k == NewLine
}

// IsWord reports whether k is one of the four name kinds.
func (k Kind) IsWord() bool {
	switch k {
	case NameLower, NameUpper, NameUnderscore, NameAnon:
		return true
	default:
		return false
	}
}

// IsOpPunc reports whether k is punctuation or an operator.
//
// It excludes both whitespace and word kinds, keeping it disjoint from
// IsWhitespace and IsWord, which is what IsBoundary's definition
// requires: every Kind is at most one of whitespace, word, or op/punc.
// Comment, number, and string kinds are none of the three.
func (k Kind) IsOpPunc() bool {
	if k.IsWhitespace() || k.IsWord() {
		return false
	}
	switch k {
	case CommentLine, CommentBlock,
		IntBin, IntOct, IntDec, IntHex, Float,
		StringSingle, StringMulti, StringSmart:
		return false
	default:
		return true
	}
}

// IsBoundary reports whether k is whitespace or punctuation/an operator.
func (k Kind) IsBoundary() bool {
	return k.IsWhitespace() || k.IsOpPunc()
}

// Token is a classified lexeme: the text it covers, its Kind, and its
// Span. A Token borrows Text from the source it was lexed from; its
// lifetime must not exceed that source's.
type Token struct {
	// Text is the slice of the source exactly covering Span, in
	// grapheme units (and the corresponding byte range in the
	// underlying buffer).
	Text string

	// Kind classifies the token.
	Kind Kind

	// Span locates the token in the source.
	Span Span
}

