package kaki

import (
	"github.com/google/uuid"
	"github.com/juju/loggo"
	"github.com/rivo/uniseg"
)

var lexerLogger = loggo.GetLogger("kaki.lexer")

// outcome is the result of attempting one production: either a Token, a
// LexerError, or nil meaning "this production did not match, try the
// next one". A non-nil outcome always carries exactly one of token or
// err.
type outcome struct {
	token *Token
	err   *LexerError
}

func tokenOutcome(kind Kind, text string, span Span) *outcome {
	return &outcome{token: &Token{Text: text, Kind: kind, Span: span}}
}

func errOutcome(kind ErrorKind, text string, span Span, tokenKind *Kind) *outcome {
	return &outcome{err: &LexerError{Text: text, Kind: kind, Span: span, TokenKind: tokenKind}}
}

func kindPtr(k Kind) *Kind { return &k }

// production is one of the lexer's per-kind recognizers. It returns nil
// when the current prefix does not belong to it, so the dispatcher can
// try the next one in order.
type production func(*Lexer) *outcome

// dispatch lists every production in priority order: space, newline,
// comment, name, number, string, then the operators and punctuation,
// with every multi-character operator ahead of its shorter prefixes.
// Ordering multi-character operators before their prefixes is what
// makes the scan greedy (e.g. "<=>" wins over "<=" wins over "<").
var dispatch = []production{
	(*Lexer).lexSpace,
	(*Lexer).lexNewLine,
	(*Lexer).lexComment,
	(*Lexer).lexName,
	(*Lexer).lexNumber,
	(*Lexer).lexString,
	func(l *Lexer) *outcome { return l.lexExact("&&", AmpAmp) },
	func(l *Lexer) *outcome { return l.lexExact("&", Amp) },
	func(l *Lexer) *outcome { return l.lexExact("@@", AtAt) },
	func(l *Lexer) *outcome { return l.lexExact("@{", AtBraceL) },
	func(l *Lexer) *outcome { return l.lexExact("@", At) },
	func(l *Lexer) *outcome { return l.lexExact("!=", BangEq) },
	func(l *Lexer) *outcome { return l.lexExact("!", Bang) },
	func(l *Lexer) *outcome { return l.lexExact("[", BracketL) },
	func(l *Lexer) *outcome { return l.lexExact("]", BracketR) },
	func(l *Lexer) *outcome { return l.lexExact("{", BraceL) },
	func(l *Lexer) *outcome { return l.lexExact("}", BraceR) },
	func(l *Lexer) *outcome { return l.lexExact("\\", BackSlash) },
	func(l *Lexer) *outcome { return l.lexExact("^", Caret) },
	func(l *Lexer) *outcome { return l.lexExact("::", ColonColon) },
	func(l *Lexer) *outcome { return l.lexExact(":", Colon) },
	func(l *Lexer) *outcome { return l.lexExact(",", Comma) },
	func(l *Lexer) *outcome { return l.lexExact(".", Dot) },
	func(l *Lexer) *outcome { return l.lexExact("==", EqEq) },
	func(l *Lexer) *outcome { return l.lexExact("=", Eq) },
	func(l *Lexer) *outcome { return l.lexExact(">=", GtEq) },
	func(l *Lexer) *outcome { return l.lexExact(">>", GtGt) },
	func(l *Lexer) *outcome { return l.lexExact(">", Gt) },
	func(l *Lexer) *outcome { return l.lexExact("<=>", LtEqGt) },
	func(l *Lexer) *outcome { return l.lexExact("<=", LtEq) },
	func(l *Lexer) *outcome { return l.lexExact("<<", LtLt) },
	func(l *Lexer) *outcome { return l.lexExact("<", Lt) },
	func(l *Lexer) *outcome { return l.lexExact("-", Minus) },
	func(l *Lexer) *outcome { return l.lexExact("(", ParenL) },
	func(l *Lexer) *outcome { return l.lexExact(")", ParenR) },
	func(l *Lexer) *outcome { return l.lexExact("%", Percent) },
	func(l *Lexer) *outcome { return l.lexExact("||", PipePipe) },
	func(l *Lexer) *outcome { return l.lexExact("|", Pipe) },
	func(l *Lexer) *outcome { return l.lexExact("+", Plus) },
	func(l *Lexer) *outcome { return l.lexExact("?=", QuestionEq) },
	func(l *Lexer) *outcome { return l.lexExact("?", Question) },
	func(l *Lexer) *outcome { return l.lexExact(";", Semicolon) },
	func(l *Lexer) *outcome { return l.lexExact("//", SlashSlash) },
	func(l *Lexer) *outcome { return l.lexExact("/", Slash) },
	func(l *Lexer) *outcome { return l.lexExact("**", StarStar) },
	func(l *Lexer) *outcome { return l.lexExact("*", Star) },
	func(l *Lexer) *outcome { return l.lexExact("~", Tilde) },
}

// Lexer is a stateful, single-threaded cursor over a source text. It
// advances grapheme cluster by grapheme cluster and emits one Token or
// LexerError per call to Next. A Lexer is not safe for concurrent calls;
// independent Lexers over disjoint or shared (read-only) sources may run
// concurrently, since each owns its own cursor.
type Lexer struct {
	id      uuid.UUID
	edition Edition
	source  string

	pos   int // byte offset of the cursor
	posG  int // grapheme offset of the cursor
	mark  int // grapheme offset of the current token's start
	markB int // byte offset of the current token's start
	state int // uniseg grapheme-boundary state at pos
}

// New creates a Lexer for source using the latest edition.
func New(source string) *Lexer {
	return NewEdition(source, LatestEdition())
}

// NewEdition creates a Lexer for source using the given edition.
func NewEdition(source string, edition Edition) *Lexer {
	l := &Lexer{
		id:      uuid.New(),
		edition: edition,
		source:  source,
		state:   -1,
	}
	lexerLogger.Tracef("lexer %s: constructed, edition=%s, len=%d", l.id, l.edition, len(source))
	return l
}

// Source returns the text this lexer was constructed with.
func (l *Lexer) Source() string {
	return l.source
}

// Edition returns the grammar version this lexer applies.
func (l *Lexer) Edition() Edition {
	return l.edition
}

// ID returns the lexer's run identifier, used to correlate log lines
// from concurrently running lexers.
func (l *Lexer) ID() uuid.UUID {
	return l.id
}

// Next returns the next Token on success, a LexerError on recognized
// failure, or ok == false once the cursor has reached the end of the
// source. Exactly one of the Token and LexerError return values is
// non-nil when ok is true. No further calls are meaningful once ok is
// false.
func (l *Lexer) Next() (*Token, *LexerError, bool) {
	tok, err, ok := l.step(false)
	if ok {
		if err != nil {
			lexerLogger.Debugf("lexer %s: %s at %v", l.id, err.Kind, err.Span)
		} else {
			lexerLogger.Tracef("lexer %s: %s %q at %v", l.id, tok.Kind, tok.Text, tok.Span)
		}
	}
	return tok, err, ok
}

// step runs one dispatch pass. When recursive is true it is being used
// as a single-grapheme probe by the unknown-sequence coalescing loop:
// it never recurses into coalescing itself, so it always either
// matches a production or consumes exactly one grapheme and reports a
// bare UnknownSequence.
func (l *Lexer) step(recursive bool) (*Token, *LexerError, bool) {
	if _, ok := l.peek(); !ok {
		return nil, nil, false
	}
	l.doMark()

	for _, prod := range dispatch {
		if out := prod(l); out != nil {
			return out.token, out.err, true
		}
	}

	if recursive {
		l.next()
		out := l.fail(UnknownSequence, nil)
		return out.token, out.err, true
	}
	return l.coalesceUnknown()
}

// coalesceUnknown advances one grapheme, then repeatedly probes a cheap
// clone of the engine with a recursive step; while the clone keeps
// reporting UnknownSequence, advance the real engine by one more
// grapheme. This merges a run of junk into a single error instead of a
// flood of one-grapheme errors.
func (l *Lexer) coalesceUnknown() (*Token, *LexerError, bool) {
	probe := *l
	for {
		_, probeErr, probeOK := probe.step(true)
		if !probeOK || probeErr == nil || probeErr.Kind != UnknownSequence {
			break
		}
		l.next()
	}
	out := l.fail(UnknownSequence, nil)
	return out.token, out.err, true
}

// doMark latches the current cursor as the start of the token being
// scanned.
func (l *Lexer) doMark() {
	l.mark = l.posG
	l.markB = l.pos
}

// span reads [mark, cursor) as a Span.
func (l *Lexer) span() Span {
	return Span{Start: l.mark, End: l.posG}
}

// text reads the byte range corresponding to span().
func (l *Lexer) text() string {
	return l.source[l.markB:l.pos]
}

func (l *Lexer) emit(kind Kind) *outcome {
	return tokenOutcome(kind, l.text(), l.span())
}

func (l *Lexer) fail(kind ErrorKind, tokenKind *Kind) *outcome {
	return errOutcome(kind, l.text(), l.span(), tokenKind)
}

// next advances one grapheme cluster and returns it, or ("", false) at
// end of input.
func (l *Lexer) next() (string, bool) {
	if l.pos >= len(l.source) {
		return "", false
	}
	cluster, _, width, newState := uniseg.FirstGraphemeClusterInString(l.source[l.pos:], l.state)
	l.pos += width
	l.posG++
	l.state = newState
	return cluster, true
}

// peek reports the next grapheme cluster without advancing.
func (l *Lexer) peek() (string, bool) {
	if l.pos >= len(l.source) {
		return "", false
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(l.source[l.pos:], l.state)
	return cluster, true
}

// graphemesOf splits a (typically short, ASCII) literal pattern into its
// grapheme clusters, for use by expect and expectOne.
func graphemesOf(s string) []string {
	out := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
		s = rest
		state = newState
	}
	return out
}

// expect advances past pattern and returns true if the next graphemes
// exactly equal pattern's graphemes; otherwise the cursor is left
// untouched and it returns false.
func (l *Lexer) expect(pattern string) bool {
	want := graphemesOf(pattern)
	saved := *l
	for _, g := range want {
		got, ok := l.next()
		if !ok || got != g {
			*l = saved
			return false
		}
	}
	return true
}

// expectOne advances past one grapheme if it is a member of set,
// treating set as a collection of individual graphemes.
func (l *Lexer) expectOne(set string) bool {
	g, ok := l.peek()
	if !ok {
		return false
	}
	for _, s := range graphemesOf(set) {
		if g == s {
			l.next()
			return true
		}
	}
	return false
}

// takeWhile advances while pred holds on the peeked grapheme, and
// returns the count advanced. Every accepted grapheme is consumed by a
// real call to next, so the cursor always moves forward on each
// iteration.
func (l *Lexer) takeWhile(pred func(string) bool) int {
	count := 0
	for {
		g, ok := l.peek()
		if !ok || !pred(g) {
			break
		}
		l.next()
		count++
	}
	return count
}

// lexExact matches pattern literally and, if present, emits kind.
func (l *Lexer) lexExact(pattern string, kind Kind) *outcome {
	if l.expect(pattern) {
		return l.emit(kind)
	}
	return nil
}
