package kaki

// Span describes the position of some text in a source, as a half-open
// [Start, End) interval measured in extended grapheme clusters. Start and
// End are not byte offsets and not UTF-8 scalar value counts: they count
// user-perceived characters, so that two spans the same width always
// cover the same number of characters a reader would see.
//
// A Span carries no reference to the source it describes; it is only
// meaningful alongside the string it was produced from.
type Span struct {
	// Start is the first grapheme covered by the span (inclusive).
	Start int

	// End is one past the last grapheme covered by the span (exclusive).
	End int
}

// NewSpan creates a Span covering [start, end). It panics if end < start,
// since a span's width can never be negative.
func NewSpan(start, end int) Span {
	if end < start {
		panic("kaki: span end before start")
	}
	return Span{Start: start, End: end}
}

// Len returns the number of graphemes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span covers zero graphemes.
func (s Span) Empty() bool {
	return s.Start == s.End
}
