package kaki

// Atom and Name sketch the shape of the parser's eventual AST node
// types. Nothing in this module constructs them; they exist only so
// that an eventual parser has a Span-carrying vocabulary to target, the
// same role the original implementation's AST definitions play.

// Atom is a literal value node.
type Atom struct {
	Span Span
	Kind Kind // one of IntDec/IntBin/IntOct/IntHex, Float, or a string kind
	Text string
}

// Name is an identifier node, tagged with which of the four name shapes
// produced it.
type Name struct {
	Span Span
	Kind Kind // NameLower, NameUpper, NameUnderscore, or NameAnon
	Text string
}
