package kaki

// Parse is unimplemented. The grammar above the token stream has not
// been specified yet; this stub exists so that callers can depend on
// the eventual parser's entry point without this package's surface
// changing shape later.
func Parse(source string) (*Atom, error) {
	panic("kaki: Parse is not implemented")
}
