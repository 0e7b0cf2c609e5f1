// Package kaki implements the lexical analyzer for the Kaki programming
// language.
//
// The lexer accepts a whole source text and produces a lazy sequence of
// classified lexemes: names, numeric literals, string literals,
// punctuation, whitespace, and comments, each tagged with the text slice
// it covers and its position, or a LexerError when a prefix of the input
// cannot be recognized.
//
// Cursor motion and span coordinates are measured in extended grapheme
// clusters, not bytes or UTF-8 scalar values, so that user-visible
// character counts for diagnostics match what a reader actually
// perceives. See Span and Lexer.
//
// A tiny example:
//
//	lx := kaki.New("foo 0xFF_00 \"bar\"")
//	for {
//	    tok, lexErr, ok := lx.Next()
//	    if !ok {
//	        break
//	    }
//	    if lexErr != nil {
//	        fmt.Println("error:", lexErr)
//	        continue
//	    }
//	    fmt.Println(tok.Kind, tok.Text)
//	}
//
// The lexer does not parse, build syntax trees, resolve names, evaluate
// literal values, or compute line/column coordinates. Those are the
// responsibility of later compiler phases not implemented here.
package kaki
