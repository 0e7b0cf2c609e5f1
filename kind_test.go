package kaki

import "testing"

func TestKindPredicatesAreMutuallyExclusive(t *testing.T) {
	all := []Kind{
		Space, NewLine, CommentLine, CommentBlock,
		NameLower, NameUpper, NameUnderscore, NameAnon,
		IntBin, IntOct, IntDec, IntHex, Float,
		StringSingle, StringMulti, StringSmart,
		Amp, AmpAmp, Semicolon, Dot, Tilde,
	}
	for _, k := range all {
		flags := 0
		for _, b := range []bool{k.IsWhitespace(), k.IsWord(), k.IsOpPunc()} {
			if b {
				flags++
			}
		}
		if flags > 1 {
			t.Errorf("%s: matched more than one of IsWhitespace/IsWord/IsOpPunc", k)
		}
	}
}

func TestKindIsBoundary(t *testing.T) {
	if !Space.IsBoundary() {
		t.Error("Space should be a boundary")
	}
	if !Semicolon.IsBoundary() {
		t.Error("Semicolon should be a boundary")
	}
	if NameLower.IsBoundary() {
		t.Error("NameLower should not be a boundary")
	}
}

func TestKindStringUnknown(t *testing.T) {
	var k Kind = 9999
	if got := k.String(); got != "Kind(9999)" {
		t.Errorf("String() = %q, want Kind(9999)", got)
	}
}
