package kaki

import "github.com/juju/errors"

// Edition identifies which version of the Kaki lexical grammar a Lexer
// applies. Multiple editions can coexist in one process; a Lexer is
// parameterized by the edition it was constructed with.
type Edition int

const (
	// Edition1 is the first and, so far, only defined edition.
	Edition1 Edition = iota
)

var editionNames = map[Edition]string{
	Edition1: "edition1",
}

// String returns the edition's tag, e.g. "edition1".
func (e Edition) String() string {
	if name, ok := editionNames[e]; ok {
		return name
	}
	return "edition(unknown)"
}

// LatestEdition returns the most recent defined edition. Callers that
// don't care which grammar version they get should use this.
func LatestEdition() Edition {
	return Edition1
}

// ParseEdition parses a caller-supplied edition tag (e.g. from a CLI flag
// or a project config file) into an Edition. An unrecognized tag is
// reported with juju/errors so the caller can annotate or trace it
// further up the call stack.
func ParseEdition(tag string) (Edition, error) {
	switch tag {
	case "edition1", "":
		return Edition1, nil
	default:
		return 0, errors.NotValidf("edition tag %q", tag)
	}
}
