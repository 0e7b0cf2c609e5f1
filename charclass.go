package kaki

// Character-class predicates used by the name and number productions.
// These only recognize ASCII letters, digits, and underscore, so a
// multi-byte or multi-rune grapheme simply fails every test here. Each
// predicate takes a single grapheme cluster, which for every class
// tested here is always exactly one ASCII byte when it matches.

func isLower(g string) bool {
	return len(g) == 1 && g[0] >= 'a' && g[0] <= 'z'
}

func isUpper(g string) bool {
	return len(g) == 1 && g[0] >= 'A' && g[0] <= 'Z'
}

func isAlpha(g string) bool {
	return isLower(g) || isUpper(g) || g == "_"
}

func isDigit(g string) bool {
	return len(g) == 1 && g[0] >= '0' && g[0] <= '9'
}

func isAlphaNum(g string) bool {
	return isAlpha(g) || isDigit(g)
}

func isBinDigit(g string) bool {
	return g == "0" || g == "1"
}

func isOctDigit(g string) bool {
	return len(g) == 1 && g[0] >= '0' && g[0] <= '7'
}

func isHexDigit(g string) bool {
	if isDigit(g) {
		return true
	}
	return len(g) == 1 && ((g[0] >= 'a' && g[0] <= 'f') || (g[0] >= 'A' && g[0] <= 'F'))
}
