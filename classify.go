package sml

// Character classifier: pure predicates over a single byte. The lexical
// grammar here is pure ASCII (unlike the turtle PN_CHARS tables this file
// is descended from), so classification works directly on bytes rather
// than decoded runes.

// symbolicChars is the operator alphabet: characters that may appear in a
// symbolic identifier such as `>=` or `@@`.
const symbolicChars = "!%&$#+-/:<=>?@\\~`^|*"

func isDecDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'A' && b <= 'F') || (b >= 'a' && b <= 'f')
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isSymbolic(b byte) bool {
	for i := 0; i < len(symbolicChars); i++ {
		if symbolicChars[i] == b {
			return true
		}
	}
	return false
}

func isAlphaNumPrimeOrUnderscore(b byte) bool {
	return isLetter(b) || isDecDigit(b) || b == '\'' || b == '_'
}

func isValidSingleEscapeChar(b byte) bool {
	switch b {
	case 'a', 'b', 'f', 'n', 'r', 't', 'v', '\\', '"':
		return true
	}
	return false
}

// isValidControlEscapeChar reports whether b is one of the 32 ASCII
// control-naming characters '@' through '_' (inclusive), used after `\^`.
func isValidControlEscapeChar(b byte) bool {
	return b >= '@' && b <= '_'
}

func isValidFormatEscapeChar(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func isPrint(b byte) bool {
	return b >= 0x20 && b < 0x7f
}
