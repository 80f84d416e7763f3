package tokenize

// isASCIIWhitespace matches spec.md's whitespace set: tab, newline, CR,
// form feed, vertical tab, space.
func isASCIIWhitespace(b byte) bool {
	switch b {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	default:
		return false
	}
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWordByte(b byte) bool {
	return isASCIIAlpha(b) || b == '_'
}

// atEndOrWhitespace reports whether position i in buf is past the end or
// lands on a whitespace byte — the trie's definition of "final byte of the
// input token."
func atEndOrWhitespace(buf []byte, i int) bool {
	return i >= len(buf) || isASCIIWhitespace(buf[i])
}
