package transpile

// IsCodeOpen reports whether buf holds "<?c" followed by a space or a
// newline at pos. The caller guarantees that four bytes remain.
func IsCodeOpen(buf []byte, pos int) bool {
	return buf[pos] == '<' &&
		buf[pos+1] == '?' &&
		buf[pos+2] == 'c' &&
		(buf[pos+3] == ' ' || buf[pos+3] == '\n')
}

// IsCodeClose reports whether buf holds "?>" at pos. The caller guarantees
// that two bytes remain.
func IsCodeClose(buf []byte, pos int) bool {
	return buf[pos] == '?' && buf[pos+1] == '>'
}

// plainChars lists the bytes allowed unescaped in a C string literal: the
// basic character set minus quotes, '?', '\\' and control characters.
var plainChars = func() [256]bool {
	var tbl [256]bool

	for c := 'a'; c <= 'z'; c++ {
		tbl[c] = true
	}

	for c := 'A'; c <= 'Z'; c++ {
		tbl[c] = true
	}

	for c := '0'; c <= '9'; c++ {
		tbl[c] = true
	}

	for _, c := range []byte(" !#%&()*+,-./:;<=>[]^_{|}~") {
		tbl[c] = true
	}

	return tbl
}()

// IsPlainChar reports whether b can be copied into a string literal as is.
// Newline is not plain.
func IsPlainChar(b byte) bool {
	return plainChars[b]
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}
