package transpile

import (
	"strconv"
)

var simpleEscapes = map[byte]string{
	'"':  `\"`,
	'\'': `\'`,
	'?':  `\?`,
	'\\': `\\`,
	'\a': `\a`,
	'\b': `\b`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'\v': `\v`,
}

// Escape returns the string literal form of b. Plain characters are
// returned unchanged, the usual single letter escapes are used where C has
// one, and every other byte becomes an unpadded hex escape such as \x1 or
// \x80.
func Escape(b byte) string {
	if IsPlainChar(b) {
		return string(b)
	}

	if esc, ok := simpleEscapes[b]; ok {
		return esc
	}

	return `\x` + strconv.FormatUint(uint64(b), 16)
}

// isHexEscape reports whether Escape(b) yields a \x sequence.
func isHexEscape(b byte) bool {
	if IsPlainChar(b) {
		return false
	}

	_, ok := simpleEscapes[b]

	return !ok
}
