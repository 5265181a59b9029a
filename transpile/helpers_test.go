package transpile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/byte4ever/cm/transpile"
)

const (
	testHeader = "t.h"
	prologue   = "#include \"t.h\"\nint main(int argc, char** argv) {\n"
	epilogue   = "return 0;\n}\n"
)

// writeTemp creates a temporary file with content and
// returns its path.
func writeTemp(
	tb testing.TB,
	dir string,
	name string,
	content string,
) string {
	tb.Helper()

	pa := filepath.Join(dir, name)
	require.NoError(tb, os.WriteFile(pa, []byte(content), 0o600))

	return pa
}

// translate runs Translate with the test header and returns the body
// between prologue and epilogue.
func translate(
	tb require.TestingT,
	src string,
	variant transpile.Variant,
) (string, transpile.Stats) {
	var buf bytes.Buffer

	stats, err := transpile.Translate(
		&buf,
		[]byte(src),
		transpile.Options{Header: testHeader, Variant: variant},
	)
	require.NoError(tb, err)

	out := buf.String()
	require.GreaterOrEqual(tb, len(out), len(prologue)+len(epilogue))
	require.Equal(tb, prologue, out[:len(prologue)])
	require.Equal(tb, epilogue, out[len(out)-len(epilogue):])

	return out[len(prologue) : len(out)-len(epilogue)], stats
}

// decodeLiterals decodes a sequence of adjacent C string literals,
// separated by blanks, the way a C compiler concatenates them.
func decodeLiterals(tb require.TestingT, s string) []byte {
	var out []byte

	idx := 0
	for idx < len(s) {
		switch s[idx] {
		case ' ', '\n':
			idx++

			continue
		case '"':
		default:
			require.Failf(tb, "unexpected byte", "%q at %d in %q", s[idx], idx, s)
		}

		idx++

		for s[idx] != '"' {
			if s[idx] != '\\' {
				out = append(out, s[idx])
				idx++

				continue
			}

			b, n := decodeEscape(tb, s[idx+1:])
			out = append(out, b)
			idx += 1 + n
		}

		idx++
	}

	return out
}

func decodeEscape(tb require.TestingT, s string) (byte, int) {
	switch s[0] {
	case '"', '\'', '?', '\\':
		return s[0], 1
	case 'a':
		return '\a', 1
	case 'b':
		return '\b', 1
	case 'f':
		return '\f', 1
	case 'n':
		return '\n', 1
	case 'r':
		return '\r', 1
	case 't':
		return '\t', 1
	case 'v':
		return '\v', 1
	case 'x':
		end := 1
		for end < len(s) && isHex(s[end]) {
			end++
		}

		val, err := strconv.ParseUint(s[1:end], 16, 64)
		require.NoError(tb, err)
		require.LessOrEqual(tb, val, uint64(0xff), "hex escape overflows a byte")

		return byte(val), end
	}

	require.Failf(tb, "unknown escape", "%q", s)

	return 0, 0
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}
