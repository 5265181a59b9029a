package transpile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/byte4ever/cm/transpile"
)

func TestIsCodeOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  string
		pos  int
		want bool
	}{
		{name: "space", buf: "<?c x", pos: 0, want: true},
		{name: "newline", buf: "<?c\nx", pos: 0, want: true},
		{name: "offset", buf: "ab<?c ", pos: 2, want: true},
		{name: "tab is not a separator", buf: "<?c\tx", pos: 0},
		{name: "php tag", buf: "<?php", pos: 0},
		{name: "upper case", buf: "<?C x", pos: 0},
		{name: "close token", buf: "?> ab", pos: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(
				t, tt.want,
				transpile.IsCodeOpen([]byte(tt.buf), tt.pos),
			)
		})
	}
}

func TestIsCodeClose(t *testing.T) {
	t.Parallel()

	assert.True(t, transpile.IsCodeClose([]byte("?>"), 0))
	assert.True(t, transpile.IsCodeClose([]byte("x;?>\n"), 2))
	assert.False(t, transpile.IsCodeClose([]byte(">?"), 0))
	assert.False(t, transpile.IsCodeClose([]byte("? >"), 0))
}

func TestIsPlainChar(t *testing.T) {
	t.Parallel()

	for _, c := range []byte(
		"azAZ09 !#%&()*+,-./:;<=>[]^_{|}~",
	) {
		assert.True(t, transpile.IsPlainChar(c), "%q", c)
	}

	for _, c := range []byte("\"'?\\\n\r\t\a\x00\x7f$@`") {
		assert.False(t, transpile.IsPlainChar(c), "%q", c)
	}

	assert.False(t, transpile.IsPlainChar(0x80))
	assert.False(t, transpile.IsPlainChar(0xff))
}

func TestClassifiers_depend_only_on_local_bytes(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		prefix := rapid.SliceOf(rapid.Byte()).Draw(rt, "prefix")
		window := rapid.SliceOfN(rapid.Byte(), 4, 4).Draw(rt, "window")
		suffix := rapid.SliceOf(rapid.Byte()).Draw(rt, "suffix")

		buf := append(append(append([]byte{}, prefix...), window...), suffix...)

		assert.Equal(
			rt,
			transpile.IsCodeOpen(window, 0),
			transpile.IsCodeOpen(buf, len(prefix)),
		)
		assert.Equal(
			rt,
			transpile.IsCodeClose(window, 0),
			transpile.IsCodeClose(buf, len(prefix)),
		)
	})
}
