package transpile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/cm/transpile"
)

func TestEngine_Translate_writes_program(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	inPath := writeTemp(
		t, dir, "page.cm", "Hello @\"%s\", name@!\n",
	)

	outPath := filepath.Join(dir, "page.cm.out.c")

	en := transpile.Engine{
		Options: transpile.Options{Header: "page.cm.h"},
	}

	stats, err := en.Translate(inPath, outPath)
	require.NoError(t, err)

	got, err := os.ReadFile(outPath) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(
		t,
		"#include \"page.cm.h\"\n"+
			"int main(int argc, char** argv) {\n"+
			"printf(\"Hello \");\n"+
			"printf(\"%s\", name);\n"+
			"printf(\"!\\n\"\n\"\");\n"+
			"return 0;\n}\n",
		string(got),
	)
	assert.Equal(t, int64(len(got)), stats.OutputBytes)
	assert.Equal(t, 1, stats.PrintExprs)
}

func TestEngine_Translate_missing_input(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.c")

	en := transpile.Engine{}

	_, err := en.Translate(filepath.Join(dir, "nope.cm"), outPath)

	require.ErrorIs(t, err, transpile.ErrInputNotExist)
	assert.NoFileExists(t, outPath)
}

func TestEngine_Translate_refuses_to_overwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	inPath := writeTemp(t, dir, "in.cm", "some text")
	outPath := writeTemp(t, dir, "out.c", "keep me")

	en := transpile.Engine{}

	_, err := en.Translate(inPath, outPath)
	require.ErrorIs(t, err, transpile.ErrOutputExists)

	got, err := os.ReadFile(outPath) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(got))
}

func TestEngine_Translate_input_too_short(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	inPath := writeTemp(t, dir, "in.cm", "hi\n")
	outPath := filepath.Join(dir, "out.c")

	en := transpile.Engine{}

	_, err := en.Translate(inPath, outPath)

	require.ErrorIs(t, err, transpile.ErrInputTooShort)
	assert.NoFileExists(t, outPath)
}

func TestEngine_Translate_output_dir_missing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	inPath := writeTemp(t, dir, "in.cm", "some text")
	outPath := filepath.Join(dir, "missing", "out.c")

	en := transpile.Engine{}

	_, err := en.Translate(inPath, outPath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing program")
	assert.NotErrorIs(t, err, transpile.ErrOutputExists)
}

func TestEngine_Translate_two_region(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	inPath := writeTemp(t, dir, "in.cm", "mail@host")
	outPath := filepath.Join(dir, "out.c")

	en := transpile.Engine{
		Options: transpile.Options{
			Header:  "h.h",
			Variant: transpile.TwoRegion,
		},
	}

	stats, err := en.Translate(inPath, outPath)
	require.NoError(t, err)
	assert.Zero(t, stats.PrintExprs)

	got, err := os.ReadFile(outPath) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Contains(t, string(got), "printf(\"mail\\x40host\");\n")
}
