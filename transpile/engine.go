package transpile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

var (
	// ErrInputNotExist is returned when the template file is missing.
	ErrInputNotExist = errors.New("input file does not exist")

	// ErrOutputExists is returned when the output file is already present.
	// Engine never overwrites.
	ErrOutputExists = errors.New("output file already exists")
)

// Engine translates template files into C source files.
type Engine struct {
	Options
}

// Translate reads the template at inPath and writes the generated program
// to outPath, which must not exist yet.
//
// Processing order:
//  1. Check that inPath exists and outPath does not.
//  2. Read the whole template and reject it if it is too short.
//  3. Create outPath exclusively and run the scanner into it.
func (en *Engine) Translate(
	inPath string,
	outPath string,
) (Stats, error) {
	const errCtx = "translating"

	if err := CheckPaths(inPath, outPath); err != nil {
		return Stats{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	src, err := en.readTemplate(inPath)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	if len(src) < MinInputLen {
		return Stats{}, fmt.Errorf(
			"%s: %s has %d bytes: %w",
			errCtx, inPath, len(src), ErrInputTooShort,
		)
	}

	stats, err := en.writeProgram(outPath, src)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	slog.Debug(
		"translated",
		"input", inPath,
		"output", outPath,
		"literals", stats.LiteralStatements,
		"code", stats.CodeRegions,
		"prints", stats.PrintExprs,
		"bytes", stats.OutputBytes,
	)

	if stats.UnclosedCode {
		slog.Warn("template ends inside a code region", "input", inPath)
	}

	return stats, nil
}

// CheckPaths returns ErrInputNotExist when inPath is missing and
// ErrOutputExists when outPath is present.
func CheckPaths(inPath string, outPath string) error {
	const errCtx = "checking paths"

	if _, err := os.Stat(inPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %s: %w", errCtx, inPath, ErrInputNotExist)
		}

		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if _, err := os.Lstat(outPath); err == nil {
		return fmt.Errorf("%s: %s: %w", errCtx, outPath, ErrOutputExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func (en *Engine) readTemplate(inPath string) ([]byte, error) {
	const errCtx = "reading template"

	content, err := os.ReadFile(inPath) //nolint:gosec // path from CLI
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return content, nil
}

// writeProgram creates outPath with O_EXCL so that a file appearing after
// CheckPaths is not clobbered either.
func (en *Engine) writeProgram(
	outPath string,
	src []byte,
) (stats Stats, retErr error) {
	const errCtx = "writing program"

	fi, err := os.OpenFile( //nolint:gosec // path from CLI
		outPath,
		os.O_WRONLY|os.O_CREATE|os.O_EXCL,
		0o666,
	)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return Stats{}, fmt.Errorf(
				"%s: %s: %w", errCtx, outPath, ErrOutputExists,
			)
		}

		return Stats{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	stats, err = Translate(fi, src, en.Options)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	return stats, nil
}
