// Package exec runs the C compiler and the programs it builds.
package exec

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Run executes tool with args and returns what it wrote to stdout and
// stderr, interleaved.
func Run(
	ctx context.Context,
	tool string,
	args ...string,
) (string, error) {
	const errCtx = "running tool"

	var out bytes.Buffer

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out

	start := time.Now()
	err := cmd.Run()

	slog.Debug(
		"tool finished",
		"tool", tool,
		"args", args,
		"elapsed", time.Since(start),
		"output_bytes", out.Len(),
	)

	if err != nil {
		return out.String(), fmt.Errorf(
			"%s: %s: %w", errCtx, tool, err,
		)
	}

	return out.String(), nil
}

// BinaryName derives the executable name for a generated source file by
// dropping its .c extension.
func BinaryName(source string) string {
	if bin, ok := strings.CutSuffix(source, ".c"); ok && bin != "" {
		return bin
	}

	return source + ".bin"
}

// Compile builds source with the C compiler cc and returns the path of the
// executable. Compiler diagnostics are part of the error.
func Compile(
	ctx context.Context,
	cc string,
	source string,
) (string, error) {
	const errCtx = "compiling"

	bin := BinaryName(source)

	diag, err := Run(ctx, cc, "-o", bin, source)
	if err != nil {
		return "", fmt.Errorf(
			"%s %s: %w\n%s",
			errCtx, source, err, strings.TrimSpace(diag),
		)
	}

	if diag != "" {
		slog.Warn(
			"compiler diagnostics",
			"source", source,
			"output", strings.TrimSpace(diag),
		)
	}

	return bin, nil
}
