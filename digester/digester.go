package digester

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Prefix marks digests produced by this package.
const Prefix = "sha256:"

// Sum returns the prefixed SHA256 hex digest of everything read from rd.
func Sum(rd io.Reader) (string, error) {
	const errCtx = "calculating digest"

	ha := sha256.New()

	if _, err := io.Copy(ha, rd); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return Prefix + hex.EncodeToString(ha.Sum(nil)), nil
}

// File returns the digest of the file at path.
func File(path string) (result string, retErr error) {
	const errCtx = "digesting file"

	fi, err := os.Open(path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	dg, err := Sum(fi)
	if err != nil {
		return "", fmt.Errorf("%s: %s: %w", errCtx, path, err)
	}

	return dg, nil
}
