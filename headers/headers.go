package headers

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/valyala/fasttemplate"
)

// DefaultPosixCSource is the _POSIX_C_SOURCE level requested by default.
const DefaultPosixCSource = "202405L"

var (
	//go:embed bundle/posix.h.tpl
	posixTpl string

	//go:embed bundle/libc.h.tpl
	libcTpl string
)

// Options parameterizes the header bundle.
type Options struct {
	// PosixCSource is the value of _POSIX_C_SOURCE. Empty means
	// DefaultPosixCSource.
	PosixCSource string
}

func (op Options) context() map[string]interface{} {
	psx := op.PosixCSource
	if psx == "" {
		psx = DefaultPosixCSource
	}

	return map[string]interface{}{
		"posix_c_source": psx,
	}
}

// Bundle returns the header text: the POSIX section, a blank line and the
// standard C section.
func Bundle(opts Options) string {
	posix := fasttemplate.ExecuteStringStd(
		posixTpl, "{{", "}}", opts.context(),
	)

	return posix + "\n\n" + libcTpl
}

// Create writes the bundle to path and reports whether it did. An existing
// file at path is left untouched.
func Create(path string, opts Options) (created bool, retErr error) {
	const errCtx = "creating header"

	fi, err := os.OpenFile( //nolint:gosec // path from CLI
		path,
		os.O_WRONLY|os.O_CREATE|os.O_EXCL,
		0o666,
	)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	if _, err := fi.WriteString(Bundle(opts)); err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	return true, nil
}
