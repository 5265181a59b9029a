package transpile

import (
	"fmt"
	"io"
)

const (
	entryOpen  = "int main(int argc, char** argv) {\n"
	entryClose = "return 0;\n}\n"
)

// WritePrologue writes the include of header and opens the program entry
// point. The header name is written as given.
func WritePrologue(w io.Writer, header string) error {
	const errCtx = "writing prologue"

	if _, err := fmt.Fprintf(
		w, "#include \"%s\"\n%s", header, entryOpen,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// WriteEpilogue returns success from the entry point and closes it.
func WriteEpilogue(w io.Writer) error {
	const errCtx = "writing epilogue"

	if _, err := io.WriteString(w, entryClose); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}
