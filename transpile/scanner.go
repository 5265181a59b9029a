package transpile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const (
	// MinInputLen is the shortest template Translate accepts.
	MinInputLen = 4

	// DefaultToggle opens and closes print expressions.
	DefaultToggle byte = '@'

	codeOpenLen  = 4
	codeCloseLen = 2
)

// Fragments written around the regions of the template.
const (
	literalOpen  = "printf(\""
	literalClose = "\");\n"
	literalBreak = "\\n\"\n\""
	literalSplit = "\" \""
	toPrint      = "\");\nprintf("
	fromPrint    = ");\nprintf(\""
	printOpen    = "printf("
	printClose   = ");\n"
	codeReopen   = "\nprintf(\""
)

// ErrInputTooShort is returned for templates shorter than MinInputLen.
var ErrInputTooShort = errors.New("input too short")

// Options configures a translation.
type Options struct {
	// Header is placed in the #include line of the generated program.
	Header string

	// Variant selects the recognized regions.
	Variant Variant

	// Toggle opens and closes print expressions. Zero means
	// DefaultToggle. Ignored by TwoRegion.
	Toggle byte
}

func (op Options) toggle() byte {
	if op.Toggle == 0 {
		return DefaultToggle
	}

	return op.Toggle
}

// Stats describes what a translation produced.
type Stats struct {
	InputBytes        int   `json:"input_bytes"        yaml:"input_bytes"`
	OutputBytes       int64 `json:"output_bytes"       yaml:"output_bytes"`
	LiteralStatements int   `json:"literal_statements" yaml:"literal_statements"`
	LineBreaks        int   `json:"line_breaks"        yaml:"line_breaks"`
	CodeRegions       int   `json:"code_regions"       yaml:"code_regions"`
	PrintExprs        int   `json:"print_exprs"        yaml:"print_exprs"`

	// UnclosedCode is set when the template ends inside a code region.
	// The generated program is then most likely invalid.
	UnclosedCode bool `json:"unclosed_code" yaml:"unclosed_code"`
}

// Translate writes to w the C program that prints src. Code regions are
// copied verbatim, print expressions become printf calls and everything
// else is printed as escaped string literals split at newlines.
//
// Nothing is written when src is shorter than MinInputLen.
func Translate(
	w io.Writer,
	src []byte,
	opts Options,
) (Stats, error) {
	const errCtx = "translating"

	if len(src) < MinInputLen {
		return Stats{}, fmt.Errorf(
			"%s: %d bytes: %w", errCtx, len(src), ErrInputTooShort,
		)
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	sc := scanner{
		src:         src,
		out:         bw,
		toggle:      opts.toggle(),
		printRegion: opts.Variant == ThreeRegion,
	}

	// Write errors are sticky in bufio.Writer and show up at Flush.
	_ = WritePrologue(bw, opts.Header)

	sc.run()

	_ = WriteEpilogue(bw)

	if err := bw.Flush(); err != nil {
		return Stats{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	sc.stats.InputBytes = len(src)
	sc.stats.OutputBytes = cw.n

	return sc.stats, nil
}

type scanner struct {
	src         []byte
	cur         int
	state       State
	outer       State
	toggle      byte
	printRegion bool
	out         *bufio.Writer
	stats       Stats

	// hexPending is set right after a \x escape, whose digits would
	// absorb a following hex digit.
	hexPending bool
}

func (sc *scanner) run() {
	sc.enter()

	for sc.cur < len(sc.src) {
		sc.step()
	}

	sc.finish()
}

func (sc *scanner) enter() {
	switch {
	case IsCodeOpen(sc.src, 0):
		sc.openCode()
	case sc.printRegion && sc.src[0] == sc.toggle:
		sc.state = PrintExpr
		sc.cur = 1
		sc.stats.PrintExprs++
		sc.emit(printOpen)
	default:
		sc.state = Literal
		sc.stats.LiteralStatements++
		sc.emit(literalOpen)
	}
}

// step consumes at least one byte.
func (sc *scanner) step() {
	b := sc.src[sc.cur]
	rest := len(sc.src) - sc.cur

	switch {
	case sc.printRegion && sc.state != Code && b == sc.toggle:
		sc.flipPrint()
		sc.cur++

	case sc.state != Code && rest >= codeOpenLen &&
		IsCodeOpen(sc.src, sc.cur):
		if sc.state == Literal {
			sc.emit(literalClose)
		}

		sc.openCode()

	case sc.state == Code && rest >= codeCloseLen &&
		IsCodeClose(sc.src, sc.cur):
		sc.closeCode()

	case sc.state == Literal && b == '\n':
		sc.stats.LineBreaks++
		sc.emit(literalBreak)
		sc.cur++

	case sc.state == Literal:
		sc.literal(b)
		sc.cur++

	default:
		sc.emitByte(b)
		sc.cur++
	}
}

func (sc *scanner) flipPrint() {
	if sc.state == Literal {
		sc.state = PrintExpr
		sc.stats.PrintExprs++
		sc.emit(toPrint)

		return
	}

	sc.state = Literal
	sc.stats.LiteralStatements++
	sc.emit(fromPrint)
}

func (sc *scanner) openCode() {
	sc.outer = sc.state
	sc.state = Code
	sc.cur += codeOpenLen
	sc.stats.CodeRegions++
}

func (sc *scanner) closeCode() {
	sc.cur += codeCloseLen

	// A newline right after the close belongs to the template layout,
	// not to the printed text.
	if sc.cur < len(sc.src) && sc.src[sc.cur] == '\n' {
		sc.cur++
	}

	sc.state = sc.outer

	if sc.state == Literal {
		sc.stats.LiteralStatements++
		sc.emit(codeReopen)
	}
}

func (sc *scanner) literal(b byte) {
	if isHexEscape(b) {
		sc.emit(Escape(b))
		sc.hexPending = true

		return
	}

	if sc.hexPending && isHexDigit(b) {
		sc.emit(literalSplit)
	}

	if IsPlainChar(b) {
		sc.emitByte(b)

		return
	}

	sc.emit(Escape(b))
}

func (sc *scanner) finish() {
	switch sc.state {
	case Literal:
		sc.emit(literalClose)
	case PrintExpr:
		sc.emit(printClose)
	case Code:
		sc.stats.UnclosedCode = true
	}
}

func (sc *scanner) emit(s string) {
	sc.hexPending = false
	_, _ = sc.out.WriteString(s)
}

func (sc *scanner) emitByte(b byte) {
	sc.hexPending = false
	_ = sc.out.WriteByte(b)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)

	return n, err //nolint:wrapcheck // pass-through writer
}
