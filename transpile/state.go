package transpile

import (
	"errors"
	"fmt"
)

// State is the region the scanner is in.
type State int

const (
	// Literal text is printed as a string literal.
	Literal State = iota
	// Code is copied verbatim.
	Code
	// PrintExpr is copied verbatim as the argument list of printf.
	PrintExpr
)

func (st State) String() string {
	switch st {
	case Literal:
		return "literal"
	case Code:
		return "code"
	case PrintExpr:
		return "print"
	default:
		return fmt.Sprintf("State(%d)", int(st))
	}
}

// Variant selects the set of regions the scanner recognizes.
type Variant int

const (
	// ThreeRegion recognizes literal text, code and print expressions.
	ThreeRegion Variant = iota
	// TwoRegion recognizes literal text and code only; the toggle byte is
	// ordinary text. Newlines in literal text are still emitted as \n
	// before the literal is broken, so the printed text keeps them.
	TwoRegion
)

// ErrUnknownVariant is returned by ParseVariant.
var ErrUnknownVariant = errors.New("unknown variant")

func (va Variant) String() string {
	switch va {
	case ThreeRegion:
		return "three"
	case TwoRegion:
		return "two"
	default:
		return fmt.Sprintf("Variant(%d)", int(va))
	}
}

// ParseVariant maps "three" and "two" to their Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "three", "":
		return ThreeRegion, nil
	case "two":
		return TwoRegion, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}
