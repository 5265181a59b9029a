package report

import (
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/byte4ever/cm/digester"
	"github.com/byte4ever/cm/transpile"
)

// Format selects the report encoding.
type Format string

const (
	// JSON encodes reports as indented JSON.
	JSON Format = "json"
	// YAML encodes reports as YAML.
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for formats other than JSON and YAML.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat validates s as a report format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case JSON, "":
		return JSON, nil
	case YAML:
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Report describes one translation.
type Report struct {
	Input        string          `json:"input"         yaml:"input"`
	Output       string          `json:"output"        yaml:"output"`
	Header       string          `json:"header"        yaml:"header"`
	Variant      string          `json:"variant"       yaml:"variant"`
	InputDigest  string          `json:"input_digest"  yaml:"input_digest"`
	OutputDigest string          `json:"output_digest" yaml:"output_digest"`
	Stats        transpile.Stats `json:"stats"         yaml:"stats"`
}

// New builds the report of a translation from input to output and digests
// both files.
func New(
	input string,
	output string,
	opts transpile.Options,
	stats transpile.Stats,
) (Report, error) {
	const errCtx = "building report"

	inDigest, err := digester.File(input)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	outDigest, err := digester.File(output)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	return Report{
		Input:        input,
		Output:       output,
		Header:       opts.Header,
		Variant:      opts.Variant.String(),
		InputDigest:  inDigest,
		OutputDigest: outDigest,
		Stats:        stats,
	}, nil
}

// Write encodes rep to w.
func Write(w io.Writer, rep Report, format Format) error {
	const errCtx = "writing report"

	var (
		buf []byte
		err error
	)

	switch format {
	case JSON:
		buf, err = json.MarshalIndent(rep, "", "  ")
		buf = append(buf, '\n')
	case YAML:
		buf, err = yaml.Marshal(rep)
	default:
		return fmt.Errorf("%s: %w: %q", errCtx, ErrUnknownFormat, format)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// WriteFile encodes rep into the file at path, replacing it.
func WriteFile(path string, rep Report, format Format) (retErr error) {
	const errCtx = "writing report file"

	fo, err := os.Create(path) //nolint:gosec // path from CLI
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fo.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	if err := Write(fo, rep, format); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// Read decodes a report previously written in format.
func Read(rd io.Reader, format Format) (Report, error) {
	const errCtx = "reading report"

	var rep Report

	switch format {
	case JSON:
		if err := json.NewDecoder(rd).Decode(&rep); err != nil {
			return Report{}, fmt.Errorf("%s: %w", errCtx, err)
		}
	case YAML:
		if err := yaml.NewDecoder(rd).Decode(&rep); err != nil {
			return Report{}, fmt.Errorf("%s: %w", errCtx, err)
		}
	default:
		return Report{}, fmt.Errorf(
			"%s: %w: %q", errCtx, ErrUnknownFormat, format,
		)
	}

	return rep, nil
}
