package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/byte4ever/cm/headers"
	"github.com/byte4ever/cm/report"
	"github.com/byte4ever/cm/transpile"
)

// EnvDefaultHeader names the environment variable holding the header used
// when -h is not given.
const EnvDefaultHeader = "CM_DEFAULT_HEADER_NAME"

// Keys shared by flags, environment variables and config files.
const (
	KeyOutput       = "output"
	KeyHeader       = "header"
	KeyVariant      = "variant"
	KeyToggle       = "toggle"
	KeyPosixCSource = "posix-c-source"
	KeyReport       = "report"
	KeyReportFormat = "report-format"
	KeyCC           = "cc"
	KeyConfig       = "config"
	KeyVerbose      = "verbose"
)

// ErrInvalidToggle is returned for toggles that are not a single byte or
// that would collide with the code delimiters.
var ErrInvalidToggle = errors.New("invalid print toggle")

// Config holds the resolved settings of one cm run.
type Config struct {
	Input        string
	Output       string
	Header       string
	Variant      transpile.Variant
	Toggle       byte
	PosixCSource string
	Report       string
	ReportFormat report.Format
	CC           string
	Verbose      bool
}

// RegisterFlags defines the cm flags on fs. -h is the header name, so the
// caller must not add a -h help shorthand.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(
		KeyOutput, "o", "",
		"output file (default: <filename>.out.c)",
	)

	fs.StringP(
		KeyHeader, "h", "",
		"header file name (default: $"+EnvDefaultHeader+
			", else <filename>.h)",
	)

	fs.String(
		KeyVariant, transpile.ThreeRegion.String(),
		"region set: three (text, code, print) or two (text, code)",
	)

	fs.String(
		KeyToggle, string(transpile.DefaultToggle),
		"byte opening and closing print expressions",
	)

	fs.String(
		KeyPosixCSource, headers.DefaultPosixCSource,
		"_POSIX_C_SOURCE level requested by a newly created header",
	)

	fs.String(
		KeyReport, "",
		"write a translation report to this file",
	)

	fs.String(
		KeyReportFormat, string(report.JSON),
		"report format: json or yaml",
	)

	fs.String(
		KeyCC, "",
		"compile the generated program with this C compiler",
	)

	fs.String(
		KeyConfig, "",
		"config file (yaml, toml or json)",
	)

	fs.BoolP(
		KeyVerbose, "v", false,
		"log debug details",
	)
}

// Load resolves the configuration for input from the flags in fs, the
// environment and the config file named by --config.
func Load(fs *pflag.FlagSet, input string) (Config, error) {
	const errCtx = "loading config"

	vp := viper.New()
	vp.SetEnvPrefix("CM")
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vp.AutomaticEnv()

	if err := vp.BindEnv(KeyHeader, EnvDefaultHeader); err != nil {
		return Config{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := vp.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	if cf := vp.GetString(KeyConfig); cf != "" {
		vp.SetConfigFile(cf)

		if err := vp.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf(
				"%s: reading %s: %w", errCtx, cf, err,
			)
		}
	}

	cfg := Config{
		Input:        input,
		Output:       vp.GetString(KeyOutput),
		Header:       vp.GetString(KeyHeader),
		PosixCSource: vp.GetString(KeyPosixCSource),
		Report:       vp.GetString(KeyReport),
		CC:           vp.GetString(KeyCC),
		Verbose:      vp.GetBool(KeyVerbose),
	}

	if cfg.Header == "" {
		cfg.Header = input + ".h"
	}

	if cfg.Output == "" {
		cfg.Output = input + ".out.c"
	}

	var err error

	cfg.Variant, err = transpile.ParseVariant(vp.GetString(KeyVariant))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	cfg.Toggle, err = parseToggle(vp.GetString(KeyToggle))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	cfg.ReportFormat, err = report.ParseFormat(
		vp.GetString(KeyReportFormat),
	)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	return cfg, nil
}

func parseToggle(s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf(
			"%w: %q is not a single byte", ErrInvalidToggle, s,
		)
	}

	switch s[0] {
	case '<', '?', '>', '\n':
		return 0, fmt.Errorf(
			"%w: %q is part of the code delimiters", ErrInvalidToggle, s,
		)
	}

	return s[0], nil
}

// TranspileOptions returns the scanner options of cfg.
func (cfg Config) TranspileOptions() transpile.Options {
	return transpile.Options{
		Header:  cfg.Header,
		Variant: cfg.Variant,
		Toggle:  cfg.Toggle,
	}
}

// HeaderOptions returns the header bundle options of cfg.
func (cfg Config) HeaderOptions() headers.Options {
	return headers.Options{PosixCSource: cfg.PosixCSource}
}
