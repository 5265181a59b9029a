// Binary cm translates a C template into a C program
// that prints the template's text, runs its embedded
// code and prints its expressions.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/byte4ever/cm/config"
	"github.com/byte4ever/cm/exec"
	"github.com/byte4ever/cm/headers"
	"github.com/byte4ever/cm/report"
	"github.com/byte4ever/cm/transpile"
)

var errorPrefix = color.New(color.FgRed, color.Bold)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cm [-o outputname] [-h headerfilename] filename",
		Short: "Translate a C template into a C program",
		Long: "cm translates a template into a C program printing it.\n" +
			"Text between \"<?c \" and \"?>\" is C code, text between two '@'\n" +
			"is a printf argument list.\n\n" +
			"Use the environment variable " + config.EnvDefaultHeader +
			" to set a default header;\notherwise, (input).h will be used.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return run(cmd, args[0])
		},
	}

	config.RegisterFlags(cmd.Flags())

	// -h is the header name; cobra would otherwise claim it for help.
	cmd.Flags().Bool("help", false, "help for cm")

	return cmd
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	))
}

func run(cmd *cobra.Command, input string) error {
	const errCtx = "cm"

	cfg, err := config.Load(cmd.Flags(), input)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	setupLogging(cmd.ErrOrStderr(), cfg.Verbose)

	_, err = fmt.Fprintf(
		cmd.OutOrStdout(),
		"Input from file: %s\nOutput into file: %s\nUsed header: %s\n",
		cfg.Input, cfg.Output, cfg.Header,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := transpile.CheckPaths(cfg.Input, cfg.Output); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	created, err := headers.Create(cfg.Header, cfg.HeaderOptions())
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if created {
		slog.Debug("created header", "path", cfg.Header)
	}

	en := transpile.Engine{Options: cfg.TranspileOptions()}

	stats, err := en.Translate(cfg.Input, cfg.Output)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if cfg.Report != "" {
		rep, err := report.New(
			cfg.Input, cfg.Output, en.Options, stats,
		)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		if err := report.WriteFile(
			cfg.Report, rep, cfg.ReportFormat,
		); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	if cfg.CC != "" {
		bin, err := exec.Compile(cmd.Context(), cfg.CC, cfg.Output)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		slog.Info("compiled", "binary", bin)
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt,
	)

	err := newRootCmd().ExecuteContext(ctx)

	stop()

	if err != nil {
		_, _ = errorPrefix.Fprint(os.Stderr, "error: ")
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
