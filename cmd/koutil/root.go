// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/AleutianAI/koutil/cmd/koutil/config"
	"github.com/AleutianAI/koutil/pkg/logging"
	"github.com/AleutianAI/koutil/pkg/term"
	"github.com/AleutianAI/koutil/pkg/ux"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

var tracer = otel.Tracer("koutil.cmd")

// exitError carries a process exit code for failures already reported to
// the user.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// app holds the resolved CLI state shared by every subcommand.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// persistent flags
	configPath   string
	personality  string
	logLevel     string
	colorSupport string
	trace        bool
	metrics      bool

	cfg     config.KoutilConfig
	logger  *logging.Logger
	printer *ux.Printer
	support term.ColorSupport

	span            trace.Span
	shutdownTracing func(context.Context) error
	gatherer        prometheus.Gatherer
	finished        bool
}

// newRootCmd builds the command tree bound to the given streams.
func newRootCmd(in io.Reader, out, errOut io.Writer) (*cobra.Command, *app) {
	a := &app{
		in:       in,
		out:      out,
		errOut:   errOut,
		gatherer: prometheus.DefaultGatherer,
	}

	root := &cobra.Command{
		Use:   "koutil",
		Short: "Terminal colors, styles, argument parsing and container demos",
		Long: `koutil exercises the koutil libraries: escape-sequence colors and
styles, terminal session handling, the declarative argument parser and the
hash index containers.`,
		Version:            version,
		SilenceErrors:      true,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error { return a.finish(cmd.Context()) },
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ~/.koutil/koutil.yaml)")
	flags.StringVar(&a.personality, "personality", "", "output personality: full, standard, minimal, machine")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.colorSupport, "color", "", "color support: auto, 16, 256, truecolor")
	flags.BoolVar(&a.trace, "trace", false, "print otel spans to stderr")
	flags.BoolVar(&a.metrics, "metrics", false, "print koutil prometheus metrics on exit")

	root.AddCommand(
		newColorsCmd(a),
		newStylesCmd(a),
		newBufferCmd(a),
		newInfoCmd(a),
		newHashArrayCmd(a),
		newArgparseCmd(a),
	)
	return root, a
}

// setup loads configuration and resolves logging, personality, color
// support and tracing before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	levelName := cfg.Logging.Level
	if a.logLevel != "" {
		levelName = a.logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	a.logger = logging.New(logging.Config{
		Level:   level,
		LogDir:  cfg.Logging.Dir,
		Service: "koutil",
		Output:  a.errOut,
	})
	slog.SetDefault(a.logger.Slog())

	supportName := cfg.ColorSupport
	if a.colorSupport != "" {
		supportName = a.colorSupport
	}
	a.support, err = resolveColorSupport(supportName, os.Getenv)
	if err != nil {
		return err
	}

	personality := ux.DefaultPersonality()
	personality.Level = resolvePersonality(a.personality, cfg.Personality, os.LookupEnv, a.out)
	ux.SetPersonality(personality)

	a.printer = ux.NewPrinter(a.out,
		ux.WithErrorOutput(a.errOut),
		ux.WithPersonality(personality),
		ux.WithColorSupport(a.support),
	)

	if a.trace {
		a.shutdownTracing, err = setupTracing(a.errOut)
		if err != nil {
			return err
		}
	}
	ctx, span := tracer.Start(cmd.Context(), "koutil."+cmd.Name())
	a.span = span
	cmd.SetContext(ctx)

	slog.Debug("koutil configured",
		slog.String("command", cmd.Name()),
		slog.String("personality", string(personality.Level)),
		slog.String("color_support", a.support.String()),
		slog.String("log_level", level.String()),
	)
	return nil
}

// finish ends the command span, prints metrics and releases the logger.
// It runs once; later calls return nil.
func (a *app) finish(ctx context.Context) error {
	return a.finishWith(ctx, nil)
}

func (a *app) finishWith(ctx context.Context, runErr error) error {
	if a.finished {
		return nil
	}
	a.finished = true
	if ctx == nil {
		ctx = context.Background()
	}

	var errs []error
	if a.span != nil {
		if runErr != nil {
			a.span.RecordError(runErr)
			a.span.SetStatus(codes.Error, runErr.Error())
		}
		a.span.SetAttributes(attribute.Bool("koutil.success", runErr == nil))
		a.span.End()
	}
	if a.metrics {
		if err := writeMetrics(a.out, a.gatherer); err != nil {
			errs = append(errs, err)
		}
	}
	if a.shutdownTracing != nil {
		if err := a.shutdownTracing(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown tracing: %w", err))
		}
	}
	if a.logger != nil {
		if err := a.logger.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// errorPrinter returns the configured printer, or a stdout/stderr printer
// when setup failed before one was built.
func (a *app) errorPrinter() *ux.Printer {
	if a.printer != nil {
		return a.printer
	}
	return ux.NewPrinter(a.out, ux.WithErrorOutput(a.errOut))
}

// resolvePersonality applies flag, then KOUTIL_PERSONALITY, then config,
// then detection on out.
func resolvePersonality(flag, configured string, lookupEnv func(string) (string, bool), out io.Writer) ux.PersonalityLevel {
	if flag != "" {
		return ux.ParsePersonalityLevel(flag)
	}
	if env, ok := lookupEnv(ux.EnvPersonality); ok && env != "" {
		return ux.ParsePersonalityLevel(env)
	}
	if configured != "" {
		return ux.ParsePersonalityLevel(configured)
	}
	if f, ok := out.(*os.File); ok {
		return ux.DetectPersonality(f)
	}
	return ux.PersonalityMachine
}

// resolveColorSupport maps a config or flag value to a ColorSupport.
// "auto" and "" detect from COLORTERM and TERM.
func resolveColorSupport(name string, getenv func(string) string) (term.ColorSupport, error) {
	if name == "" || name == "auto" {
		return term.DetectColorSupport(getenv), nil
	}
	support, ok := term.ParseColorSupport(name)
	if !ok {
		return term.Color16, fmt.Errorf("unknown color support %q", name)
	}
	return support, nil
}

// ttyFile returns w as a file when it is an interactive terminal.
func ttyFile(w io.Writer) (*os.File, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return nil, false
	}
	fd := f.Fd()
	return f, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
