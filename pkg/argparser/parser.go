// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package argparser

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for per-token debug output. Default:
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// Parser walks argv against a fixed option and command tree.
//
// # Description
//
// The Parser holds the root option set, the root command set and the
// handler. Each Parse call starts from the root sets, so a Parser can be
// reused and shared.
//
// # Thread Safety
//
// Parse is safe for concurrent use if the handler is.
type Parser struct {
	handler Handler
	args    *Arguments
	cmds    *Commands
	logger  *slog.Logger
}

// NewParser creates a parser. args and cmds may be nil. Panics if handler
// is nil.
func NewParser(handler Handler, args *Arguments, cmds *Commands, opts ...Option) *Parser {
	if handler == nil {
		panic("argparser: NewParser requires a handler")
	}
	p := &Parser{
		handler: handler,
		args:    args,
		cmds:    cmds,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Args returns the root option set.
func (p *Parser) Args() *Arguments { return p.args }

// Commands returns the root command set.
func (p *Parser) Commands() *Commands { return p.cmds }

// Parse walks argv and reports each recognized piece to the handler.
//
// # Description
//
// argv does not include the program name. Empty tokens are skipped. The
// first walk or handler error stops the parse. Cancelling ctx stops the
// parse before the next token.
//
// # Inputs
//
//   - ctx: Context for cancellation and tracing.
//   - argv: Command-line tokens, typically os.Args[1:].
//
// # Outputs
//
//   - error: nil on success, otherwise a *ParseError whose Err is the
//     walk sentinel, the handler error, or the context error. Use Result to
//     classify it.
//
// # Example
//
//	if err := p.Parse(ctx, os.Args[1:]); err != nil {
//	    fmt.Println(argparser.Result(err))
//	}
func (p *Parser) Parse(ctx context.Context, argv []string) error {
	ctx, span := tracer.Start(ctx, "argparser.Parser.Parse",
		trace.WithAttributes(attribute.Int("argparser.tokens", len(argv))),
	)
	defer span.End()

	w := walker{
		p:    p,
		argv: argv,
		args: p.args,
		cmds: p.cmds,
	}
	err := w.run(ctx)

	result := Result(err)
	parseTotal.WithLabelValues(result.label()).Inc()
	span.SetAttributes(attribute.String("argparser.result", result.String()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, result.String())
	}
	return err
}

// ProcessArgs builds a one-off parser and runs it.
func ProcessArgs(ctx context.Context, argv []string, handler Handler, args *Arguments, cmds *Commands) error {
	return NewParser(handler, args, cmds).Parse(ctx, argv)
}

// =============================================================================
// Walk
// =============================================================================

// walker is the state of a single Parse call.
type walker struct {
	p    *Parser
	argv []string

	// pos is the index of the token being processed. It moves past
	// tokens consumed as option values.
	pos int

	args *Arguments
	cmds *Commands
}

func (w *walker) run(ctx context.Context) error {
	for ; w.pos < len(w.argv); w.pos++ {
		if err := ctx.Err(); err != nil {
			return w.fail(w.pos, err)
		}

		tok := w.argv[w.pos]
		start := w.pos

		var err error
		switch {
		case tok == "":
			continue
		case tok == "--":
			err = w.rest(ctx)
			if err != nil {
				start = w.pos
			}
		case strings.HasPrefix(tok, "--"):
			err = w.long(tok[2:])
		case tok[0] == '-':
			err = w.short(tok[1:])
		default:
			err = w.word(tok)
		}

		if err != nil {
			return w.fail(start, err)
		}
	}
	return nil
}

func (w *walker) fail(index int, err error) error {
	tok := ""
	if index < len(w.argv) {
		tok = w.argv[index]
	}
	w.p.logger.Debug("argparser: parse stopped",
		slog.Int("index", index),
		slog.String("token", tok),
		slog.String("error", err.Error()),
	)
	return &ParseError{Token: tok, Index: index, Err: err}
}

// rest passes every token after "--" to ParseArgument.
func (w *walker) rest(ctx context.Context) error {
	for w.pos++; w.pos < len(w.argv); w.pos++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.p.logger.Debug("argparser: positional", slog.String("value", w.argv[w.pos]))
		if err := w.p.handler.ParseArgument(w.argv[w.pos]); err != nil {
			return err
		}
	}
	return nil
}

// long handles "name" or "name=value" from a "--" token. The '=' search
// starts at the second character so "--=x" looks up the option "=x".
func (w *walker) long(opt string) error {
	name, value, hasValue := opt, "", false
	if i := strings.IndexByte(opt[1:], '='); i >= 0 {
		name, value, hasValue = opt[:i+1], opt[i+2:], true
	}

	arg, ok := w.args.FindLong(name)
	if !ok {
		return ErrUnknown
	}
	w.p.logger.Debug("argparser: long option", slog.String("name", name), slog.Bool("inline_value", hasValue))

	if arg.Kind == OptionFlag {
		if hasValue {
			return ErrInvalidValue
		}
		return w.p.handler.ParseOptionFlag(arg)
	}

	if !hasValue {
		v, ok := w.next()
		if !ok {
			return ErrMissingValue
		}
		value = v
	}
	return w.p.handler.ParseOptionValue(arg, value)
}

// short handles a cluster of short options from a "-" token. A value option
// in the cluster takes the rest of the cluster, or the next token.
func (w *walker) short(opt string) error {
	if opt == "" {
		return ErrEmptyOption
	}

	for i := 0; i < len(opt); i++ {
		arg, ok := w.args.FindShort(opt[i])
		if !ok {
			return ErrUnknown
		}
		w.p.logger.Debug("argparser: short option", slog.String("name", string(opt[i])))

		if arg.Kind == OptionFlag {
			if err := w.p.handler.ParseOptionFlag(arg); err != nil {
				return err
			}
			continue
		}

		value := opt[i+1:]
		if value == "" {
			v, ok := w.next()
			if !ok {
				return ErrMissingValue
			}
			value = v
		}
		return w.p.handler.ParseOptionValue(arg, value)
	}
	return nil
}

// word handles a bare token: a subcommand when commands are active, else
// a positional argument.
func (w *walker) word(tok string) error {
	if w.cmds.Len() == 0 {
		w.p.logger.Debug("argparser: positional", slog.String("value", tok))
		return w.p.handler.ParseArgument(tok)
	}

	cmd, ok := w.cmds.Find(tok)
	if !ok {
		return ErrUnknown
	}
	w.p.logger.Debug("argparser: command", slog.String("name", cmd.Name))

	w.args = cmd.Args
	w.cmds = cmd.Commands
	return w.p.handler.ParseCommand(cmd)
}

// next consumes the token after the current one.
func (w *walker) next() (string, bool) {
	if w.pos+1 >= len(w.argv) {
		return "", false
	}
	w.pos++
	return w.argv[w.pos], true
}
